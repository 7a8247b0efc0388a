// Package fizzbuzz produces the classic FizzBuzz lines for 0 through 99.
//
// Counting starts at 0, not 1, so the first line is "FizzBuzz" (0 is
// divisible by every number).
package fizzbuzz

import (
	"io"
	"strconv"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// The sequence covers First through Last inclusive, Count lines in total.
const (
	First = 0
	Last  = 99
	Count = Last - First + 1
)

// Line returns the FizzBuzz word for i.
//
// ORDER MATTERS: the 15 check has to come first. 15 is also divisible by
// 3, so checking 3 first would print "Fizz" for it.
func Line(i int) string {
	switch {
	case i%15 == 0:
		return "FizzBuzz"
	case i%3 == 0:
		return "Fizz"
	case i%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(i)
	}
}

// Sequence hands out the lines one at a time. It is lazy (a line is only
// computed when Next is called) and cannot be restarted: once all lines
// have been read, Next keeps returning false. Create a new Sequence to
// start over.
type Sequence struct {
	next int
}

// New returns a Sequence positioned at First.
func New() *Sequence {
	return &Sequence{next: First}
}

// Next returns the next line. ok is false once the sequence is exhausted.
func (s *Sequence) Next() (line string, ok bool) {
	if s.next > Last {
		return "", false
	}
	line = Line(s.next)
	s.next++
	return line, true
}

// Lines drains a fresh Sequence into a slice, for callers that want all
// the lines at once. Lesson prints from a Sequence directly instead.
func Lines() []string {
	lines := make([]string, 0, Count)

	seq := New()
	for line, ok := seq.Next(); ok; line, ok = seq.Next() {
		lines = append(lines, line)
	}

	return lines
}

// Lesson prints one line per number.
func Lesson(w io.Writer) error {
	p := console.New(w)
	p.Heading("Practice: FizzBuzz")

	seq := New()
	for line, ok := seq.Next(); ok; line, ok = seq.Next() {
		p.Println(line)
	}

	return p.Err()
}
