// Package fibonacci computes Fibonacci numbers iteratively.
package fibonacci

import (
	"errors"
	"fmt"
	"io"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// MaxIndex is the largest n whose Fibonacci number fits in a uint64.
// fib(93) = 12200160415121876738, fib(94) overflows.
const MaxIndex = 93

// ErrOverflow is returned by Checked when n is larger than MaxIndex.
var ErrOverflow = errors.New("fibonacci: result overflows uint64")

// Nth returns the n-th Fibonacci number with fib(0) = 0 and fib(1) = 1.
//
// Only the last two values are kept, so it runs in O(n) time and O(1)
// space. For n > MaxIndex the result wraps around silently; use Checked
// when n comes from outside the program.
func Nth(n uint) uint64 {
	var a, b uint64 = 0, 1

	for i := uint(0); i < n; i++ {
		a, b = b, a+b
	}

	return a
}

// Checked is Nth with an overflow guard.
func Checked(n uint) (uint64, error) {
	if n > MaxIndex {
		return 0, fmt.Errorf("fib(%d): %w", n, ErrOverflow)
	}
	return Nth(n), nil
}

// Lesson returns the fibonacci lesson for index n.
func Lesson(n uint) func(w io.Writer) error {
	return func(w io.Writer) error {
		v, err := Checked(n)
		if err != nil {
			return err
		}

		p := console.New(w)
		p.Heading("Practice: Fibonacci")
		p.Println("Generate the nth Fibonacci number.")
		p.Printf("fib(%d) = %d\n", n, v)
		return p.Err()
	}
}
