package fizzbuzz

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := map[int]string{
		0:  "FizzBuzz",
		1:  "1",
		3:  "Fizz",
		5:  "Buzz",
		7:  "7",
		15: "FizzBuzz",
		30: "FizzBuzz",
		33: "Fizz",
		50: "Buzz",
		98: "98",
		99: "Fizz",
	}
	for i, want := range tests {
		assert.Equal(t, want, Line(i), "Line(%d)", i)
	}
}

func TestLines(t *testing.T) {
	lines := Lines()
	require.Len(t, lines, 100)
	require.Equal(t, Count, len(lines))

	assert.Equal(t, "FizzBuzz", lines[0])
	assert.Equal(t, "Fizz", lines[3])
	assert.Equal(t, "Buzz", lines[5])
	assert.Equal(t, "7", lines[7])
	assert.Equal(t, "FizzBuzz", lines[15])

	// Every line falls in exactly one category.
	for i, line := range lines {
		switch line {
		case "FizzBuzz":
			assert.Zero(t, i%15, "index %d", i)
		case "Fizz":
			assert.Zero(t, i%3, "index %d", i)
			assert.NotZero(t, i%5, "index %d", i)
		case "Buzz":
			assert.Zero(t, i%5, "index %d", i)
			assert.NotZero(t, i%3, "index %d", i)
		default:
			assert.Equal(t, strconv.Itoa(i), line)
		}
	}
}

func TestSequence_NotRestartable(t *testing.T) {
	seq := New()
	n := 0
	for _, ok := seq.Next(); ok; _, ok = seq.Next() {
		n++
	}
	assert.Equal(t, 100, n)

	// Exhausted for good.
	for range 3 {
		line, ok := seq.Next()
		assert.False(t, ok)
		assert.Empty(t, line)
	}

	// A new sequence starts from the beginning.
	line, ok := New().Next()
	assert.True(t, ok)
	assert.Equal(t, "FizzBuzz", line)
}

func TestLesson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Lesson(&buf))

	out := strings.TrimSuffix(buf.String(), "\n")
	got := strings.Split(out, "\n")
	require.Len(t, got, 1+Count)
	assert.Equal(t, "=== Practice: FizzBuzz ===", got[0])
	assert.Equal(t, Lines(), got[1:])
}
