// Package basics holds the language-basics lessons: variables, data
// types, functions and control flow. Every lesson is a plain function that
// prints to an io.Writer, so tests can capture the output in a buffer.
package basics

import (
	"io"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// MaxPoints is a constant. Constants are fixed at compile time: there is
// no way to assign to MaxPoints, and the underscore is just a digit
// separator (100_00 == 10000).
const MaxPoints = 100_00

// Variables demonstrates reassignment versus shadowing.
//
//	x = 6        changes the value stored in x (same variable)
//	y := 8       inside a block creates a NEW y that hides the outer one
//	             until the block ends
func Variables(w io.Writer) error {
	p := console.New(w)
	p.Heading("Variables and Constants")

	// ── Reassignment ────────────────────────────────────────────────────
	var x int32 = 5
	p.Printf("The value of x is: %d\n", x)

	x = 6
	p.Printf("The value of x is: %d\n", x)

	// ── Shadowing ───────────────────────────────────────────────────────
	y := 5
	p.Printf("The value of y is: %d\n", y)

	{
		y := 8 // a new y, only visible inside these braces
		p.Printf("The value of y in the inner scope is: %d\n", y)
	}

	// Back outside: the inner y is gone and the outer one was never touched.
	p.Printf("The value of y after the inner scope is: %d\n", y)

	y = y + 5
	p.Printf("The value of y is: %d\n", y)

	// A variable can never change its type. To reuse the name for a
	// string we have to declare a new variable in a new scope.
	{
		y := "hi"
		p.Printf("The value of y is: %s\n", y)
	}

	// ── Same idea with z ────────────────────────────────────────────────
	// z = "hola" would not compile: z is an int. A new z in a new scope can
	// hold a string.
	z := 5
	p.Printf("Z = %d\n", z)
	{
		z := "hola"
		p.Printf("Z = %s\n", z)
	}

	// ── Constants ───────────────────────────────────────────────────────
	p.Printf("The value of MaxPoints is %d\n", MaxPoints)

	return p.Err()
}
