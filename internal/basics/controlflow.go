package basics

import (
	"io"

	"github.com/aanand-mishra/go-basics/internal/types"
	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// ValueInCents maps a coin to its value. Every Coin constant has a case;
// anything else is not a real coin and is worth 0.
func ValueInCents(coin types.Coin) uint8 {
	switch coin {
	case types.Penny:
		return 1
	case types.Nickel:
		return 5
	case types.Dime:
		return 10
	case types.Quarter:
		return 25
	default:
		return 0
	}
}

// CountTo loops until the counter reaches limit and returns it, the Go
// shape of "break with a value": a for loop with no condition, and a
// return from inside it.
func CountTo(limit int) int {
	i := 0
	for {
		i++
		if i >= limit {
			return i
		}
	}
}

// ControlFlow demonstrates if/else, switch, and the different for loops.
func ControlFlow(w io.Writer) error {
	p := console.New(w)
	p.Heading("Control Flow")

	// ── if / else ───────────────────────────────────────────────────────
	number := 6
	if number < 5 {
		p.Println("Condition is true")
	} else {
		p.Println("Condition is false")
	}

	// ── if in an assignment ─────────────────────────────────────────────
	// if is a statement, not an expression, so declare first and assign
	// in the branches.
	condition := true
	num := 6
	if condition {
		num = 5
	}
	p.Printf("The number is %d\n", num)

	// ── switch on an enum ───────────────────────────────────────────────
	coin := types.Penny
	p.Printf("Value of %v is: %d\n", coin, ValueInCents(coin))

	// ── loops ───────────────────────────────────────────────────────────
	p.Printf("Counted to %d\n", CountTo(10))

	a := [...]int{1, 2, 3, 4, 5, 6, 7, 8}
	for _, element := range a {
		p.Printf("The value is: %d\n", element)
	}

	// range over a string yields runes (characters), not bytes.
	for _, c := range "hello world" {
		p.Printf("The value is %c\n", c)
	}

	return p.Err()
}
