// Package types holds the small data structures shared by the lessons.
// Keeping them in one place means the practice packages and the basics
// lessons can both use them without importing each other.
package types

import "fmt"

// PasswordScore is the result of scoring a password.
//
// Score is always between 0 and MaxPasswordScore. Feedback is only for
// display — nothing branches on it.
type PasswordScore struct {
	Score    int
	Feedback string
}

// MaxPasswordScore is the best score a password can get: one point each
// for length, digits and special characters.
const MaxPasswordScore = 3

// String prints the score the way the lessons show it, e.g. "2/3 (add a digit)".
func (p PasswordScore) String() string {
	return fmt.Sprintf("%d/%d (%s)", p.Score, MaxPasswordScore, p.Feedback)
}

// Person is the custom record type used by the data types lesson.
//
// Go has no tuples, so a struct (or multiple return values) is how you
// group a few values of different types together.
type Person struct {
	Name string
	Age  uint8
}

// Coin is a US coin. It is an enum: a named integer type with one
// constant per allowed value.
type Coin int

const (
	Penny Coin = iota
	Nickel
	Dime
	Quarter
)

// String implements fmt.Stringer so %v prints "Dime" instead of 2.
func (c Coin) String() string {
	switch c {
	case Penny:
		return "Penny"
	case Nickel:
		return "Nickel"
	case Dime:
		return "Dime"
	case Quarter:
		return "Quarter"
	default:
		return fmt.Sprintf("Coin(%d)", int(c))
	}
}
