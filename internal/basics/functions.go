package basics

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// Functions demonstrates declaring and calling functions.
func Functions(w io.Writer) error {
	p := console.New(w)
	p.Heading("Functions")

	var num1, num2 int32 = 23, 20

	p.Println("Hello, world!")
	simpleFunction(p)
	twoParameters(p, num1, num2)
	statements(p)
	blockValue(p)

	sum, text := SumAndDescribe(10, 20)
	p.Printf("x: %d\n", sum)
	p.Printf("y: %s\n", text)

	return p.Err()
}

func simpleFunction(p *console.Printer) {
	p.Println("I am a simple function")
}

func twoParameters(p *console.Printer, num1, num2 int32) {
	p.Println("I have 2 parameters")
	p.Printf("The two numbers are: %d and %d. Their sum is: %d\n", num1, num2, num1+num2)
}

// statements: every line here is a statement that does something but
// produces no value of its own.
func statements(p *console.Printer) {
	var x int32 = 5
	var y int32 = 6
	z := x + y
	p.Printf("The value of z is: %d\n", z)
}

// blockValue: Go blocks are not expressions, so "the value of a block" is
// written as a function literal that is called right away.
func blockValue(p *console.Printer) {
	y := func() int32 {
		var x int32 = 3
		return x + 2
	}()
	p.Printf("The value of y is: %d\n", y)
}

// SumAndDescribe returns two values: the sum and a sentence about it.
func SumAndDescribe(num1, num2 int32) (int32, string) {
	x := num1 + num2
	return x, fmt.Sprintf("The sum of the two numbers is: %d", x)
}
