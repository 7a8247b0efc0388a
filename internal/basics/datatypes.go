package basics

import (
	"io"
	"math"

	"github.com/aanand-mishra/go-basics/internal/types"
	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// DataTypes walks through scalar, compound and custom types.
//
// INTEGER SIZES:
//
//	Length  Signed  Unsigned
//	8-bit   int8    uint8 (byte)
//	16-bit  int16   uint16
//	32-bit  int32   uint32
//	64-bit  int64   uint64
//	arch    int     uint
func DataTypes(w io.Writer) error {
	p := console.New(w)
	p.Heading("Data Types")

	// ── Integer literals ────────────────────────────────────────────────
	// All of these are just ints; the literal form only changes how the
	// number is written in source.
	decimal := 98_20
	hex := 0xff
	octal := 0o77
	// Without the 0b prefix, 01010101 would be an octal literal in Go.
	binary := 0b0101_0101
	var b byte = 'A'

	p.Printf("Decimal is %d\n", decimal)
	p.Printf("Hex is %d\n", hex)
	p.Printf("Octal is %d\n", octal)
	p.Printf("Binary is %d\n", binary)
	p.Printf("Byte is %d\n", b)

	// ── Floating point ──────────────────────────────────────────────────
	// Go has no % operator for floats; math.Mod does the remainder.
	var x float32 = 2.5
	var y float32 = 2.0

	p.Printf("Addition of x and y gives us %g\n", x+y)
	p.Printf("Division of x and y gives us %g\n", x/y)
	p.Printf("Remainder of x and y gives us %g\n", math.Mod(float64(x), float64(y)))

	// ── Grouping values ─────────────────────────────────────────────────
	// There are no tuples. A function can return several values, and
	// they can be unpacked in one assignment.
	n, f, c := tuple()
	p.Printf("The value of f is %g\n", f)
	p.Printf("The first value is: %d (and the rune is %c)\n", n, c)

	// ── Arrays ──────────────────────────────────────────────────────────
	// The length is part of the type: [5]int and [6]int are different.
	arr := [5]int{1, 2, 3, 4, 5}
	p.Printf("First value in the array is %d, length %d\n", arr[0], len(arr))

	// ── Structs ─────────────────────────────────────────────────────────
	person := types.Person{Name: "John", Age: 25}
	p.Printf("Person is %+v\n", person)

	return p.Err()
}

func tuple() (int32, float64, rune) {
	return 500, 6.4, 'x'
}
