// Package console provides helpers for writing lesson output to the terminal.
//
// Every lesson prints a handful of lines. Rather than checking the error
// from every single fmt.Fprintf call, lessons write through a Printer
// which remembers the FIRST write error and turns every later write into
// a no-op. The lesson checks Err() once at the end.
//
// The package also turns validator errors into readable sentences so the
// config loader can report every broken field at once.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Printer wraps an io.Writer and records the first write error.
type Printer struct {
	w   io.Writer
	err error
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf formats according to a format specifier and writes to the
// underlying writer. It does nothing once a write has failed.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Println writes its operands followed by a newline.
func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// Heading prints a lesson banner:
//
//	=== Control Flow ===
func (p *Printer) Heading(title string) {
	p.Printf("=== %s ===\n", title)
}

// Err returns the first write error, or nil.
func (p *Printer) Err() error {
	return p.err
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts the field errors returned by go-playground/validator
// into one human-readable error.
//
// Example output:
//
//	field Env must be one of [dev staging prod], field FibonacciN must be at most 93
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) error {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		case "lte", "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("invalid config: %s", strings.Join(errMessages, ", "))
}
