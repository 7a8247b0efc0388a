// Package password scores how strong a password is.
//
// RULES (one point each, maximum 3):
//
//	+1  more than 8 characters
//	+1  at least one decimal digit
//	+1  at least one special character (not a letter, not a digit)
package password

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aanand-mishra/go-basics/internal/types"
	"github.com/aanand-mishra/go-basics/internal/utils/console"
)

// MinLength is the length a password has to EXCEED to earn the length point.
const MinLength = 8

// Score returns the strength score of text.
//
// Length is counted in characters (runes), not bytes: "pässwörd" is 8
// characters even though it is 10 bytes long.
func Score(text string) types.PasswordScore {
	score := 0

	longEnough := utf8.RuneCountInString(text) > MinLength
	if longEnough {
		score++
	}

	// One pass over the characters, remembering what we have seen.
	// The digit check MUST come first: a digit is not a letter, so without
	// the else-if it would also be counted as a special character.
	hasDigit, hasSpecial := false, false
	for _, r := range text {
		if unicode.IsDigit(r) {
			hasDigit = true
		} else if !unicode.IsLetter(r) {
			hasSpecial = true
		}
	}

	if hasDigit {
		score++
	}
	if hasSpecial {
		score++
	}

	return types.PasswordScore{
		Score:    score,
		Feedback: feedback(longEnough, hasDigit, hasSpecial),
	}
}

func feedback(longEnough, hasDigit, hasSpecial bool) string {
	var tips []string
	if !longEnough {
		tips = append(tips, "use more than 8 characters")
	}
	if !hasDigit {
		tips = append(tips, "add a digit")
	}
	if !hasSpecial {
		tips = append(tips, "add a special character")
	}
	if len(tips) == 0 {
		return "strong password"
	}
	return strings.Join(tips, ", ")
}

// Lesson returns the password lesson for the given sample. It is a
// factory: the sample is captured once and the returned function prints
// the result every time it runs.
func Lesson(sample string) func(w io.Writer) error {
	return func(w io.Writer) error {
		p := console.New(w)
		p.Heading("Practice: Password Strength")
		p.Println("Rules: +1 for length > 8, +1 for numbers, +1 for special chars")

		result := Score(sample)
		p.Printf("Password: %q\n", sample)
		p.Printf("Score: %s\n", result)
		return p.Err()
	}
}
