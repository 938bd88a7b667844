package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

// TokenizeError reports a character that cannot appear in a datetime literal.
type TokenizeError struct {
	Offset int
	Char   rune
	Input  string
}

func (e *TokenizeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid character at offset %d: %q", e.Offset, e.Char)
	writeCaret(&b, e.Input, e.Offset)
	return b.String()
}

// NumberParseError reports a digit run that could not be converted to a number.
type NumberParseError struct {
	Offset int
	Text   string
	Input  string
	Err    error
}

func (e *NumberParseError) Error() string {
	var b strings.Builder
	if e.Text == "" {
		fmt.Fprintf(&b, "missing number at offset %d", e.Offset)
	} else {
		fmt.Fprintf(&b, "unable to parse %q as a number at offset %d", e.Text, e.Offset)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	writeCaret(&b, e.Input, e.Offset)
	return b.String()
}

func (e *NumberParseError) Unwrap() error {
	return e.Err
}

// ParseError is a field or pattern violation in an otherwise well-tokenized literal.
// Actual and Expected are empty when the error is not about a token pairing.
type ParseError struct {
	Offset   int
	Message  string
	Input    string
	Actual   string
	Expected string
	Hint     string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at offset %d: %s", e.Offset, e.Message)
	if e.Actual != "" || e.Expected != "" {
		fmt.Fprintf(&b, " (provided %s but expected %s)", orNone(e.Actual), orNone(e.Expected))
	}
	writeCaret(&b, e.Input, e.Offset)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", e.Hint)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func writeCaret(b *strings.Builder, input string, offset int) {
	if input == "" {
		return
	}
	fmt.Fprintf(b, "\n  %s\n", input)
	pad := offset
	if pad > len(input) {
		pad = len(input)
	}
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(b, "  %s^", strings.Repeat(" ", pad))
}

func orNone(s string) string {
	if s == "" {
		return "nothing"
	}
	return s
}

// Rebase moves the offset of a literal error found in a substring starting at
// base so that it points into input instead. Other errors are returned as is.
func Rebase(err error, input string, base int) error {
	var (
		te *TokenizeError
		ne *NumberParseError
		pe *ParseError
	)
	switch {
	case goerrors.As(err, &te):
		te.Offset += base
		te.Input = input
	case goerrors.As(err, &ne):
		ne.Offset += base
		ne.Input = input
	case goerrors.As(err, &pe):
		pe.Offset += base
		pe.Input = input
	}
	return err
}
