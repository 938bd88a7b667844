package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeError(t *testing.T) {
	err := &TokenizeError{Offset: 2, Char: 'x', Input: "12x"}
	assert.Equal(t, "invalid character at offset 2: 'x'\n  12x\n    ^", err.Error())
}

func TestNumberParseError(t *testing.T) {
	missing := &NumberParseError{Offset: 0, Input: ":5"}
	assert.Equal(t, "missing number at offset 0\n  :5\n  ^", missing.Error())

	cause := goerrors.New("boom")
	bad := &NumberParseError{Offset: 1, Text: "99", Err: cause}
	assert.Equal(t, `unable to parse "99" as a number at offset 1: boom`, bad.Error())
	assert.ErrorIs(t, bad, cause)
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Offset:   1,
		Message:  "invalid interval part 1",
		Input:    "9-5",
		Actual:   "Dash",
		Expected: "Colon",
		Hint:     "check the separators",
	}
	assert.Equal(t,
		"parse error at offset 1: invalid interval part 1 (provided Dash but expected Colon)\n  9-5\n   ^\nHint: check the separators",
		err.Error())
}

func TestParseError_NothingAndCaretClamp(t *testing.T) {
	err := &ParseError{Offset: 10, Message: "m", Input: "ab", Actual: "Num(1)"}
	assert.Equal(t, "parse error at offset 10: m (provided Num(1) but expected nothing)\n  ab\n    ^", err.Error())
}

func TestParseError_Unwrap(t *testing.T) {
	cause := goerrors.New("cause")
	err := &ParseError{Message: "m", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "parse error at offset 0: m", err.Error())
}

func TestRebase(t *testing.T) {
	te := &TokenizeError{Offset: 1, Char: 'x', Input: "1x"}
	err := Rebase(fmt.Errorf("wrapped: %w", te), "DATE '1x'", 6)
	assert.Equal(t, 7, te.Offset)
	assert.Equal(t, "DATE '1x'", te.Input)
	assert.Contains(t, err.Error(), "\n  DATE '1x'\n         ^")

	ne := &NumberParseError{Offset: 0, Input: ":"}
	Rebase(ne, "TIME ':'", 6)
	assert.Equal(t, 6, ne.Offset)

	pe := &ParseError{Offset: 2, Input: "1-0"}
	Rebase(pe, "DATE '1-0'", 6)
	assert.Equal(t, 8, pe.Offset)
	assert.Equal(t, "DATE '1-0'", pe.Input)

	other := goerrors.New("other")
	assert.Equal(t, other, Rebase(other, "x", 3))
}
