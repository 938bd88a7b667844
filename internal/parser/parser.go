package parser

import (
	"fmt"
	"math"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/errors"
	"github.com/gdql/dtlit/internal/token"
)

// assigner writes body tokens into a ParsedDateTime, one field at a time.
type assigner struct {
	value    string
	expected []token.TokenType
	cur      ast.Cursor
	pdt      *ast.ParsedDateTime
}

// Assign matches body tokens against the pattern for leading and builds the
// parsed value. value is the full literal and is only used in errors.
// Timezone tokens, if any, replace whatever timezone offset the body set.
// On error no partial result is returned.
func Assign(body []token.Token, leading ast.Field, value string, tz []token.Token) (*ast.ParsedDateTime, error) {
	expected, err := ExpectedBody(leading)
	if err != nil {
		return nil, &errors.ParseError{
			Message: fmt.Sprintf("%s cannot be the leading field of a literal", leading),
			Input:   value,
			Hint:    "use YEAR, MONTH, DAY, HOUR, MINUTE or SECOND",
			Err:     err,
		}
	}
	cur, err := ast.NewCursor(leading)
	if err != nil {
		return nil, err
	}
	a := &assigner{value: value, expected: expected, cur: cur, pdt: ast.New()}

	if len(body) > 0 && body[0].Type == token.DASH {
		a.pdt.IsPositive = false
		body = body[1:]
	}
	for i, tok := range body {
		if err := a.next(i, tok); err != nil {
			return nil, err
		}
	}

	if len(tz) > 0 {
		off, err := AssignTimezone(tz, value)
		if err != nil {
			return nil, err
		}
		a.pdt.TimezoneOffsetSecond = &off
	}
	return a.pdt, nil
}

func (a *assigner) next(i int, tok token.Token) error {
	// A Num in the fraction slot is a kind mismatch, not a second value for seconds.
	if tok.Type == token.NUM && a.cur.Field() == ast.Second && a.pdt.Second != nil &&
		(i >= len(a.expected) || a.expected[i] != token.NANOS) {
		return &errors.ParseError{
			Offset:  tok.Pos,
			Message: fmt.Sprintf("too many numbers for seconds: %d", tok.Value),
			Input:   a.value,
		}
	}
	if i >= len(a.expected) {
		return &errors.ParseError{
			Offset:  tok.Pos,
			Message: fmt.Sprintf("unexpected trailing token at part %d", i),
			Input:   a.value,
			Actual:  tok.String(),
		}
	}
	want := a.expected[i]
	if tok.Type != want {
		return a.mismatch(i, tok, want)
	}
	switch tok.Type {
	case token.NUM:
		if err := a.set(tok); err != nil {
			return err
		}
		a.cur.Advance()
	case token.NANOS:
		if a.pdt.Second == nil {
			return a.mismatch(i, tok, want)
		}
		n := tok.Nanoseconds()
		a.pdt.Nano = &n
	}
	return nil
}

func (a *assigner) set(tok token.Token) error {
	v := tok.Value
	switch f := a.cur.Field(); f {
	case ast.Year:
		a.pdt.Year = &v
	case ast.Month:
		if v < 1 {
			return a.invalid(tok, "invalid month")
		}
		a.pdt.Month = &v
	case ast.Day:
		if v < 1 {
			return a.invalid(tok, "invalid day")
		}
		a.pdt.Day = &v
	case ast.Hour:
		a.pdt.Hour = &v
	case ast.Minute:
		a.pdt.Minute = &v
	case ast.Second:
		a.pdt.Second = &v
	default:
		return fmt.Errorf("cursor at non-leading field %s", f)
	}
	return nil
}

func (a *assigner) invalid(tok token.Token, msg string) error {
	return &errors.ParseError{
		Offset:  tok.Pos,
		Message: fmt.Sprintf("%s %d", msg, tok.Value),
		Input:   a.value,
	}
}

func (a *assigner) mismatch(i int, tok token.Token, want token.TokenType) error {
	return &errors.ParseError{
		Offset:   tok.Pos,
		Message:  fmt.Sprintf("invalid interval part %d", i),
		Input:    a.value,
		Actual:   tok.String(),
		Expected: want.String(),
	}
}

// AssignTimezone sums a timezone suffix into a signed offset in seconds.
// Only hours and minutes are supported.
func AssignTimezone(tz []token.Token, value string) (int64, error) {
	positive := true
	if len(tz) > 0 && tz[0].Type == token.DASH {
		positive = false
		tz = tz[1:]
	}

	var (
		offset  int64
		numbers int
	)
	for i, tok := range tz {
		if i >= len(timezonePattern) {
			return 0, &errors.ParseError{
				Offset:  tok.Pos,
				Message: "timezone offset supports only hours and minutes",
				Input:   value,
				Actual:  tok.String(),
			}
		}
		want := timezonePattern[i]
		if tok.Type != want {
			return 0, &errors.ParseError{
				Offset:   tok.Pos,
				Message:  fmt.Sprintf("invalid time zone part %d", i),
				Input:    value,
				Actual:   tok.String(),
				Expected: want.String(),
			}
		}
		if tok.Type != token.NUM {
			continue
		}
		unit := int64(60 * 60)
		if numbers > 0 {
			unit = 60
		}
		numbers++
		if tok.Value > uint64(math.MaxInt64/unit) || int64(tok.Value)*unit > math.MaxInt64-offset {
			return 0, &errors.ParseError{
				Offset:  tok.Pos,
				Message: fmt.Sprintf("timezone offset %d out of range", tok.Value),
				Input:   value,
			}
		}
		offset += int64(tok.Value) * unit
	}

	if !positive {
		offset = -offset
	}
	return offset, nil
}
