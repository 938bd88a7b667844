package parser

import (
	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/token"
)

// canonical is every token a literal may contain, from year down to the
// fractional second.
var canonical = [...]token.TokenType{
	token.NUM, // year
	token.DASH,
	token.NUM, // month
	token.DASH,
	token.NUM, // day
	token.SPACE,
	token.NUM, // hour
	token.COLON,
	token.NUM, // minute
	token.COLON,
	token.NUM, // second
	token.DOT,
	token.NANOS,
}

var leadingOffset = map[ast.Field]int{
	ast.Year:   0,
	ast.Month:  2,
	ast.Day:    4,
	ast.Hour:   6,
	ast.Minute: 8,
	ast.Second: 10,
}

var timezonePattern = [...]token.TokenType{token.PLUS, token.NUM, token.COLON, token.NUM}

// ExpectedBody returns the token types a literal starting at leading may contain,
// in order. A literal may stop early but may not skip or reorder tokens.
//
// For example '9-5 4:3' read as MONTH is 9 months, 5 days, 4 hours and 3 minutes.
// Whether that combination is allowed is up to the caller.
func ExpectedBody(leading ast.Field) ([]token.TokenType, error) {
	off, ok := leadingOffset[leading]
	if !ok {
		return nil, ast.ErrInvalidLeadingField
	}
	out := make([]token.TokenType, len(canonical)-off)
	copy(out, canonical[off:])
	return out, nil
}

// ExpectedTimezone returns the token types of a timezone suffix.
func ExpectedTimezone() []token.TokenType {
	out := make([]token.TokenType, len(timezonePattern))
	copy(out, timezonePattern[:])
	return out
}
