package token

import "fmt"

// TokenType identifies the kind of a datetime literal token.
type TokenType int

const (
	ILLEGAL TokenType = iota

	// Separators
	DASH  // -
	SPACE // ' '
	COLON // :
	DOT   // .
	PLUS  // + starts a timezone suffix

	// Values
	NUM   // integer field value
	NANOS // fractional second, already scaled to nanoseconds
)

var tokens = [...]string{
	ILLEGAL: "<illegal>",

	DASH:  "Dash",
	SPACE: "Space",
	COLON: "Colon",
	DOT:   "Dot",
	PLUS:  "Plus",

	NUM:   "Num",
	NANOS: "Nanos",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokens) {
		return tokens[tt]
	}
	return "<unknown>"
}

// IsValue reports whether tokens of this type carry a numeric value.
func (tt TokenType) IsValue() bool {
	return tt == NUM || tt == NANOS
}

// Token is a single lexical unit of a datetime literal.
// Value is only meaningful for NUM and NANOS; for NANOS it never exceeds 999999999.
// Pos is the byte offset of the token in the literal it was scanned from.
type Token struct {
	Type  TokenType
	Value uint64
	Pos   int
}

// Num returns a NUM token holding v.
func Num(v uint64) Token {
	return Token{Type: NUM, Value: v}
}

// Nanos returns a NANOS token holding v nanoseconds.
func Nanos(v uint32) Token {
	return Token{Type: NANOS, Value: uint64(v)}
}

// Punct returns a valueless token of the given separator type.
func Punct(tt TokenType) Token {
	return Token{Type: tt}
}

// Nanoseconds returns the value of a NANOS token.
func (t Token) Nanoseconds() uint32 {
	return uint32(t.Value)
}

// Equal compares type and value, ignoring position.
func (t Token) Equal(o Token) bool {
	return t.Type == o.Type && t.Value == o.Value
}

func (t Token) String() string {
	if t.Type.IsValue() {
		return fmt.Sprintf("%s(%d)", t.Type, t.Value)
	}
	return t.Type.String()
}
