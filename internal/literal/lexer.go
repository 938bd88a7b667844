package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the type of a literal-syntax token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	// Keywords
	INTERVAL
	DATE
	TIME
	TIMESTAMP
	TIMESTAMPTZ
	WITH
	WITHOUT
	ZONE
	TO

	// Literals
	IDENT  // unit names such as YEAR or MINUTES
	STRING // '...'

	// Delimiters
	SEMICOLON
)

var tokens = [...]string{
	EOF:     "<eof>",
	ILLEGAL: "<illegal>",

	INTERVAL:    "INTERVAL",
	DATE:        "DATE",
	TIME:        "TIME",
	TIMESTAMP:   "TIMESTAMP",
	TIMESTAMPTZ: "TIMESTAMPTZ",
	WITH:        "WITH",
	WITHOUT:     "WITHOUT",
	ZONE:        "ZONE",
	TO:          "TO",

	IDENT:  "<ident>",
	STRING: "<string>",

	SEMICOLON: ";",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokens) {
		return tokens[tt]
	}
	return "<unknown>"
}

// Token is a single token of a typed literal. Pos is a byte offset.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// lexer splits typed-literal text such as INTERVAL '1-2' YEAR TO MONTH.
type lexer struct {
	input   string
	pos     int
	readPos int
	ch      rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += w
}

func (l *lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token; EOF repeats once the input is exhausted.
func (l *lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.pos
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: pos}
	}
	switch {
	case l.ch == ';':
		l.readChar()
		return Token{Type: SEMICOLON, Literal: ";", Pos: pos}
	case l.ch == '\'':
		return l.readString(pos)
	case unicode.IsLetter(l.ch) || l.ch == '_':
		return l.readIdent(pos)
	}
	ch := l.ch
	l.readChar()
	return Token{Type: ILLEGAL, Literal: string(ch), Pos: pos}
}

// readString reads a single-quoted string; a doubled quote stands for one quote.
// Pos of the returned token is the offset of the first content byte.
func (l *lexer) readString(start int) Token {
	l.readChar() // consume opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.input) {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Pos: start}
		}
		if l.ch == '\'' {
			if l.peekChar() != '\'' {
				break
			}
			l.readChar()
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return Token{Type: STRING, Literal: b.String(), Pos: start + 1}
}

func (l *lexer) readIdent(start int) Token {
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	lit := l.input[start:l.pos]
	return Token{Type: lookupIdent(strings.ToUpper(lit)), Literal: lit, Pos: start}
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "INTERVAL":
		return INTERVAL
	case "DATE":
		return DATE
	case "TIME":
		return TIME
	case "TIMESTAMP":
		return TIMESTAMP
	case "TIMESTAMPTZ":
		return TIMESTAMPTZ
	case "WITH":
		return WITH
	case "WITHOUT":
		return WITHOUT
	case "ZONE":
		return ZONE
	case "TO":
		return TO
	default:
		return IDENT
	}
}
