// Package literal parses typed SQL datetime literals such as
// INTERVAL '1-2' YEAR TO MONTH or TIMESTAMP WITH TIME ZONE '2020-01-02 03:04+05:30'
// and decides how their quoted value is to be tokenized.
package literal

import (
	"fmt"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/errors"
)

// Kind is the SQL type a literal is written as.
type Kind int

const (
	KindInterval Kind = iota
	KindDate
	KindTime
	KindTimestamp
	KindTimestampTZ
)

func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "INTERVAL"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindTimestamp:
		return "TIMESTAMP"
	case KindTimestampTZ:
		return "TIMESTAMP WITH TIME ZONE"
	}
	return "<unknown>"
}

// Literal is a typed literal with its quoted value extracted.
// Leading and Last bound the fields the value may set; Pos is the byte offset
// of the value within Text, the full literal.
type Literal struct {
	Kind            Kind
	Text            string
	Value           string
	Leading         ast.Field
	Last            ast.Field
	IncludeTimezone bool
	Pos             int
}

// Allows reports whether f lies within the literal's field range.
func (l *Literal) Allows(f ast.Field) bool {
	return f >= l.Leading && f <= l.Last
}

type parser struct {
	lex   *lexer
	cur   Token
	input string
}

// Parse parses a single typed literal with an optional trailing semicolon.
func Parse(input string) (*Literal, error) {
	p := &parser{lex: newLexer(input), input: input}
	p.cur = p.lex.NextToken()
	return p.parse()
}

func (p *parser) advance() {
	p.cur = p.lex.NextToken()
}

func (p *parser) curIs(tt TokenType) bool {
	return p.cur.Type == tt
}

func (p *parser) errorf(hint, format string, args ...interface{}) error {
	return &errors.ParseError{
		Offset:  p.cur.Pos,
		Message: fmt.Sprintf(format, args...),
		Input:   p.input,
		Hint:    hint,
	}
}

func (p *parser) expect(tt TokenType) error {
	if p.cur.Type != tt {
		if p.cur.Type == ILLEGAL {
			return p.errorf("", "expected %s, got %q", tt, p.cur.Literal)
		}
		return p.errorf(fmt.Sprintf("expected %s", tt), "expected %s, got %s", tt, p.cur.Type)
	}
	return nil
}

func (p *parser) parse() (*Literal, error) {
	var (
		lit *Literal
		err error
	)
	switch p.cur.Type {
	case INTERVAL:
		lit, err = p.parseInterval()
	case DATE:
		p.advance()
		lit, err = p.parseValue(&Literal{Kind: KindDate, Leading: ast.Year, Last: ast.Day})
	case TIME:
		p.advance()
		if err := p.parseZoneClause(false); err != nil {
			return nil, err
		}
		lit, err = p.parseValue(&Literal{Kind: KindTime, Leading: ast.Hour, Last: ast.Second})
	case TIMESTAMP:
		lit, err = p.parseTimestamp()
	case TIMESTAMPTZ:
		p.advance()
		lit, err = p.parseValue(&Literal{Kind: KindTimestampTZ, Leading: ast.Year, Last: ast.Second, IncludeTimezone: true})
	case EOF:
		return nil, &errors.ParseError{Message: "empty literal", Input: p.input}
	default:
		return nil, p.errorf("", "unexpected %q, expected INTERVAL, DATE, TIME, TIMESTAMP or TIMESTAMPTZ", p.cur.Literal)
	}
	if err != nil {
		return nil, err
	}
	if p.curIs(SEMICOLON) {
		p.advance()
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return lit, nil
}

func (p *parser) parseValue(lit *Literal) (*Literal, error) {
	if err := p.expect(STRING); err != nil {
		return nil, err
	}
	lit.Text = p.input
	lit.Value = p.cur.Literal
	lit.Pos = p.cur.Pos
	p.advance()
	return lit, nil
}

// parseInterval parses INTERVAL 'value' field [TO field].
func (p *parser) parseInterval() (*Literal, error) {
	p.advance() // consume INTERVAL
	lit, err := p.parseValue(&Literal{Kind: KindInterval, Last: ast.Second})
	if err != nil {
		return nil, err
	}
	lead, err := p.parseField()
	if err != nil {
		return nil, err
	}
	lit.Leading = lead
	if p.curIs(TO) {
		p.advance()
		pos := p.cur.Pos
		last, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if last < lead {
			return nil, &errors.ParseError{
				Offset:  pos,
				Message: fmt.Sprintf("%s is more significant than %s", last, lead),
				Input:   p.input,
			}
		}
		lit.Last = last
	}
	return lit, nil
}

func (p *parser) parseField() (ast.Field, error) {
	if p.cur.Type != IDENT {
		return 0, p.errorf("use YEAR, MONTH, DAY, HOUR, MINUTE or SECOND", "expected a field, got %s", p.cur.Type)
	}
	f, ok := ast.LookupField(p.cur.Literal)
	if !ok {
		return 0, p.errorf("use YEAR, MONTH, DAY, HOUR, MINUTE or SECOND", "unknown field %q", p.cur.Literal)
	}
	p.advance()
	return f, nil
}

// parseTimestamp parses TIMESTAMP [WITH | WITHOUT TIME ZONE] 'value'.
func (p *parser) parseTimestamp() (*Literal, error) {
	p.advance() // consume TIMESTAMP
	withZone := p.curIs(WITH)
	if err := p.parseZoneClause(true); err != nil {
		return nil, err
	}
	if withZone {
		return p.parseValue(&Literal{Kind: KindTimestampTZ, Leading: ast.Year, Last: ast.Second, IncludeTimezone: true})
	}
	return p.parseValue(&Literal{Kind: KindTimestamp, Leading: ast.Year, Last: ast.Second})
}

// parseZoneClause consumes an optional WITH TIME ZONE or WITHOUT TIME ZONE.
func (p *parser) parseZoneClause(allowWith bool) error {
	if !p.curIs(WITH) && !p.curIs(WITHOUT) {
		return nil
	}
	if p.curIs(WITH) && !allowWith {
		return p.errorf("", "TIME WITH TIME ZONE literals are not supported")
	}
	p.advance()
	if err := p.expect(TIME); err != nil {
		return err
	}
	p.advance()
	if err := p.expect(ZONE); err != nil {
		return err
	}
	p.advance()
	return nil
}
