package ast

import (
	"errors"
	"strings"
)

// Field is a date/time unit. Year through Second are ordered from most to least
// significant; TimezoneOffsetSecond is only ever an output location.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	TimezoneOffsetSecond
)

var fieldNames = [...]string{
	Year:                 "YEAR",
	Month:                "MONTH",
	Day:                  "DAY",
	Hour:                 "HOUR",
	Minute:               "MINUTE",
	Second:               "SECOND",
	TimezoneOffsetSecond: "TIMEZONE_OFFSET_SECOND",
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "<unknown>"
}

// ErrInvalidLeadingField is returned when a field that cannot start a literal
// is used as the leading field.
var ErrInvalidLeadingField = errors.New("invalid leading field")

// LeadingFields lists the fields a literal may start at, most significant first.
var LeadingFields = []Field{Year, Month, Day, Hour, Minute, Second}

// IsLeading reports whether f may be used as a leading field.
func (f Field) IsLeading() bool {
	return f >= Year && f <= Second
}

// LookupField maps a unit keyword (YEAR, months, ...) to its Field.
// The second result is false for unknown names and for TimezoneOffsetSecond.
func LookupField(name string) (Field, bool) {
	switch strings.TrimSuffix(strings.ToUpper(name), "S") {
	case "YEAR":
		return Year, true
	case "MONTH":
		return Month, true
	case "DAY":
		return Day, true
	case "HOUR":
		return Hour, true
	case "MINUTE":
		return Minute, true
	case "SECOND":
		return Second, true
	}
	return 0, false
}

// Cursor walks the leading fields in order. It stops at Second instead of
// running off the end.
type Cursor struct {
	idx int
}

// NewCursor returns a cursor positioned at start.
func NewCursor(start Field) (Cursor, error) {
	if !start.IsLeading() {
		return Cursor{}, ErrInvalidLeadingField
	}
	return Cursor{idx: int(start)}, nil
}

// Field returns the field the cursor points at.
func (c Cursor) Field() Field {
	return LeadingFields[c.idx]
}

// Terminal reports whether the cursor is at the last field.
func (c Cursor) Terminal() bool {
	return c.idx == len(LeadingFields)-1
}

// Advance moves to the next field. It is a no-op at the terminal field.
func (c *Cursor) Advance() {
	if !c.Terminal() {
		c.idx++
	}
}

// ParsedDateTime is the field-by-field result of parsing a datetime literal.
// Unset fields are nil.
type ParsedDateTime struct {
	IsPositive           bool    `json:"is_positive" yaml:"is_positive"`
	Year                 *uint64 `json:"year,omitempty" yaml:"year,omitempty"`
	Month                *uint64 `json:"month,omitempty" yaml:"month,omitempty"`
	Day                  *uint64 `json:"day,omitempty" yaml:"day,omitempty"`
	Hour                 *uint64 `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute               *uint64 `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second               *uint64 `json:"second,omitempty" yaml:"second,omitempty"`
	Nano                 *uint32 `json:"nano,omitempty" yaml:"nano,omitempty"`
	TimezoneOffsetSecond *int64  `json:"timezone_offset_second,omitempty" yaml:"timezone_offset_second,omitempty"`
}

// New returns an empty, positive ParsedDateTime.
func New() *ParsedDateTime {
	return &ParsedDateTime{IsPositive: true}
}

// IsSet reports whether a value was stored for f.
func (p *ParsedDateTime) IsSet(f Field) bool {
	switch f {
	case Year:
		return p.Year != nil
	case Month:
		return p.Month != nil
	case Day:
		return p.Day != nil
	case Hour:
		return p.Hour != nil
	case Minute:
		return p.Minute != nil
	case Second:
		return p.Second != nil
	case TimezoneOffsetSecond:
		return p.TimezoneOffsetSecond != nil
	}
	return false
}
