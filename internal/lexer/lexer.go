package lexer

import (
	goerrors "errors"
	"strconv"

	"github.com/gdql/dtlit/internal/errors"
	"github.com/gdql/dtlit/internal/token"
)

// maxFractionDigits is the number of fractional-second digits that fit in nanoseconds.
const maxFractionDigits = 9

var errFractionTooLong = goerrors.New("fractional second has more than 9 digits")

var pow10 = [...]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// scanner accumulates digit runs between separators. The digits of the
// pending number are always input[start:end], since any non-digit flushes.
type scanner struct {
	input string
	toks  []token.Token
	start int
	end   int
	frac  bool
}

func (s *scanner) digit(i int) {
	if s.start == s.end {
		s.start = i
	}
	s.end = i + 1
}

func (s *scanner) pending() bool {
	return s.start != s.end
}

func (s *scanner) emit(tt token.TokenType, pos int) {
	s.toks = append(s.toks, token.Token{Type: tt, Pos: pos})
}

// flush turns the pending digits into a NUM or NANOS token. An empty buffer is
// an error when required is set and a no-op otherwise.
func (s *scanner) flush(at int, required bool) error {
	if !s.pending() {
		if required {
			return &errors.NumberParseError{Offset: at, Input: s.input}
		}
		return nil
	}
	text := s.input[s.start:s.end]
	tok, err := parseNumber(text, s.frac)
	if err != nil {
		return &errors.NumberParseError{Offset: s.start, Text: text, Input: s.input, Err: err}
	}
	tok.Pos = s.start
	s.toks = append(s.toks, tok)
	s.start, s.end = 0, 0
	return nil
}

func parseNumber(text string, frac bool) (token.Token, error) {
	if !frac {
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return token.Token{}, err
		}
		return token.Num(v), nil
	}
	if len(text) > maxFractionDigits {
		return token.Token{}, errFractionTooLong
	}
	raw, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return token.Token{}, err
	}
	return token.Nanos(uint32(raw) * pow10[maxFractionDigits-len(text)]), nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenize splits a datetime literal body into tokens. When includeTimezone is
// set, a '+' after a time value starts a timezone suffix whose tokens are
// returned separately; otherwise the second result is empty.
func Tokenize(value string, includeTimezone bool) ([]token.Token, []token.Token, error) {
	s := &scanner{input: value}
	afterTime := false
	for i, r := range value {
		switch {
		case isDigit(r):
			s.digit(i)
		case r == '-':
			// A leading dash is a sign; the assigner decides.
			if err := s.flush(i, false); err != nil {
				return nil, nil, err
			}
			s.emit(token.DASH, i)
			s.frac = false
		case r == ' ':
			if err := s.flush(i, true); err != nil {
				return nil, nil, err
			}
			s.emit(token.SPACE, i)
			s.frac = false
		case r == ':':
			if err := s.flush(i, true); err != nil {
				return nil, nil, err
			}
			s.emit(token.COLON, i)
			s.frac = false
			afterTime = true
		case r == '.':
			if err := s.flush(i, true); err != nil {
				return nil, nil, err
			}
			s.emit(token.DOT, i)
			s.frac = true
		case r == '+':
			if !includeTimezone || !afterTime {
				return nil, nil, &errors.TokenizeError{Offset: i, Char: r, Input: value}
			}
			if err := s.flush(i, true); err != nil {
				return nil, nil, err
			}
			tz, err := tokenizeTimezone(value, i)
			if err != nil {
				return nil, nil, err
			}
			return s.toks, tz, nil
		default:
			return nil, nil, &errors.TokenizeError{Offset: i, Char: r, Input: value}
		}
	}
	if err := s.flush(len(value), false); err != nil {
		return nil, nil, err
	}
	return s.toks, nil, nil
}

// TokenizeTimezone splits a timezone suffix such as "+05:30" into tokens.
func TokenizeTimezone(suffix string) ([]token.Token, error) {
	return tokenizeTimezone(suffix, 0)
}

// tokenizeTimezone scans input[from:]. Offsets are relative to input so that
// errors point into the full literal. Dash and plus flush pending digits
// before they are emitted, same as in the body.
func tokenizeTimezone(input string, from int) ([]token.Token, error) {
	s := &scanner{input: input}
	for off, r := range input[from:] {
		i := from + off
		switch {
		case isDigit(r):
			s.digit(i)
		case r == '-' || r == '+':
			if err := s.flush(i, false); err != nil {
				return nil, err
			}
			if r == '-' {
				s.emit(token.DASH, i)
			} else {
				s.emit(token.PLUS, i)
			}
		case r == ' ' || r == ':':
			if err := s.flush(i, true); err != nil {
				return nil, err
			}
			if r == ' ' {
				s.emit(token.SPACE, i)
			} else {
				s.emit(token.COLON, i)
			}
		default:
			return nil, &errors.TokenizeError{Offset: i, Char: r, Input: input}
		}
	}
	if err := s.flush(len(input), false); err != nil {
		return nil, err
	}
	return s.toks, nil
}
