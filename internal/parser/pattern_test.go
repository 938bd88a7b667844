package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/token"
)

func TestExpectedBody(t *testing.T) {
	year, err := ExpectedBody(ast.Year)
	require.NoError(t, err)
	require.Equal(t, []token.TokenType{
		token.NUM, token.DASH, token.NUM, token.DASH, token.NUM, token.SPACE,
		token.NUM, token.COLON, token.NUM, token.COLON, token.NUM, token.DOT, token.NANOS,
	}, year)

	day, err := ExpectedBody(ast.Day)
	require.NoError(t, err)
	require.Equal(t, []token.TokenType{
		token.NUM, token.SPACE, token.NUM, token.COLON, token.NUM, token.COLON, token.NUM, token.DOT, token.NANOS,
	}, day)
}

func TestExpectedBody_Suffixes(t *testing.T) {
	year, err := ExpectedBody(ast.Year)
	require.NoError(t, err)
	tests := []struct {
		field  ast.Field
		offset int
	}{
		{ast.Year, 0},
		{ast.Month, 2},
		{ast.Day, 4},
		{ast.Hour, 6},
		{ast.Minute, 8},
		{ast.Second, 10},
	}
	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			got, err := ExpectedBody(tt.field)
			require.NoError(t, err)
			assert.Equal(t, year[tt.offset:], got)
			assert.Equal(t, token.NUM, got[0])
			assert.Equal(t, token.NANOS, got[len(got)-1])
		})
	}
}

func TestExpectedBody_TimezoneOffsetSecondRejected(t *testing.T) {
	_, err := ExpectedBody(ast.TimezoneOffsetSecond)
	require.ErrorIs(t, err, ast.ErrInvalidLeadingField)

	_, err = ExpectedBody(ast.Field(42))
	require.ErrorIs(t, err, ast.ErrInvalidLeadingField)
}

func TestExpectedBody_ReturnsCopy(t *testing.T) {
	a, err := ExpectedBody(ast.Year)
	require.NoError(t, err)
	a[0] = token.PLUS
	b, err := ExpectedBody(ast.Year)
	require.NoError(t, err)
	require.Equal(t, token.NUM, b[0])
}

func TestExpectedTimezone(t *testing.T) {
	require.Equal(t, []token.TokenType{token.PLUS, token.NUM, token.COLON, token.NUM}, ExpectedTimezone())
}
