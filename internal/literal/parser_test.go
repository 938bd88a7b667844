package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *Literal
	}{
		{
			"INTERVAL '1-2' YEAR TO MONTH",
			&Literal{Kind: KindInterval, Value: "1-2", Leading: ast.Year, Last: ast.Month, Pos: 10},
		},
		{
			"interval '5' minutes;",
			&Literal{Kind: KindInterval, Value: "5", Leading: ast.Minute, Last: ast.Second, Pos: 10},
		},
		{
			"DATE '2020-01-02'",
			&Literal{Kind: KindDate, Value: "2020-01-02", Leading: ast.Year, Last: ast.Day, Pos: 6},
		},
		{
			"TIME '12:30'",
			&Literal{Kind: KindTime, Value: "12:30", Leading: ast.Hour, Last: ast.Second, Pos: 6},
		},
		{
			"TIME WITHOUT TIME ZONE '12:30'",
			&Literal{Kind: KindTime, Value: "12:30", Leading: ast.Hour, Last: ast.Second, Pos: 24},
		},
		{
			"TIMESTAMP '2020-01-02 03:04'",
			&Literal{Kind: KindTimestamp, Value: "2020-01-02 03:04", Leading: ast.Year, Last: ast.Second, Pos: 11},
		},
		{
			"TIMESTAMP WITHOUT TIME ZONE '2020'",
			&Literal{Kind: KindTimestamp, Value: "2020", Leading: ast.Year, Last: ast.Second, Pos: 29},
		},
		{
			"TIMESTAMP WITH TIME ZONE '2020-01-02 03:04+1'",
			&Literal{Kind: KindTimestampTZ, Value: "2020-01-02 03:04+1", Leading: ast.Year, Last: ast.Second, IncludeTimezone: true, Pos: 26},
		},
		{
			"TIMESTAMPTZ '2020'",
			&Literal{Kind: KindTimestampTZ, Value: "2020", Leading: ast.Year, Last: ast.Second, IncludeTimezone: true, Pos: 13},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			tt.want.Text = tt.input
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Value, got.Text[got.Pos:got.Pos+len(got.Value)])
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"", "empty literal"},
		{"SELECT 1", "expected INTERVAL, DATE, TIME, TIMESTAMP or TIMESTAMPTZ"},
		{"INTERVAL 5 YEAR", "expected <string>"},
		{"INTERVAL '5'", "expected a field"},
		{"INTERVAL '5' WEEK", `unknown field "WEEK"`},
		{"INTERVAL '1-2' MONTH TO YEAR", "YEAR is more significant than MONTH"},
		{"TIME WITH TIME ZONE '12:00'", "not supported"},
		{"TIMESTAMP WITH ZONE '2020'", "expected TIME"},
		{"DATE '2020' extra", "expected <eof>"},
		{"DATE '2020", `got "unterminated string"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var pe *errors.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Message, tt.contains)
		})
	}
}

func TestLiteral_Allows(t *testing.T) {
	lit := &Literal{Leading: ast.Day, Last: ast.Minute}
	assert.False(t, lit.Allows(ast.Month))
	assert.True(t, lit.Allows(ast.Day))
	assert.True(t, lit.Allows(ast.Minute))
	assert.False(t, lit.Allows(ast.Second))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "TIMESTAMP WITH TIME ZONE", KindTimestampTZ.String())
	assert.Equal(t, "DATE", KindDate.String())
}
