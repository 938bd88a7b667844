package command

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := GetRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestParse_JSONWhenNotTerminal(t *testing.T) {
	out, _, err := run(t, "", "parse", "INTERVAL '1-2' YEAR TO MONTH")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "interval", doc["kind"])
	assert.Equal(t, "year", doc["leading"])
	assert.Equal(t, "month", doc["last"])
}

func TestParse_FormatFlag(t *testing.T) {
	out, _, err := run(t, "", "--format", "table", "parse", "TIME", "'12:30'")
	require.NoError(t, err)
	assert.Contains(t, out, "hour                   | 12")
	assert.Contains(t, out, "timestamp              | 1970-01-01 12:30:00")
}

func TestParse_Stdin(t *testing.T) {
	input := "-- comments and blank lines are skipped\n\nDATE '2020-01-02'\nINTERVAL '0' MONTH\nTIME '1'\n"
	out, stderr, err := run(t, input, "--format", "csv", "parse", "-")
	require.Error(t, err)
	assert.Equal(t, "1 of 3 literals failed to parse", err.Error())
	assert.Contains(t, stderr, "invalid month 0")
	assert.Equal(t, 2, strings.Count(out, "field,value"))
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "literals.sql")
	require.NoError(t, os.WriteFile(path, []byte("TIMESTAMPTZ '2020-01-02 03:04+1'\n"), 0o644))
	out, _, err := run(t, "", "--format", "yaml", "parse", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "timezone_offset_second: 3600")
}

func TestParse_NoLiteral(t *testing.T) {
	_, _, err := run(t, "", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no literal given")
}

func TestParse_BadFormat(t *testing.T) {
	_, _, err := run(t, "", "--format", "xml", "parse", "DATE '2020'")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "", "tokens", "--tz", "4:30+05:15")
	require.NoError(t, err)
	assert.Equal(t, "body:     Num(4) Colon Num(30)\ntimezone: Plus Num(5) Colon Num(15)\n", out)

	out, _, err = run(t, "", "tokens", "1-2")
	require.NoError(t, err)
	assert.Equal(t, "body:     Num(1) Dash Num(2)\n", out)
}

func TestTokens_Error(t *testing.T) {
	_, _, err := run(t, "", "tokens", "1x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character at offset 1")
}

func TestPattern(t *testing.T) {
	out, _, err := run(t, "", "pattern", "minutes")
	require.NoError(t, err)
	assert.Equal(t, "Num Colon Num Dot Nanos\n", out)

	out, _, err = run(t, "", "pattern", "timezone")
	require.NoError(t, err)
	assert.Equal(t, "Plus Num Colon Num\n", out)

	_, _, err = run(t, "", "pattern", "week")
	require.Error(t, err)
}

func TestHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	_, stderr, err := run(t, "", "init", db)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Database created: "+db)

	_, _, err = run(t, "", "--db", db, "parse", "INTERVAL '3' DAY")
	require.NoError(t, err)
	_, _, err = run(t, "", "--db", db, "parse", "INTERVAL '0' DAY")
	require.Error(t, err)

	out, _, err := run(t, "", "--db", db, "--format", "csv", "history")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"0", "INTERVAL", "DAY", "false"}, records[1][1:5])
	assert.Contains(t, records[1][5], "invalid day 0")
	assert.Equal(t, []string{"3", "INTERVAL", "DAY", "true", ""}, records[2][1:6])

	out, _, err = run(t, "", "--db", db, "--format", "csv", "history", "--limit", "1")
	require.NoError(t, err)
	records, err = csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistory_NoDatabase(t *testing.T) {
	_, _, err := run(t, "", "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history database configured")
}

func TestDBFromEnvironment(t *testing.T) {
	db := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("DTLIT_DB", db)
	_, _, err := run(t, "", "parse", "DATE '2020'")
	require.NoError(t, err)

	out, _, err := run(t, "", "--format", "json", "history")
	require.NoError(t, err)
	assert.Contains(t, out, `"input": "2020"`)
}

func TestJoinTokens_Empty(t *testing.T) {
	assert.Equal(t, "(none)", joinTokens(nil))
}
