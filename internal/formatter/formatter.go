package formatter

import (
	"fmt"
	"strings"

	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/executor"
)

// OutputFormat selects output style.
type OutputFormat int

const (
	FormatTable OutputFormat = iota
	FormatJSON
	FormatCSV
	FormatYAML
)

var formatNames = map[string]OutputFormat{
	"table": FormatTable,
	"json":  FormatJSON,
	"csv":   FormatCSV,
	"yaml":  FormatYAML,
}

// ParseFormat maps a format name (table, json, csv, yaml) to an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown output format %q (want table, json, csv or yaml)", name)
	}
	return f, nil
}

// Formatter renders results as strings.
type Formatter interface {
	Format(result *executor.Result, format OutputFormat) (string, error)
	FormatHistory(entries []*data.Entry, format OutputFormat) (string, error)
}

type formatter struct{}

// New returns a Formatter.
func New() Formatter {
	return &formatter{}
}

// Format dispatches to the appropriate formatter by format.
func (f *formatter) Format(result *executor.Result, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(newDocument(result))
	case FormatYAML:
		return formatYAML(newDocument(result))
	case FormatCSV:
		return formatCSV(result)
	default:
		return formatTable(result), nil
	}
}

// FormatHistory renders history entries, newest first as given.
func (f *formatter) FormatHistory(entries []*data.Entry, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(newHistoryDocuments(entries))
	case FormatYAML:
		return formatYAML(newHistoryDocuments(entries))
	case FormatCSV:
		return historyCSV(entries)
	default:
		return historyTable(entries), nil
	}
}
