package formatter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/executor"
)

func formatTable(result *executor.Result) string {
	var b strings.Builder
	b.WriteString("FIELD                  | VALUE\n")
	b.WriteString("-----------------------+------------------------------\n")
	for _, r := range resultRows(result) {
		fmt.Fprintf(&b, "%-22s | %s\n", r.name, r.value)
	}
	return b.String()
}

func historyTable(entries []*data.Entry) string {
	if len(entries) == 0 {
		return "No history."
	}
	var b strings.Builder
	b.WriteString("WHEN           | OK  | KIND         | INPUT\n")
	b.WriteString("---------------+-----+--------------+------------------------------\n")
	for _, e := range entries {
		ok := "yes"
		if !e.OK {
			ok = "no"
		}
		when := truncate(humanize.Time(e.CreatedAt), 14)
		kind := truncate(e.Kind, 12)
		fmt.Fprintf(&b, "%-14s | %-3s | %-12s | %s\n", when, ok, kind, truncate(e.Input, 30))
	}
	return b.String()
}

// truncate keeps at most max runes of s.
func truncate(s string, max int) string {
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
