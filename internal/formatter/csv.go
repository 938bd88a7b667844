package formatter

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/executor"
)

var historyColumns = []string{"ID", "Input", "Kind", "Leading", "OK", "Error", "CreatedAt"}

func formatCSV(result *executor.Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"field", "value"})
	for _, r := range resultRows(result) {
		w.Write([]string{r.name, r.value})
	}
	w.Flush()
	return b.String(), w.Error()
}

func historyCSV(entries []*data.Entry) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	header := make([]string, len(historyColumns))
	for i, c := range historyColumns {
		header[i] = strcase.ToSnake(c)
	}
	w.Write(header)
	for _, e := range entries {
		w.Write([]string{
			e.ID, e.Input, e.Kind, e.Leading, fmt.Sprint(e.OK), e.Error,
			e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	w.Flush()
	return b.String(), w.Error()
}
