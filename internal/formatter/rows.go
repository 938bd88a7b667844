package formatter

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/ncruces/go-strftime"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/executor"
	"github.com/gdql/dtlit/internal/ir"
)

type row struct {
	name  string
	value string
}

// resultRows lists the set fields of a result in canonical order, followed by
// the expanded value.
func resultRows(r *executor.Result) []row {
	p := r.Parsed
	rows := []row{
		{"kind", strcase.ToSnake(r.Literal.Kind.String())},
		{"value", r.Literal.Value},
		{"leading", strcase.ToSnake(r.Literal.Leading.String())},
		{"is_positive", fmt.Sprint(p.IsPositive)},
	}
	add := func(f ast.Field, v interface{}) {
		rows = append(rows, row{strcase.ToSnake(f.String()), fmt.Sprint(v)})
	}
	if p.Year != nil {
		add(ast.Year, *p.Year)
	}
	if p.Month != nil {
		add(ast.Month, *p.Month)
	}
	if p.Day != nil {
		add(ast.Day, *p.Day)
	}
	if p.Hour != nil {
		add(ast.Hour, *p.Hour)
	}
	if p.Minute != nil {
		add(ast.Minute, *p.Minute)
	}
	if p.Second != nil {
		add(ast.Second, *p.Second)
	}
	if p.Nano != nil {
		rows = append(rows, row{"nano", fmt.Sprint(*p.Nano)})
	}
	if p.TimezoneOffsetSecond != nil {
		add(ast.TimezoneOffsetSecond, *p.TimezoneOffsetSecond)
	}
	switch {
	case r.Interval != nil:
		rows = append(rows, row{"interval", r.Interval.String()})
	case r.Timestamp != nil:
		rows = append(rows, row{"timestamp", formatTimestamp(r.Timestamp)})
	}
	return rows
}

func formatTimestamp(ts *ir.Timestamp) string {
	t := ts.Time
	var b strings.Builder
	b.WriteString(strftime.Format("%Y-%m-%d %H:%M:%S", t))
	if ns := t.Nanosecond(); ns != 0 {
		b.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", ns), "0"))
	}
	if ts.HasZone {
		b.WriteString(strftime.Format(" %z", t))
	}
	return b.String()
}
