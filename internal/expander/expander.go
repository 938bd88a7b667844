package expander

import (
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/ir"
)

// decimalCtx has enough precision for any sum of int64 hours, minutes and seconds.
var decimalCtx = apd.BaseContext.WithPrecision(48)

// Expander turns parsed literal fields into concrete values.
type Expander interface {
	ExpandInterval(*ast.ParsedDateTime) (*ir.Interval, error)
	ExpandTimestamp(*ast.ParsedDateTime) (*ir.Timestamp, error)
}

type expander struct{}

// New returns an Expander.
func New() Expander {
	return &expander{}
}

func (e *expander) ExpandInterval(pdt *ast.ParsedDateTime) (*ir.Interval, error) {
	if pdt == nil {
		return nil, nil
	}
	years, err := toInt64("year", pdt.Year)
	if err != nil {
		return nil, err
	}
	months, err := toInt64("month", pdt.Month)
	if err != nil {
		return nil, err
	}
	days, err := toInt64("day", pdt.Day)
	if err != nil {
		return nil, err
	}
	if years > (math.MaxInt64-months)/12 {
		return nil, fmt.Errorf("interval of %d years %d months out of range", years, months)
	}
	out := &ir.Interval{Months: years*12 + months, Days: days, Seconds: new(apd.Decimal)}

	parts := []struct {
		name  string
		v     *uint64
		scale int64
	}{
		{"hour", pdt.Hour, 3600},
		{"minute", pdt.Minute, 60},
		{"second", pdt.Second, 1},
	}
	for _, p := range parts {
		v, err := toInt64(p.name, p.v)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			continue
		}
		term := new(apd.Decimal)
		if _, err := decimalCtx.Mul(term, apd.New(v, 0), apd.New(p.scale, 0)); err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		if _, err := decimalCtx.Add(out.Seconds, out.Seconds, term); err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
	}
	if pdt.Nano != nil {
		if _, err := decimalCtx.Add(out.Seconds, out.Seconds, apd.New(int64(*pdt.Nano), -9)); err != nil {
			return nil, fmt.Errorf("nano: %w", err)
		}
	}
	out.Seconds.Reduce(out.Seconds)

	if !pdt.IsPositive {
		out.Months = -out.Months
		out.Days = -out.Days
		if !out.Seconds.IsZero() {
			out.Seconds.Neg(out.Seconds)
		}
	}
	return out, nil
}

// ExpandTimestamp builds a point in time. Missing date parts default to
// 1970-01-01; without a timezone offset the result is in UTC.
func (e *expander) ExpandTimestamp(pdt *ast.ParsedDateTime) (*ir.Timestamp, error) {
	if pdt == nil {
		return nil, nil
	}
	if !pdt.IsPositive {
		return nil, fmt.Errorf("timestamp literal cannot be negative")
	}
	year, err := toInt("year", pdt.Year, 1970)
	if err != nil {
		return nil, err
	}
	month, err := toInt("month", pdt.Month, 1)
	if err != nil {
		return nil, err
	}
	day, err := toInt("day", pdt.Day, 1)
	if err != nil {
		return nil, err
	}
	hour, err := toInt("hour", pdt.Hour, 0)
	if err != nil {
		return nil, err
	}
	minute, err := toInt("minute", pdt.Minute, 0)
	if err != nil {
		return nil, err
	}
	second, err := toInt("second", pdt.Second, 0)
	if err != nil {
		return nil, err
	}
	nano := 0
	if pdt.Nano != nil {
		nano = int(*pdt.Nano)
	}

	loc := time.UTC
	if pdt.TimezoneOffsetSecond != nil {
		off := *pdt.TimezoneOffsetSecond
		if off > math.MaxInt32 || off < math.MinInt32 {
			return nil, fmt.Errorf("timezone offset %d out of range", off)
		}
		loc = time.FixedZone(zoneName(off), int(off))
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, nano, loc)
	return &ir.Timestamp{Time: t, HasZone: pdt.TimezoneOffsetSecond != nil}, nil
}

func zoneName(off int64) string {
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d:%02d", sign, off/3600, off%3600/60)
}

func toInt64(name string, v *uint64) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if *v > math.MaxInt64 {
		return 0, fmt.Errorf("%s %d out of range", name, *v)
	}
	return int64(*v), nil
}

func toInt(name string, v *uint64, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v > math.MaxInt32 {
		return 0, fmt.Errorf("%s %d out of range", name, *v)
	}
	return int(*v), nil
}
