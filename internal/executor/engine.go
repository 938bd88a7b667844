package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/errors"
	"github.com/gdql/dtlit/internal/expander"
	"github.com/gdql/dtlit/internal/ir"
	"github.com/gdql/dtlit/internal/lexer"
	"github.com/gdql/dtlit/internal/literal"
	"github.com/gdql/dtlit/internal/parser"
	"github.com/gdql/dtlit/internal/token"
)

// Result is the output of parsing one typed literal.
// Exactly one of Interval and Timestamp is set.
type Result struct {
	Literal   *literal.Literal
	Body      []token.Token
	Timezone  []token.Token
	Parsed    *ast.ParsedDateTime
	Interval  *ir.Interval
	Timestamp *ir.Timestamp
	HistoryID string
	Duration  time.Duration
}

// Executor runs a typed literal end-to-end.
type Executor interface {
	Execute(ctx context.Context, text string) (*Result, error)
	ExecuteLiteral(ctx context.Context, lit *literal.Literal) (*Result, error)
}

type executor struct {
	expander expander.Expander
	history  data.HistoryStore
	logger   *slog.Logger
}

// Option configures an Executor.
type Option func(*executor)

// WithHistory records every parse attempt in store.
func WithHistory(store data.HistoryStore) Option {
	return func(e *executor) { e.history = store }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *executor) { e.logger = l }
}

// New builds an Executor.
func New(opts ...Option) Executor {
	e := &executor{expander: expander.New(), logger: slog.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute parses the literal syntax around the value and then the value itself.
func (e *executor) Execute(ctx context.Context, text string) (*Result, error) {
	lit, err := literal.Parse(text)
	if err != nil {
		e.record(ctx, &data.Entry{Input: text, Error: err.Error()})
		return nil, err
	}
	return e.ExecuteLiteral(ctx, lit)
}

// ExecuteLiteral tokenizes and assigns the literal's value and expands the result.
func (e *executor) ExecuteLiteral(ctx context.Context, lit *literal.Literal) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	entry := &data.Entry{Input: lit.Value, Kind: lit.Kind.String(), Leading: lit.Leading.String()}

	out, err := e.run(lit)
	if err != nil {
		if lit.Text != "" {
			err = errors.Rebase(err, lit.Text, lit.Pos)
		}
		entry.Error = err.Error()
		e.record(ctx, entry)
		return nil, err
	}
	out.Duration = time.Since(start)

	b, err := json.Marshal(out.Parsed)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	entry.OK = true
	entry.Result = string(b)
	out.HistoryID = e.record(ctx, entry)
	return out, nil
}

func (e *executor) run(lit *literal.Literal) (*Result, error) {
	body, tz, err := lexer.Tokenize(lit.Value, lit.IncludeTimezone)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("tokenized literal", "value", lit.Value, "body", len(body), "timezone", len(tz))

	pdt, err := parser.Assign(body, lit.Leading, lit.Value, tz)
	if err != nil {
		return nil, err
	}
	if err := checkRange(lit, pdt); err != nil {
		return nil, err
	}
	e.logger.Debug("assigned fields", "value", lit.Value, "leading", lit.Leading)

	out := &Result{Literal: lit, Body: body, Timezone: tz, Parsed: pdt}
	if lit.Kind == literal.KindInterval {
		out.Interval, err = e.expander.ExpandInterval(pdt)
	} else {
		out.Timestamp, err = e.expander.ExpandTimestamp(pdt)
	}
	if err != nil {
		return nil, fmt.Errorf("expanding %s '%s': %w", lit.Kind, lit.Value, err)
	}
	return out, nil
}

// checkRange rejects fields outside the literal's declared range, e.g. a
// time part in a DATE or seconds in INTERVAL ... HOUR TO MINUTE.
func checkRange(lit *literal.Literal, pdt *ast.ParsedDateTime) error {
	for _, f := range ast.LeadingFields {
		set := pdt.IsSet(f)
		if f == ast.Second && pdt.Nano != nil {
			set = true
		}
		if set && !lit.Allows(f) {
			return &errors.ParseError{
				Message: fmt.Sprintf("%s is not allowed in %s literal ending at %s", f, lit.Kind, lit.Last),
				Input:   lit.Value,
				Offset:  len(lit.Value),
			}
		}
	}
	return nil
}

// record stores entry if a history store is configured and returns its ID.
// History failures are logged and never fail the parse.
func (e *executor) record(ctx context.Context, entry *data.Entry) string {
	if e.history == nil {
		return ""
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if err := e.history.Record(ctx, entry); err != nil {
		e.logger.Warn("recording history failed", "input", entry.Input, "err", err)
		return ""
	}
	return entry.ID
}
