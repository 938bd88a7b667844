package formatter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/gdql/dtlit/internal/ast"
	"github.com/gdql/dtlit/internal/data"
	"github.com/gdql/dtlit/internal/executor"
	"github.com/gdql/dtlit/internal/ir"
)

// document is the JSON and YAML shape of a parse result.
type document struct {
	Kind      string              `json:"kind" yaml:"kind"`
	Value     string              `json:"value" yaml:"value"`
	Leading   string              `json:"leading" yaml:"leading"`
	Last      string              `json:"last" yaml:"last"`
	Fields    *ast.ParsedDateTime `json:"fields" yaml:"fields"`
	Interval  *ir.Interval        `json:"interval,omitempty" yaml:"interval,omitempty"`
	Timestamp *ir.Timestamp       `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	HistoryID string              `json:"history_id,omitempty" yaml:"history_id,omitempty"`
	Duration  string              `json:"duration" yaml:"duration"`
}

func newDocument(r *executor.Result) *document {
	return &document{
		Kind:      strcase.ToSnake(r.Literal.Kind.String()),
		Value:     r.Literal.Value,
		Leading:   strcase.ToSnake(r.Literal.Leading.String()),
		Last:      strcase.ToSnake(r.Literal.Last.String()),
		Fields:    r.Parsed,
		Interval:  r.Interval,
		Timestamp: r.Timestamp,
		HistoryID: r.HistoryID,
		Duration:  r.Duration.String(),
	}
}

type historyDocument struct {
	ID        string          `json:"id" yaml:"id"`
	Input     string          `json:"input" yaml:"input"`
	Kind      string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Leading   string          `json:"leading,omitempty" yaml:"leading,omitempty"`
	OK        bool            `json:"ok" yaml:"ok"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
	Fields    storedFields    `json:"fields,omitempty" yaml:"fields,omitempty"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
}

func newHistoryDocuments(entries []*data.Entry) []*historyDocument {
	out := make([]*historyDocument, 0, len(entries))
	for _, e := range entries {
		d := &historyDocument{
			ID:        e.ID,
			Input:     e.Input,
			Kind:      strcase.ToSnake(e.Kind),
			Leading:   strcase.ToSnake(e.Leading),
			OK:        e.OK,
			Error:     e.Error,
			CreatedAt: e.CreatedAt,
		}
		if e.Result != "" {
			d.Fields = storedFields(e.Result)
		}
		out = append(out, d)
	}
	return out
}

// storedFields is the JSON a history entry keeps for its parsed fields.
type storedFields []byte

func (f storedFields) MarshalJSON() ([]byte, error) {
	return json.RawMessage(f).MarshalJSON()
}

// MarshalYAML decodes the stored JSON so YAML output carries the same fields.
func (f storedFields) MarshalYAML() (interface{}, error) {
	var p ast.ParsedDateTime
	if err := json.Unmarshal(f, &p); err != nil {
		return nil, fmt.Errorf("decoding stored fields: %w", err)
	}
	return &p, nil
}
