package data

import (
	"context"
	"time"
)

// HistoryStore records literals that were parsed, successfully or not.
type HistoryStore interface {
	Record(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	Close() error
}

// Entry is one parse attempt.
// Result holds the JSON encoding of the parsed fields and is empty when OK is false.
type Entry struct {
	ID        string
	Input     string
	Kind      string
	Leading   string
	OK        bool
	Error     string
	Result    string
	CreatedAt time.Time
}
