package mock

import (
	"context"

	"github.com/gdql/dtlit/internal/data"
)

// HistoryStore is a mock that returns configurable results (for executor tests without a real DB).
type HistoryStore struct {
	RecordFunc func(ctx context.Context, e *data.Entry) error
	RecentFunc func(ctx context.Context, limit int) ([]*data.Entry, error)
	GetFunc    func(ctx context.Context, id string) (*data.Entry, error)
	CloseFunc  func() error

	// Recorded collects every entry passed to Record.
	Recorded []*data.Entry
}

// Record appends e to Recorded and calls RecordFunc if set.
func (m *HistoryStore) Record(ctx context.Context, e *data.Entry) error {
	m.Recorded = append(m.Recorded, e)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, e)
	}
	return nil
}

// Recent calls RecentFunc if set, else returns the last limit recorded entries, newest first.
func (m *HistoryStore) Recent(ctx context.Context, limit int) ([]*data.Entry, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	var out []*data.Entry
	for i := len(m.Recorded) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Recorded[i])
	}
	return out, nil
}

// Get calls GetFunc if set, else searches Recorded.
func (m *HistoryStore) Get(ctx context.Context, id string) (*data.Entry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	for _, e := range m.Recorded {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

// Close calls CloseFunc if set, else returns nil.
func (m *HistoryStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
