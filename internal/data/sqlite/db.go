package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gdql/dtlit/internal/data"
)

// timeLayout has a fixed-width fraction so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB implements data.HistoryStore using SQLite.
type DB struct {
	conn *sql.DB
}

// Open opens a SQLite database at the given path (file path or ":memory:").
// The schema is applied on open so that databases created by older versions keep working.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Each pooled connection would get its own empty database.
		conn.SetMaxOpenConns(1)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DB returns the underlying *sql.DB.
func (db *DB) DB() *sql.DB {
	return db.conn
}

// Record inserts e. CreatedAt is set to now when zero.
func (db *DB) Record(ctx context.Context, e *data.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := db.conn.ExecContext(ctx,
		"INSERT INTO history (id, input, kind, leading, ok, error, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Input, e.Kind, e.Leading, e.OK, e.Error, e.Result, e.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("record %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]*data.Entry, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, input, kind, leading, ok, error, result, created_at FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*data.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns the entry with the given ID, or nil if there is none.
func (db *DB) Get(ctx context.Context, id string) (*data.Entry, error) {
	row := db.conn.QueryRowContext(ctx,
		"SELECT id, input, kind, leading, ok, error, result, created_at FROM history WHERE id = ?", id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (*data.Entry, error) {
	var (
		e       data.Entry
		created string
	)
	if err := s.Scan(&e.ID, &e.Input, &e.Kind, &e.Leading, &e.OK, &e.Error, &e.Result, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("entry %s: created_at: %w", e.ID, err)
	}
	e.CreatedAt = t
	return &e, nil
}
