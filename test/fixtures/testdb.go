package fixtures

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

//go:embed minimal_data.sql
var minimalDataSQL string

// SeedCount is the number of history entries in minimal_data.sql.
const SeedCount = 3

// NewestSeedID is the ID of the most recent entry in minimal_data.sql.
const NewestSeedID = "7c1d3b9e-0c0e-4d8c-9e43-6c1a0f6d2a03"

// CreateTestDB creates a temporary SQLite history database with schema and minimal_data applied.
// Returns the file path and a cleanup function. The database is closed before return.
func CreateTestDB(t *testing.T) (path string, cleanup func()) {
	t.Helper()
	dir := t.TempDir()
	path = filepath.Join(dir, "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	if len(minimalDataSQL) > 0 {
		if _, err := db.Exec(minimalDataSQL); err != nil {
			t.Fatalf("exec minimal_data: %v", err)
		}
	}

	cleanup = func() { os.RemoveAll(dir) }
	return path, cleanup
}

// CreateEmptyDB creates a temporary history database with the schema only.
func CreateEmptyDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	return path
}
