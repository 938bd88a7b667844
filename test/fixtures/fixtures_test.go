package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdql/dtlit/internal/data/sqlite"
)

func TestCreateTestDB_AndQuery(t *testing.T) {
	path, cleanup := CreateTestDB(t)
	defer cleanup()

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.DB().QueryRow("SELECT COUNT(*) FROM history").Scan(&n))
	require.Equal(t, SeedCount, n)

	e, err := db.Get(context.Background(), NewestSeedID)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "TIMESTAMP WITH TIME ZONE", e.Kind)
	require.True(t, e.OK)
}

func TestCreateEmptyDB(t *testing.T) {
	db, err := sqlite.Open(CreateEmptyDB(t))
	require.NoError(t, err)
	defer db.Close()

	entries, err := db.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}
