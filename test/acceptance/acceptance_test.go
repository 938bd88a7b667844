package acceptance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdql/dtlit/internal/data/sqlite"
	"github.com/gdql/dtlit/internal/executor"
	"github.com/gdql/dtlit/internal/formatter"
	"github.com/gdql/dtlit/test/fixtures"
)

func TestE2E_IntervalRecordedInHistory(t *testing.T) {
	path, cleanup := fixtures.CreateTestDB(t)
	defer cleanup()

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db.Close()

	ex := executor.New(executor.WithHistory(db))
	result, err := ex.Execute(context.Background(), "INTERVAL '1-2-3 4:05:06.5' YEAR TO SECOND;")
	require.NoError(t, err)
	require.Equal(t, int64(14), result.Interval.Months)
	require.Equal(t, int64(3), result.Interval.Days)
	require.Equal(t, "14706.5", result.Interval.Seconds.Text('f'))

	entries, err := db.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, fixtures.SeedCount+1)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	require.Contains(t, ids, result.HistoryID)

	got, err := db.Get(context.Background(), result.HistoryID)
	require.NoError(t, err)
	require.True(t, got.OK)
	require.Equal(t, "1-2-3 4:05:06.5", got.Input)
}

func TestE2E_TimestampFormatsAsJSON(t *testing.T) {
	ex := executor.New()
	result, err := ex.Execute(context.Background(), "TIMESTAMPTZ '2021-12-31 23:59:59-+01:00'")
	require.Error(t, err, "the timezone sign needs a number before it")
	require.Nil(t, result)

	result, err = ex.Execute(context.Background(), "TIMESTAMPTZ '2021-12-31 23:59:59+01:00'")
	require.NoError(t, err)
	require.True(t, result.Timestamp.Time.Equal(time.Date(2021, 12, 31, 22, 59, 59, 0, time.UTC)))

	out, err := formatter.New().Format(result, formatter.FormatJSON)
	require.NoError(t, err)
	require.Contains(t, out, `"timezone_offset_second": 3600`)
}

func TestE2E_FailureRecordedInHistory(t *testing.T) {
	db, err := sqlite.Open(fixtures.CreateEmptyDB(t))
	require.NoError(t, err)
	defer db.Close()

	ex := executor.New(executor.WithHistory(db))
	_, err = ex.Execute(context.Background(), "INTERVAL '13-0' MONTH TO DAY")
	require.Error(t, err)

	entries, err := db.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].OK)
	require.Contains(t, entries[0].Error, "invalid day 0")
}
