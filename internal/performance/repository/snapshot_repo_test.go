package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/storage/postgres"
)

// setupTestDB connects to the database named by TEST_DB_DSN and ensures the
// schema. Skips the test when the variable is unset.
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, postgres.EnsureSchema(context.Background(), db))

	t.Cleanup(func() {
		db.Exec("DELETE FROM district_performance WHERE district_code LIKE 'test-%'")
		db.Close()
	})

	return db
}

func TestSnapshotRepository_UpsertAndGetFresh(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	rec := &domain.PerformanceRecord{
		DistrictCode:      "test-27",
		DistrictName:      "Patna",
		StateName:         "Bihar",
		FinYear:           "2026-2027",
		TotalWorkers:      775000,
		ActiveWorkers:     387500,
		WagesPaid:         15500000,
		WorkDaysGenerated: 480000,
	}

	require.NoError(t, repo.Upsert(ctx, rec))

	got, err := repo.GetFresh(ctx, "test-27", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.TotalWorkers, got.TotalWorkers)
	assert.Equal(t, rec.DistrictName, got.DistrictName)

	// Refresh keeps one row per district.
	rec.TotalWorkers = 800000
	require.NoError(t, repo.Upsert(ctx, rec))

	got, err = repo.GetFresh(ctx, "test-27", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(800000), got.TotalWorkers)
}

func TestSnapshotRepository_StaleRowIgnored(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	rec := &domain.PerformanceRecord{DistrictCode: "test-28", DistrictName: "Gaya", StateName: "Bihar", FinYear: "2026-2027"}
	require.NoError(t, repo.Upsert(ctx, rec))

	_, err := db.ExecContext(ctx,
		"UPDATE district_performance SET captured_at = NOW() - INTERVAL '2 days' WHERE district_code = $1",
		"test-28")
	require.NoError(t, err)

	got, err := repo.GetFresh(ctx, "test-28", 24*time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got, "a row older than maxAge must not be served")
}

func TestSnapshotRepository_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	got, err := repo.GetFresh(context.Background(), "test-none", time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got)
}
