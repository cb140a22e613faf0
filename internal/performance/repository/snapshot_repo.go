package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

// SnapshotRepository persists parsed performance records in PostgreSQL so a
// restart does not start from a cold cache. One row per district; refreshed
// rows keep their id.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert stores or refreshes the snapshot for the record's district.
func (r *SnapshotRepository) Upsert(ctx context.Context, rec *domain.PerformanceRecord) error {
	query := `
		INSERT INTO district_performance (
			id, district_code, district_name, state_name, fin_year,
			total_workers, active_workers, wages_paid, work_days_generated,
			avg_employment_days, avg_wage_rate,
			women_persondays, sc_persondays, st_persondays,
			payments_within_15_days_pct, captured_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (district_code) DO UPDATE SET
			district_name = EXCLUDED.district_name,
			state_name = EXCLUDED.state_name,
			fin_year = EXCLUDED.fin_year,
			total_workers = EXCLUDED.total_workers,
			active_workers = EXCLUDED.active_workers,
			wages_paid = EXCLUDED.wages_paid,
			work_days_generated = EXCLUDED.work_days_generated,
			avg_employment_days = EXCLUDED.avg_employment_days,
			avg_wage_rate = EXCLUDED.avg_wage_rate,
			women_persondays = EXCLUDED.women_persondays,
			sc_persondays = EXCLUDED.sc_persondays,
			st_persondays = EXCLUDED.st_persondays,
			payments_within_15_days_pct = EXCLUDED.payments_within_15_days_pct,
			captured_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), rec.DistrictCode, rec.DistrictName, rec.StateName, rec.FinYear,
		rec.TotalWorkers, rec.ActiveWorkers, rec.WagesPaid, rec.WorkDaysGenerated,
		rec.AvgEmploymentDays, rec.AvgWageRate,
		rec.WomenPersondays, rec.SCPersondays, rec.STPersondays,
		rec.PaymentsWithin15Days,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	return nil
}

// GetFresh returns the stored snapshot for the district if it was captured
// within maxAge. A missing or stale row returns (nil, nil).
func (r *SnapshotRepository) GetFresh(ctx context.Context, districtCode string, maxAge time.Duration) (*domain.PerformanceRecord, error) {
	query := `
		SELECT district_code, district_name, state_name, fin_year,
			total_workers, active_workers, wages_paid, work_days_generated,
			avg_employment_days, avg_wage_rate,
			women_persondays, sc_persondays, st_persondays,
			payments_within_15_days_pct
		FROM district_performance
		WHERE district_code = $1 AND captured_at > $2
	`

	cutoff := time.Now().Add(-maxAge)

	var rec domain.PerformanceRecord
	err := r.db.QueryRowContext(ctx, query, districtCode, cutoff).Scan(
		&rec.DistrictCode, &rec.DistrictName, &rec.StateName, &rec.FinYear,
		&rec.TotalWorkers, &rec.ActiveWorkers, &rec.WagesPaid, &rec.WorkDaysGenerated,
		&rec.AvgEmploymentDays, &rec.AvgWageRate,
		&rec.WomenPersondays, &rec.SCPersondays, &rec.STPersondays,
		&rec.PaymentsWithin15Days,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return &rec, nil
}
