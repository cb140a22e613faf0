// Package service implements the performance data client: fiscal-year
// derivation, response caching, upstream fetching and numeric parsing.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	districtdomain "github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/domain"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/metrics"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

// snapshotWindow is how long a durable snapshot stays fresh enough to serve
// without touching the upstream source.
const snapshotWindow = 24 * time.Hour

// Fetcher is the upstream access the service needs. *DataGovClient satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, resource string, params map[string]string) ([]byte, error)
}

// SnapshotStore is the optional durable store for parsed records.
type SnapshotStore interface {
	GetFresh(ctx context.Context, districtCode string, maxAge time.Duration) (*domain.PerformanceRecord, error)
	Upsert(ctx context.Context, record *domain.PerformanceRecord) error
}

// Service resolves a district's performance snapshot, shielding callers from
// upstream latency and quota limits. Each instance owns its cache; construct
// one per process (or per test).
type Service struct {
	fetcher    Fetcher
	cache      *ResponseCache
	snapshots  SnapshotStore // nil when no durable store is configured
	resourceID string
	log        *zap.SugaredLogger
	now        func() time.Time
}

// New wires a service. snapshots may be nil.
func New(fetcher Fetcher, cache *ResponseCache, snapshots SnapshotStore, resourceID string, log *zap.SugaredLogger) *Service {
	return &Service{
		fetcher:    fetcher,
		cache:      cache,
		snapshots:  snapshots,
		resourceID: resourceID,
		log:        log,
		now:        time.Now,
	}
}

// FiscalYear returns the April–March reporting period containing t, in the
// upstream's "2025-2026" form.
func FiscalYear(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// GetDistrictPerformance returns the current-period record for the district.
// Resolution order: durable snapshot (if configured), TTL cache, upstream.
func (s *Service) GetDistrictPerformance(ctx context.Context, district districtdomain.District) (*domain.PerformanceRecord, error) {
	finYear := FiscalYear(s.now())

	if s.snapshots != nil {
		if rec, err := s.snapshots.GetFresh(ctx, district.ID, snapshotWindow); err == nil && rec != nil {
			return rec, nil
		} else if err != nil {
			// Snapshot store trouble never fails the request.
			s.log.Warnw("snapshot lookup failed", "district_code", district.ID, "error", err)
		}
	}

	params := map[string]string{
		"filters": fmt.Sprintf(
			`[{"column":"district_code","operator":"=","value":"%s"},{"column":"fin_year","operator":"=","value":"%s"}]`,
			district.ID, finYear,
		),
		"limit": "1",
	}
	key := Key(s.resourceID, params)

	body, hit := s.cache.Get(key)
	if hit {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
		fetched, err := s.fetcher.Fetch(ctx, s.resourceID, params)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, fetched)
		body = fetched
	}

	var envelope domain.UpstreamResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed cached payload: %v", domain.ErrUpstream, err)
	}
	if len(envelope.Records) == 0 {
		return nil, fmt.Errorf("%w: district %s, period %s", domain.ErrNoData, district.ID, finYear)
	}

	rec := parseRecord(district, finYear, envelope.Records[0])

	if s.snapshots != nil {
		if err := s.snapshots.Upsert(ctx, rec); err != nil {
			s.log.Warnw("snapshot upsert failed", "district_code", district.ID, "error", err)
		}
	}

	return rec, nil
}

// parseRecord converts an upstream row into a PerformanceRecord. Numeric
// fields the upstream omits or mangles parse to zero.
func parseRecord(district districtdomain.District, finYear string, raw domain.UpstreamRecord) *domain.PerformanceRecord {
	households := parseNumeric(raw.TotalHouseholds)
	avgDays := parseNumeric(raw.AvgEmploymentDays)

	name := raw.DistrictName
	if name == "" {
		name = district.Name
	}
	state := raw.StateName
	if state == "" {
		state = district.State
	}

	return &domain.PerformanceRecord{
		DistrictCode:         district.ID,
		DistrictName:         name,
		StateName:            state,
		FinYear:              finYear,
		TotalWorkers:         parseCount(raw.TotalWorkers),
		ActiveWorkers:        parseCount(raw.ActiveWorkers),
		WagesPaid:            parseNumeric(raw.Wages),
		WorkDaysGenerated:    int64(math.Round(avgDays * households)),
		AvgEmploymentDays:    avgDays,
		AvgWageRate:          parseNumeric(raw.AvgWageRate),
		WomenPersondays:      parseCount(raw.WomenPersondays),
		SCPersondays:         parseCount(raw.SCPersondays),
		STPersondays:         parseCount(raw.STPersondays),
		PaymentsWithin15Days: parseNumeric(raw.PaymentsWithin15Day),
	}
}

func parseNumeric(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseCount(v string) int64 {
	return int64(parseNumeric(v))
}
