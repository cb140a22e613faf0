package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

// MockProvider substitutes a deterministic record for every district when no
// upstream API key is configured. The same district code always yields the
// same numbers, so the service remains usable (and demoable) offline.
type MockProvider struct{}

// NewMockProvider returns a provider serving synthetic upstream envelopes.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

type filterClause struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Fetch fabricates an "ok" envelope with one record derived from the
// district code in the filters parameter.
func (p *MockProvider) Fetch(_ context.Context, _ string, params map[string]string) ([]byte, error) {
	var districtCode, finYear string
	var clauses []filterClause
	if err := json.Unmarshal([]byte(params["filters"]), &clauses); err == nil {
		for _, cl := range clauses {
			switch cl.Column {
			case "district_code":
				districtCode = cl.Value
			case "fin_year":
				finYear = cl.Value
			}
		}
	}

	// Scale the base figures by the numeric district code so every district
	// reports distinct but stable numbers.
	multiplier, err := strconv.ParseInt(districtCode, 10, 64)
	if err != nil || multiplier < 1 {
		multiplier = 1
	}

	workDays := 75000 + multiplier*15000
	record := domain.UpstreamRecord{
		FinYear:             finYear,
		DistrictCode:        districtCode,
		TotalWorkers:        strconv.FormatInt(100000+multiplier*25000, 10),
		ActiveWorkers:       strconv.FormatInt(50000+multiplier*12500, 10),
		Wages:               strconv.FormatInt(2000000+multiplier*500000, 10),
		TotalHouseholds:     strconv.FormatInt(workDays/50, 10),
		AvgEmploymentDays:   "50",
		AvgWageRate:         "261.5",
		WomenPersondays:     strconv.FormatInt(workDays/2, 10),
		SCPersondays:        strconv.FormatInt(workDays/5, 10),
		STPersondays:        strconv.FormatInt(workDays/8, 10),
		PaymentsWithin15Day: "92.4",
	}

	envelope := domain.UpstreamResponse{
		Status:  "ok",
		Total:   1,
		Count:   1,
		Records: []domain.UpstreamRecord{record},
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal mock envelope: %w", err)
	}
	return body, nil
}
