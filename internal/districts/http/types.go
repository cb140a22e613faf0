package http

import "github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"

type performanceData struct {
	TotalWorkers      int64   `json:"total_workers"`
	ActiveWorkers     int64   `json:"active_workers"`
	WagesPaid         float64 `json:"wages_paid"`
	WorkDaysGenerated int64   `json:"work_days_generated"`

	AvgEmploymentDays    float64 `json:"avg_employment_days"`
	AvgWageRate          float64 `json:"avg_wage_rate"`
	WomenPersondays      int64   `json:"women_persondays"`
	SCPersondays         int64   `json:"sc_persondays"`
	STPersondays         int64   `json:"st_persondays"`
	PaymentsWithin15Days float64 `json:"payments_within_15_days_pct"`
}

type districtPerformanceResponse struct {
	DistrictCode    string          `json:"district_code"`
	DistrictName    string          `json:"district_name"`
	StateName       string          `json:"state_name"`
	FinYear         string          `json:"fin_year"`
	PerformanceData performanceData `json:"performance_data"`
}

func toResponse(rec *domain.PerformanceRecord) districtPerformanceResponse {
	return districtPerformanceResponse{
		DistrictCode: rec.DistrictCode,
		DistrictName: rec.DistrictName,
		StateName:    rec.StateName,
		FinYear:      rec.FinYear,
		PerformanceData: performanceData{
			TotalWorkers:         rec.TotalWorkers,
			ActiveWorkers:        rec.ActiveWorkers,
			WagesPaid:            rec.WagesPaid,
			WorkDaysGenerated:    rec.WorkDaysGenerated,
			AvgEmploymentDays:    rec.AvgEmploymentDays,
			AvgWageRate:          rec.AvgWageRate,
			WomenPersondays:      rec.WomenPersondays,
			SCPersondays:         rec.SCPersondays,
			STPersondays:         rec.STPersondays,
			PaymentsWithin15Days: rec.PaymentsWithin15Days,
		},
	}
}
