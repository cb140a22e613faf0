package domain

import "errors"

var (
	// ErrNoData means the upstream source has no record for the requested
	// district and reporting period.
	ErrNoData = errors.New("no performance data for district/period")

	// ErrUpstream covers network failures, non-2xx responses and malformed
	// payloads from the statistics API.
	ErrUpstream = errors.New("upstream statistics API failure")
)

// PerformanceRecord is the parsed snapshot for one district and one fiscal
// year. All numeric fields are non-negative; fields the upstream omits or
// mangles parse to zero.
type PerformanceRecord struct {
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
	StateName    string `json:"state_name"`
	FinYear      string `json:"fin_year"`

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

// UpstreamRecord mirrors one row of the data.gov.in resource. The API types
// every numeric as a string.
type UpstreamRecord struct {
	FinYear      string `json:"fin_year"`
	Month        string `json:"month"`
	StateCode    string `json:"state_code"`
	StateName    string `json:"state_name"`
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`

	TotalWorkers        string `json:"Total_No_of_Workers"`
	ActiveWorkers       string `json:"Total_No_of_Active_Workers"`
	Wages               string `json:"Wages"`
	TotalHouseholds     string `json:"Total_Households_Worked"`
	TotalIndividuals    string `json:"Total_Individuals_Worked"`
	AvgEmploymentDays   string `json:"Average_days_of_employment_provided_per_Household"`
	AvgWageRate         string `json:"Average_Wage_rate_per_day_per_person"`
	WomenPersondays     string `json:"Women_Persondays"`
	SCPersondays        string `json:"SC_persondays"`
	STPersondays        string `json:"ST_persondays"`
	PaymentsWithin15Day string `json:"percentage_payments_gererated_within_15_days"`
	ApprovedBudget      string `json:"Approved_Labour_Budget"`
	TotalExpenditure    string `json:"Total_Exp"`
}

// UpstreamResponse is the data.gov.in envelope. Status carries "ok" on
// success; anything else is a failure even on HTTP 200.
type UpstreamResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Total   int              `json:"total"`
	Count   int              `json:"count"`
	Records []UpstreamRecord `json:"records"`
}
