package models

// WeekResult carries the derived hour buckets for one week, recomputed
// in full after every day mutation within that week.
type WeekResult struct {
	TotalWorkedHours  float64 `json:"total_worked_hours"`
	AdjustedThreshold float64 `json:"adjusted_threshold"`
	MiscHours         float64 `json:"misc_hours"`
	Overtime25Hours   float64 `json:"overtime_25_hours"`
	Overtime50Hours   float64 `json:"overtime_50_hours"`
}

// Week is one calendar week of a selected month, trimmed to the days
// that fall inside that month. Days are ordered by date ascending and
// StartDate/EndDate always equal the first/last day's date.
type Week struct {
	Number    int        `json:"number"` // ISO week number
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Days      []Day      `json:"days"`
	Result    WeekResult `json:"result"`
}

// MonthResult is the element-wise sum of a month's weekly results.
// Weeks already carry their own proration, so no adjustment happens here.
type MonthResult struct {
	TotalWorkedHours float64 `json:"total_worked_hours"`
	MiscHours        float64 `json:"misc_hours"`
	Overtime25Hours  float64 `json:"overtime_25_hours"`
	Overtime50Hours  float64 `json:"overtime_50_hours"`
}
