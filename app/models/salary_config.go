package models

// SalaryConfig holds the employee and threshold settings read by the
// weekly aggregation. Edited through the settings form; per session,
// never persisted.
type SalaryConfig struct {
	FirstName               string  `json:"first_name"`
	LastName                string  `json:"last_name"`
	Company                 string  `json:"company"`
	ContractualHoursPerDay  float64 `json:"contractual_hours_per_day"`
	WeeklyThreshold         float64 `json:"weekly_threshold"`
	SecondOvertimeThreshold float64 `json:"second_overtime_threshold"`
}

// DefaultSalaryConfig returns the standard 35h French work-week settings.
func DefaultSalaryConfig() SalaryConfig {
	return SalaryConfig{
		ContractualHoursPerDay:  7,
		WeeklyThreshold:         35,
		SecondOvertimeThreshold: 43,
	}
}
