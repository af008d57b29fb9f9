package models

// AbsenceType describes one entry of the static absence catalog.
// ExcludedFromQuota removes a day with that absence from the weekly
// quota calculation entirely (e.g. paid leave); a non-excluded absence
// (sick leave) still counts toward quota as an unworked day.
type AbsenceType struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	ExcludedFromQuota bool   `json:"excluded_from_quota"`
	Color             string `json:"color"`
}

// AbsenceTypes is the fixed catalog offered by the timesheet UI.
var AbsenceTypes = []AbsenceType{
	{ID: "paid_leave", Label: "Paid leave", ExcludedFromQuota: true, Color: "#4F46E5"},
	{ID: "rtt", Label: "RTT", ExcludedFromQuota: true, Color: "#3B82F6"},
	{ID: "sick_leave", Label: "Sick leave", ExcludedFromQuota: false, Color: "#EF4444"},
	{ID: "solidarity_day", Label: "Solidarity day", ExcludedFromQuota: true, Color: "#F59E0B"},
	{ID: "work_accident", Label: "Workplace accident", ExcludedFromQuota: true, Color: "#EC4899"},
	{ID: "family_event", Label: "Family event", ExcludedFromQuota: true, Color: "#8B5CF6"},
}

// AbsenceTypeByID looks up a catalog entry; ok is false for unknown ids.
func AbsenceTypeByID(id string) (AbsenceType, bool) {
	for _, t := range AbsenceTypes {
		if t.ID == id {
			return t, true
		}
	}
	return AbsenceType{}, false
}

// DefaultAbsenceTypeID is assigned when a day is first marked absent
// without an explicit type.
func DefaultAbsenceTypeID() string {
	return AbsenceTypes[0].ID
}
