package timesheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
)

var (
	// ErrWeekOutOfRange rejects an edit naming a week outside the
	// current month's week list.
	ErrWeekOutOfRange = errors.New("week index out of range")
	// ErrDayOutOfRange rejects an edit naming a day outside the week.
	ErrDayOutOfRange = errors.New("day index out of range")
	// ErrUnknownField rejects an edit naming a field that does not exist.
	ErrUnknownField = errors.New("unknown day field")
	// ErrUnknownAbsenceType rejects an absence type missing from the catalog.
	ErrUnknownAbsenceType = errors.New("unknown absence type")
)

// EditOp is a single typed mutation of one day. Using a closed set of
// operations keeps field access out of stringly-typed paths; the HTTP
// layer converts wire-level field names through ParseEditOp.
type EditOp interface {
	apply(day *models.Day) error
}

// SetAbsence toggles a day's absence flag.
type SetAbsence struct {
	Absent bool
}

func (op SetAbsence) apply(day *models.Day) error {
	day.Absence = op.Absent
	if !op.Absent {
		// The type only has meaning while the day is absent; a later
		// re-toggle starts from the catalog default again.
		day.AbsenceType = ""
		return nil
	}
	if day.AbsenceType == "" {
		day.AbsenceType = models.DefaultAbsenceTypeID()
	}
	return nil
}

// SetAbsenceType changes the absence category of a day.
type SetAbsenceType struct {
	ID string
}

func (op SetAbsenceType) apply(day *models.Day) error {
	if op.ID != "" {
		if _, ok := models.AbsenceTypeByID(op.ID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAbsenceType, op.ID)
		}
	}
	day.AbsenceType = op.ID
	return nil
}

// SetIntervalField sets one end of the morning or afternoon interval.
type SetIntervalField struct {
	Part  models.IntervalPart
	Bound models.IntervalBound
	Value string
}

func (op SetIntervalField) apply(day *models.Day) error {
	var interval *models.Interval
	switch op.Part {
	case models.MorningPart:
		interval = &day.Morning
	case models.AfternoonPart:
		interval = &day.Afternoon
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, op.Part)
	}
	switch op.Bound {
	case models.StartBound:
		interval.Start = op.Value
	case models.EndBound:
		interval.End = op.Value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, op.Bound)
	}
	return nil
}

// SetComment replaces a day's free-text comment.
type SetComment struct {
	Text string
}

func (op SetComment) apply(day *models.Day) error {
	day.Comment = op.Text
	return nil
}

// ParseEditOp maps a wire-level field name ("absence", "absence_type",
// "comment", "morning.start", "afternoon.end", ...) and its value to a
// typed edit operation.
func ParseEditOp(field string, value any) (EditOp, error) {
	switch field {
	case "absence":
		absent, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: absence expects a boolean", ErrUnknownField)
		}
		return SetAbsence{Absent: absent}, nil
	case "absence_type":
		id, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: absence_type expects a string", ErrUnknownField)
		}
		return SetAbsenceType{ID: id}, nil
	case "comment":
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: comment expects a string", ErrUnknownField)
		}
		return SetComment{Text: text}, nil
	}

	part, bound, found := strings.Cut(field, ".")
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a string", ErrUnknownField, field)
	}
	op := SetIntervalField{Value: text}
	switch part {
	case "morning":
		op.Part = models.MorningPart
	case "afternoon":
		op.Part = models.AfternoonPart
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	switch bound {
	case "start":
		op.Bound = models.StartBound
	case "end":
		op.Bound = models.EndBound
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return op, nil
}
