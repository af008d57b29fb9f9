package timesheet

import (
	"errors"
	"sync"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
)

// ErrNoMonthSelected signals a read or export against a session that
// has not generated a month yet.
var ErrNoMonthSelected = errors.New("no month selected")

// Session owns one user's timesheet state: the salary settings, the
// selected month's week list and the active week pointer. The server
// handles requests concurrently and nothing stops two tabs from sharing
// one cookie, so every method takes the session lock; an edit and its
// re-aggregation always run in one critical section.
type Session struct {
	mu         sync.Mutex
	config     models.SalaryConfig
	year       int
	month      int
	weeks      []models.Week
	activeWeek int
}

// NewSession creates a session with no month selected.
func NewSession(cfg models.SalaryConfig) *Session {
	return &Session{config: cfg}
}

// cloneWeek detaches the day slice so a returned week stays stable
// while later edits mutate the session's own copy.
func cloneWeek(w models.Week) models.Week {
	w.Days = append([]models.Day(nil), w.Days...)
	return w
}

func cloneWeeks(weeks []models.Week) []models.Week {
	out := make([]models.Week, len(weeks))
	for i, w := range weeks {
		out[i] = cloneWeek(w)
	}
	return out
}

// Config returns the session's salary settings.
func (s *Session) Config() models.SalaryConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// SetConfig replaces the salary settings and re-aggregates every week
// so results stay consistent with the thresholds on screen.
func (s *Session) SetConfig(cfg models.SalaryConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	for i := range s.weeks {
		s.weeks[i].Result = ComputeWeekResult(s.weeks[i].Days, s.config)
	}
}

// Year returns the selected year, 0 when no month is selected.
func (s *Session) Year() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year
}

// Month returns the selected month, 0 when no month is selected.
func (s *Session) Month() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.month
}

// ActiveWeek returns the active week index.
func (s *Session) ActiveWeek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeWeek
}

// WeekCount returns the number of weeks in the selected month.
func (s *Session) WeekCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.weeks)
}

// Weeks returns a snapshot of the month's weeks.
func (s *Session) Weeks() []models.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWeeks(s.weeks)
}

// GenerateMonth replaces the whole week list with the given month's
// weeks and resets the active week to the first one. Invalid input
// clears the selection without error, matching the generator.
func (s *Session) GenerateMonth(year, month int) []models.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	weeks := GenerateWeeks(year, month)
	for i := range weeks {
		weeks[i].Result = ComputeWeekResult(weeks[i].Days, s.config)
	}
	s.year = year
	s.month = month
	s.weeks = weeks
	s.activeWeek = 0
	return cloneWeeks(weeks)
}

// SetActiveWeek moves the active-week pointer.
func (s *Session) SetActiveWeek(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.weeks) {
		return ErrWeekOutOfRange
	}
	s.activeWeek = index
	return nil
}

// Week returns a snapshot of the week at index.
func (s *Session) Week(index int) (models.Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekLocked(index)
}

func (s *Session) weekLocked(index int) (models.Week, error) {
	if index < 0 || index >= len(s.weeks) {
		return models.Week{}, ErrWeekOutOfRange
	}
	return cloneWeek(s.weeks[index]), nil
}

// CurrentWeek returns a snapshot of the active week.
func (s *Session) CurrentWeek() (models.Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentWeekLocked()
}

func (s *Session) currentWeekLocked() (models.Week, error) {
	if len(s.weeks) == 0 {
		return models.Week{}, ErrNoMonthSelected
	}
	return s.weekLocked(s.activeWeek)
}

// EditDay applies one edit operation to a day and re-aggregates the
// owning week in full, all under the session lock. Out-of-range indices
// and malformed operations are rejected before any state changes.
func (s *Session) EditDay(weekIndex, dayIndex int, op EditOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if weekIndex < 0 || weekIndex >= len(s.weeks) {
		return ErrWeekOutOfRange
	}
	week := &s.weeks[weekIndex]
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return ErrDayOutOfRange
	}

	day := week.Days[dayIndex]
	if err := op.apply(&day); err != nil {
		return err
	}
	RecomputeDay(&day)
	week.Days[dayIndex] = day

	// Always re-derive the whole week rather than patching one bucket:
	// a single edit can move hours across every tier.
	week.Result = ComputeWeekResult(week.Days, s.config)
	return nil
}

// MonthResult reduces the month's weekly results.
func (s *Session) MonthResult() models.MonthResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeMonthResult(s.weeks)
}

// QuotaPercent returns how much of the active week's quota has been
// worked, capped at 100. A week with no quota reports 0.
func (s *Session) QuotaPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	week, err := s.currentWeekLocked()
	if err != nil || week.Result.AdjustedThreshold == 0 {
		return 0
	}
	percent := week.Result.TotalWorkedHours / week.Result.AdjustedThreshold * 100
	if percent > 100 {
		return 100
	}
	return percent
}
