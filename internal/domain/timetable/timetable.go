// Package timetable contains the weekly class schedule domain model.
package timetable

import (
	"context"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
)

const (
	// FirstPeriod and LastPeriod bound the school day: periods 1..9.
	FirstPeriod = 1
	LastPeriod  = 9

	// NoSubject is the sentinel rendered for a period with no scheduled
	// subject. An absent period key is normal data, never an error.
	NoSubject = "N/A"
)

// Period is a slot number within the school day (1..9).
type Period int

// IsValid checks that the period lies in [FirstPeriod, LastPeriod].
func (p Period) IsValid() bool {
	return p >= FirstPeriod && p <= LastPeriod
}

// DaySchedule maps period numbers to subject labels for one day.
// Keys outside 1..9 are rejected at construction.
type DaySchedule map[Period]string

// NewDaySchedule validates and copies a day's period map.
func NewDaySchedule(periods map[Period]string) (DaySchedule, error) {
	sched := make(DaySchedule, len(periods))
	for period, subject := range periods {
		if !period.IsValid() {
			return nil, shared.ErrInvalidPeriod
		}
		sched[period] = subject
	}
	return sched, nil
}

// SubjectFor returns the subject scheduled for the period, or NoSubject when
// the slot has nothing scheduled.
func (d DaySchedule) SubjectFor(period Period) string {
	if subject, ok := d[period]; ok {
		return subject
	}
	return NoSubject
}

// Timetable is the weekly schedule: day name to day schedule. Day names are
// case-sensitive keys exactly as stored ("Monday", not "monday").
type Timetable struct {
	days map[string]DaySchedule

	// dayOrder preserves the insertion order of the populated days for
	// stable weekly rendering.
	dayOrder []string
}

// New creates an empty timetable.
func New() *Timetable {
	return &Timetable{days: make(map[string]DaySchedule)}
}

// SetDay records the schedule for a day. Used only while seeding; the
// timetable is read-only afterwards.
func (t *Timetable) SetDay(day string, sched DaySchedule) {
	if _, exists := t.days[day]; !exists {
		t.dayOrder = append(t.dayOrder, day)
	}
	t.days[day] = sched
}

// ScheduleFor returns the schedule for the named day. Days that were never
// populated yield shared.ErrDayNotScheduled - "no schedule", distinct from an
// empty day.
func (t *Timetable) ScheduleFor(day string) (DaySchedule, error) {
	sched, ok := t.days[day]
	if !ok {
		return nil, shared.ErrDayNotScheduled
	}
	return sched, nil
}

// Days returns the populated day names in insertion order.
func (t *Timetable) Days() []string {
	days := make([]string, len(t.dayOrder))
	copy(days, t.dayOrder)
	return days
}

// Provider defines read access to the weekly timetable.
type Provider interface {
	// ScheduleFor returns one day's schedule. Returns an error matching
	// shared.ErrNotFound for a day with no populated schedule.
	ScheduleFor(ctx context.Context, day string) (DaySchedule, error)

	// Week returns the full timetable for weekly rendering.
	Week(ctx context.Context) (*Timetable, error)
}
