package query

import (
	"context"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/timetable"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TIMETABLE QUERY
// Returns one day's periods plus the full weekly schedule. A day with no
// populated schedule is reported through DayAvailable, never as an error.
// ══════════════════════════════════════════════════════════════════════════════

// GetTimetableQuery selects the day to highlight.
type GetTimetableQuery struct {
	// Day is the timetable day key, e.g. "Monday". Empty means "today".
	Day string

	// AsOf resolves "today" deterministically in tests. Zero means "now".
	AsOf time.Time
}

// Validate fills in the defaults.
func (q *GetTimetableQuery) Validate() error {
	if q.AsOf.IsZero() {
		q.AsOf = timeutil.Now()
	}
	if q.Day == "" {
		q.Day = timeutil.DayName(q.AsOf)
	}
	return nil
}

// DayScheduleDTO is one day's periods with N/A fill for empty slots.
type DayScheduleDTO struct {
	Day string

	// Subjects lists periods FirstPeriod..LastPeriod in order.
	Subjects [timetable.LastPeriod]string
}

// TimetableResult is the timetable view data.
type TimetableResult struct {
	// Day is the requested day's schedule. Only meaningful when
	// DayAvailable is true.
	Day DayScheduleDTO

	// DayAvailable is false when the requested day has no schedule.
	DayAvailable bool

	// Week lists every populated day in stored order.
	Week []DayScheduleDTO

	AsOf time.Time
}

// GetTimetableHandler resolves timetable queries.
type GetTimetableHandler struct {
	provider timetable.Provider
}

// NewGetTimetableHandler creates a timetable query handler.
func NewGetTimetableHandler(provider timetable.Provider) *GetTimetableHandler {
	return &GetTimetableHandler{provider: provider}
}

// Handle executes the query.
func (h *GetTimetableHandler) Handle(ctx context.Context, q GetTimetableQuery) (*TimetableResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	result := &TimetableResult{AsOf: q.AsOf}
	result.Day.Day = q.Day

	sched, err := h.provider.ScheduleFor(ctx, q.Day)
	switch {
	case err == nil:
		result.DayAvailable = true
		result.Day = toDayDTO(q.Day, sched)
	case shared.IsNotFound(err):
		// No schedule for that day - an informational outcome.
	default:
		return nil, err
	}

	week, err := h.provider.Week(ctx)
	if err != nil {
		return nil, err
	}
	for _, day := range week.Days() {
		daySched, err := week.ScheduleFor(day)
		if err != nil {
			continue
		}
		result.Week = append(result.Week, toDayDTO(day, daySched))
	}

	return result, nil
}

func toDayDTO(day string, sched timetable.DaySchedule) DayScheduleDTO {
	dto := DayScheduleDTO{Day: day}
	for p := timetable.FirstPeriod; p <= timetable.LastPeriod; p++ {
		dto.Subjects[p-1] = sched.SubjectFor(timetable.Period(p))
	}
	return dto
}
