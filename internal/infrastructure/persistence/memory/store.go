// Package memory implements the domain repository interfaces over plain
// in-memory containers. The store is built once at startup from seed data and
// is read-only afterwards, so no locking discipline is needed even if several
// callers share it (see the session/navigation layer - there is only one).
package memory

import (
	"context"
	"sort"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/exam"
	"github.com/carmel-jorhat/student-portal/internal/domain/noticeboard"
	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/internal/domain/timetable"
)

// Store is the record store: the aggregate of all seeded students, notices,
// exams and the weekly timetable. It implements student.Repository,
// noticeboard.Repository, exam.Repository and timetable.Provider.
type Store struct {
	students  map[student.RollNumber]*student.Student
	rollOrder []student.RollNumber
	notices   []*noticeboard.Notice
	exams     []*exam.Exam
	week      *timetable.Timetable
}

// NewStore builds the record store from fully constructed domain entities.
// Duplicate roll numbers are rejected - the roll number is the sole lookup
// key and must be unique.
func NewStore(
	students []*student.Student,
	notices []*noticeboard.Notice,
	exams []*exam.Exam,
	week *timetable.Timetable,
) (*Store, error) {
	byRoll := make(map[student.RollNumber]*student.Student, len(students))
	rolls := make([]student.RollNumber, 0, len(students))
	for _, s := range students {
		if _, exists := byRoll[s.RollNumber]; exists {
			return nil, shared.WrapError("store", "Build", shared.ErrInvalidEntity,
				"duplicate roll number", nil)
		}
		byRoll[s.RollNumber] = s
		rolls = append(rolls, s.RollNumber)
	}
	sort.Slice(rolls, func(i, j int) bool { return rolls[i] < rolls[j] })

	if week == nil {
		week = timetable.New()
	}

	return &Store{
		students:  byRoll,
		rollOrder: rolls,
		notices:   notices,
		exams:     exams,
		week:      week,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// student.Repository
// ─────────────────────────────────────────────────────────────────────────────

// GetByRollNumber returns the student with the given roll number.
func (s *Store) GetByRollNumber(_ context.Context, roll student.RollNumber) (*student.Student, error) {
	st, ok := s.students[roll]
	if !ok {
		return nil, shared.ErrStudentNotFound
	}
	return st, nil
}

// GetAll returns all students in roll-number order.
func (s *Store) GetAll(_ context.Context) ([]*student.Student, error) {
	all := make([]*student.Student, 0, len(s.rollOrder))
	for _, roll := range s.rollOrder {
		all = append(all, s.students[roll])
	}
	return all, nil
}

// Count returns the number of seeded students.
func (s *Store) Count(_ context.Context) (int, error) {
	return len(s.students), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// noticeboard.Repository
// ─────────────────────────────────────────────────────────────────────────────

// All returns every seeded notice in insertion order.
func (s *Store) All(_ context.Context) ([]*noticeboard.Notice, error) {
	notices := make([]*noticeboard.Notice, len(s.notices))
	copy(notices, s.notices)
	return notices, nil
}

// Active filters the notices to those still active as of the given date,
// preserving insertion order. The filter runs on every call; activity is a
// function of wall-clock time and is never cached.
func (s *Store) Active(_ context.Context, asOf time.Time) ([]*noticeboard.Notice, error) {
	active := make([]*noticeboard.Notice, 0, len(s.notices))
	for _, n := range s.notices {
		if n.IsActive(asOf) {
			active = append(active, n)
		}
	}
	return active, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// exam.Repository
// ─────────────────────────────────────────────────────────────────────────────

// Upcoming returns every scheduled exam in insertion order.
func (s *Store) Upcoming(_ context.Context) ([]*exam.Exam, error) {
	exams := make([]*exam.Exam, len(s.exams))
	copy(exams, s.exams)
	return exams, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// timetable.Provider
// ─────────────────────────────────────────────────────────────────────────────

// ScheduleFor returns one day's schedule, or shared.ErrDayNotScheduled for a
// day with no populated schedule.
func (s *Store) ScheduleFor(_ context.Context, day string) (timetable.DaySchedule, error) {
	return s.week.ScheduleFor(day)
}

// Week returns the full weekly timetable.
func (s *Store) Week(_ context.Context) (*timetable.Timetable, error) {
	return s.week, nil
}
