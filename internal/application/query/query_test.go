package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmel-jorhat/student-portal/internal/domain/noticeboard"
	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/internal/domain/timetable"
	"github.com/carmel-jorhat/student-portal/internal/infrastructure/persistence/memory"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()

	st, err := student.NewStudent(student.NewStudentParams{
		RollNumber:      1,
		Name:            "Arjun Mehta",
		MotherName:      "Nisha Mehta",
		FatherName:      "Rajiv Mehta",
		AdmissionNumber: 12304,
		Marks: student.Marks{
			"English Literature": 35,
			"English Language":   24,
			"Mathematics":        23,
			"Biology":            34,
			"Chemistry":          40,
			"Physics":            21,
			"Geography":          22,
			"History and Civics": 21,
		},
		FeePayments: []student.FeePayment{
			{Amount: 5000, PaidAt: timeutil.Date(2024, 5, 14), Method: "Online Transfer", ReceiptNumber: "RCT10000"},
		},
	})
	require.NoError(t, err)

	notice, err := noticeboard.NewNotice("Sports Meet", "Register online.",
		timeutil.Date(2025, 2, 15), timeutil.Date(2025, 3, 5))
	require.NoError(t, err)

	week := timetable.New()
	sched, err := timetable.NewDaySchedule(map[timetable.Period]string{1: "Geography", 2: "Chemistry"})
	require.NoError(t, err)
	week.SetDay("Monday", sched)

	store, err := memory.NewStore(
		[]*student.Student{st},
		[]*noticeboard.Notice{notice},
		nil,
		week,
	)
	require.NoError(t, err)
	return store
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	handler := NewGetProfileHandler(store, SchoolInfo{
		Name: "CARMEL SCHOOL - JORHAT", Class: "10", Section: "A",
	})

	result, err := handler.Handle(ctx, GetProfileQuery{RollNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, "Arjun Mehta", result.Name)
	assert.Equal(t, "CARMEL SCHOOL - JORHAT", result.School)
	assert.Equal(t, 12304, result.AdmissionNumber)

	_, err = handler.Handle(ctx, GetProfileQuery{RollNumber: 99})
	assert.True(t, shared.IsNotFound(err))
}

func TestGetAcademicReport(t *testing.T) {
	ctx := context.Background()
	handler := NewGetAcademicReportHandler(newTestStore(t))

	result, err := handler.Handle(ctx, GetAcademicReportQuery{RollNumber: 1})
	require.NoError(t, err)

	assert.Equal(t, 220, result.TotalMarks)
	assert.Equal(t, 320, result.MaxTotal)
	assert.Equal(t, 8, result.SubjectCount)
	assert.InDelta(t, 68.75, result.Percentage, 1e-9)
	assert.Equal(t, "B", result.Grade)

	// Rows are sorted by subject name for stable rendering.
	require.Len(t, result.Rows, 8)
	for i := 1; i < len(result.Rows); i++ {
		assert.Less(t, result.Rows[i-1].Subject, result.Rows[i].Subject)
	}
}

func TestGetFeeHistory(t *testing.T) {
	ctx := context.Background()
	handler := NewGetFeeHistoryHandler(newTestStore(t))

	result, err := handler.Handle(ctx, GetFeeHistoryQuery{
		RollNumber: 1,
		AsOf:       timeutil.Date(2024, 5, 24),
	})
	require.NoError(t, err)

	require.True(t, result.HasPayments)
	assert.Equal(t, "RCT10000", result.LastPayment.ReceiptNumber)
	assert.Equal(t, 10, result.DaysSincePayment)
	assert.NotEmpty(t, result.NextDueNote)
}

func TestGetFeeHistory_NoPaymentsIsNotAnError(t *testing.T) {
	ctx := context.Background()

	st, err := student.NewStudent(student.NewStudentParams{
		RollNumber: 1, Name: "No Payments", AdmissionNumber: 1,
		Marks: student.Marks{"Mathematics": 30},
	})
	require.NoError(t, err)
	store, err := memory.NewStore([]*student.Student{st}, nil, nil, nil)
	require.NoError(t, err)

	result, err := NewGetFeeHistoryHandler(store).Handle(ctx, GetFeeHistoryQuery{RollNumber: 1})
	require.NoError(t, err)
	assert.False(t, result.HasPayments)
}

func TestGetNoticeBoard_ActivityWindow(t *testing.T) {
	ctx := context.Background()
	handler := NewGetNoticeBoardHandler(newTestStore(t))

	onExpiry, err := handler.Handle(ctx, GetNoticeBoardQuery{AsOf: timeutil.Date(2025, 3, 5)})
	require.NoError(t, err)
	require.Len(t, onExpiry.Notices, 1)
	assert.Equal(t, "Sports Meet", onExpiry.Notices[0].Title)

	afterExpiry, err := handler.Handle(ctx, GetNoticeBoardQuery{AsOf: timeutil.Date(2025, 3, 6)})
	require.NoError(t, err)
	assert.Empty(t, afterExpiry.Notices)
}

func TestGetNoticeBoard_ActiveAllOfExpiryDay(t *testing.T) {
	// Activity is a calendar-day question: a notice expiring March 5 is
	// still on the board at noon on March 5, not just at midnight.
	ctx := context.Background()
	handler := NewGetNoticeBoardHandler(newTestStore(t))

	noon := time.Date(2025, 3, 5, 12, 0, 0, 0, timeutil.IndiaTZ)
	result, err := handler.Handle(ctx, GetNoticeBoardQuery{AsOf: noon})
	require.NoError(t, err)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, "Sports Meet", result.Notices[0].Title)
}

func TestGetTimetable(t *testing.T) {
	ctx := context.Background()
	handler := NewGetTimetableHandler(newTestStore(t))

	monday, err := handler.Handle(ctx, GetTimetableQuery{Day: "Monday"})
	require.NoError(t, err)
	require.True(t, monday.DayAvailable)
	assert.Equal(t, "Geography", monday.Day.Subjects[0])
	assert.Equal(t, timetable.NoSubject, monday.Day.Subjects[2], "empty period renders as N/A")
	require.Len(t, monday.Week, 1)

	// A day with no populated schedule is informational, never an error.
	saturday, err := handler.Handle(ctx, GetTimetableQuery{Day: "Saturday"})
	require.NoError(t, err)
	assert.False(t, saturday.DayAvailable)
}

func TestGetTimetable_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	handler := NewGetTimetableHandler(newTestStore(t))

	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, timeutil.IndiaTZ) // a Monday
	result, err := handler.Handle(ctx, GetTimetableQuery{AsOf: asOf})
	require.NoError(t, err)
	assert.Equal(t, "Monday", result.Day.Day)
	assert.True(t, result.DayAvailable)
}

func TestGetUpcomingExams_EmptyScheduleIsNotAnError(t *testing.T) {
	ctx := context.Background()
	handler := NewGetUpcomingExamsHandler(newTestStore(t))

	result, err := handler.Handle(ctx, GetUpcomingExamsQuery{})
	require.NoError(t, err)
	assert.Empty(t, result.Exams)
}
