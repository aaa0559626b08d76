package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/internal/application/session"
	"github.com/carmel-jorhat/student-portal/internal/domain/noticeboard"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/internal/domain/timetable"
	"github.com/carmel-jorhat/student-portal/internal/infrastructure/persistence/memory"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

const testSchool = "CARMEL SCHOOL - JORHAT"

func newTestMenu(t *testing.T, store *memory.Store, input string) (*Menu, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(input), &out)
	sess := session.New(store)

	deps := Dependencies{
		Session:     sess,
		StudentRepo: store,
		ProfileQuery: query.NewGetProfileHandler(store, query.SchoolInfo{
			Name: testSchool, Class: "10", Section: "A",
		}),
		FeeQuery:       query.NewGetFeeHistoryHandler(store),
		AcademicQuery:  query.NewGetAcademicReportHandler(store),
		NoticeQuery:    query.NewGetNoticeBoardHandler(store),
		TimetableQuery: query.NewGetTimetableHandler(store),
		ExamsQuery:     query.NewGetUpcomingExamsHandler(store),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return NewMenu(prompter, &out, testSchool, deps), &out
}

func newMenuStore(t *testing.T) *memory.Store {
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
		timeutil.Date(2025, 2, 15), timeutil.Date(2099, 12, 31))
	require.NoError(t, err)

	store, err := memory.NewStore(
		[]*student.Student{st},
		[]*noticeboard.Notice{notice},
		nil,
		timetable.New(),
	)
	require.NoError(t, err)
	return store
}

func TestRun_LoginAndViewAcademics(t *testing.T) {
	// Login as roll 1, open Academic Performance, return to the main menu
	// through Logout, then Exit.
	script := strings.Join([]string{
		"1", // main: login
		"1", // roll number
		"3", // portal: academic performance
		"",  // press enter
		"7", // portal: return to main menu
		"3", // main: exit
	}, "\n") + "\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())

	output := out.String()
	assert.Contains(t, output, "Login successful. Welcome, Arjun Mehta!")
	assert.Contains(t, output, "ACADEMIC PERFORMANCE - Arjun Mehta")
	assert.Contains(t, output, "Total Marks: 220/320")
	assert.Contains(t, output, "Percentage: 68.75%")
	assert.Contains(t, output, "Overall Grade: B")
	assert.Contains(t, output, "Logged out successfully.")
	assert.Contains(t, output, "Thank you for using the School Management System!")
}

func TestRun_UnknownRollNumberStaysInMainMenu(t *testing.T) {
	// A roll number that names no student reports a failed login and shows
	// the main menu again without crashing.
	script := "1\n99\n3\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())

	output := out.String()
	assert.Contains(t, output, "Invalid roll number. Please try again.")
	assert.NotContains(t, output, "STUDENT PORTAL")
	// Main menu rendered at least twice: before and after the failed login.
	assert.GreaterOrEqual(t, strings.Count(output, "WELCOME TO THE SCHOOL MANAGEMENT SYSTEM"), 2)
}

func TestRun_TimetableWithoutScheduleIsInformational(t *testing.T) {
	// The fixture store has an empty weekly timetable, so the view reports
	// the absence instead of failing.
	script := "1\n1\n5\n\n8\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())
	assert.Contains(t, out.String(), "No schedule available for today.")
}

func TestRun_NoticeBoardView(t *testing.T) {
	// The board is filtered with today's date by default; the fixture
	// notice is active far into the future and must appear.
	script := "1\n1\n4\n\n8\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "TITLE: Sports Meet")
}

func TestRun_ExitFromPortalClearsSession(t *testing.T) {
	script := "1\n1\n8\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())
	assert.False(t, menu.deps.Session.IsAuthenticated())
	assert.Contains(t, out.String(), "Thank you for using the School Management System!")
}

func TestRun_AboutView(t *testing.T) {
	script := "2\n\n3\n"

	store := newMenuStore(t)
	menu, out := newTestMenu(t, store, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "ABOUT THE APPLICATION")
}

func TestRun_ExhaustedInputTerminatesCleanly(t *testing.T) {
	store := newMenuStore(t)
	menu, _ := newTestMenu(t, store, "")

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())
}

func TestRun_EOFMidPortalTerminatesCleanly(t *testing.T) {
	// Input ends right after login; the portal treats it like Exit.
	store := newMenuStore(t)
	menu, _ := newTestMenu(t, store, "1\n1\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, StateTerminated, menu.State())
}
