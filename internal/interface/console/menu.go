package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/internal/application/session"
	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/internal/interface/console/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// NAVIGATION STATE MACHINE
// Two states: the unauthenticated main menu and the student portal, entered
// only through a successful login. Exit is a terminal transition from either
// state - the loop returns and the caller decides the process status; nothing
// here calls os.Exit.
// ══════════════════════════════════════════════════════════════════════════════

// State identifies the current navigation state.
type State int

const (
	// StateMainMenu is the initial, unauthenticated state.
	StateMainMenu State = iota

	// StateStudentPortal is the authenticated state.
	StateStudentPortal

	// StateTerminated is the terminal state reached through Exit.
	StateTerminated
)

// Main menu choices.
const (
	mainChoiceLogin = 1
	mainChoiceAbout = 2
	mainChoiceExit  = 3
)

// Student portal choices.
const (
	portalChoiceProfile = iota + 1
	portalChoiceFees
	portalChoiceAcademics
	portalChoiceNotices
	portalChoiceTimetable
	portalChoiceExams
	portalChoiceLogout
	portalChoiceExit
)

// Dependencies carries everything the menu needs to serve its views.
type Dependencies struct {
	Session        *session.Session
	StudentRepo    student.Repository
	ProfileQuery   *query.GetProfileHandler
	FeeQuery       *query.GetFeeHistoryHandler
	AcademicQuery  *query.GetAcademicReportHandler
	NoticeQuery    *query.GetNoticeBoardHandler
	TimetableQuery *query.GetTimetableHandler
	ExamsQuery     *query.GetUpcomingExamsHandler
	Logger         *slog.Logger
}

// Menu is the navigation state machine. It holds no data beyond the current
// state and the session.
type Menu struct {
	state      State
	prompter   *Prompter
	out        io.Writer
	schoolName string
	deps       Dependencies
}

// NewMenu creates the menu over the given prompter and output writer.
func NewMenu(prompter *Prompter, out io.Writer, schoolName string, deps Dependencies) *Menu {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Menu{
		state:      StateMainMenu,
		prompter:   prompter,
		out:        out,
		schoolName: schoolName,
		deps:       deps,
	}
}

// State returns the current navigation state.
func (m *Menu) State() State {
	return m.state
}

// Run drives the state machine until a terminal transition. Exhausted input
// (io.EOF) is treated like Exit so piped input terminates cleanly.
func (m *Menu) Run(ctx context.Context) error {
	for m.state != StateTerminated {
		var err error
		switch m.state {
		case StateMainMenu:
			err = m.stepMainMenu(ctx)
		case StateStudentPortal:
			err = m.stepStudentPortal(ctx)
		}

		if errors.Is(err, io.EOF) {
			m.deps.Logger.Info("input ended, leaving portal")
			m.state = StateTerminated
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MAIN MENU
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) stepMainMenu(ctx context.Context) error {
	fmt.Fprint(m.out, presenter.FormatMainMenu(m.schoolName))

	choice, err := m.prompter.ReadBoundedInt(mainChoiceLogin, mainChoiceExit)
	if err != nil {
		return err
	}

	switch choice {
	case mainChoiceLogin:
		return m.login(ctx)
	case mainChoiceAbout:
		fmt.Fprint(m.out, presenter.FormatAbout())
		return m.prompter.ReadContinue()
	case mainChoiceExit:
		fmt.Fprint(m.out, presenter.FormatFarewell())
		m.state = StateTerminated
	}
	return nil
}

// login prompts for a roll number and authenticates. An unknown roll number
// reports "invalid roll number" and stays in the main menu; it never
// terminates the loop.
func (m *Menu) login(ctx context.Context) error {
	count, err := m.deps.StudentRepo.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\nEnter Student Roll Number (1-%d): ", count)

	// Any positive integer is accepted here; whether it names a student is
	// the store's decision, surfaced below as a failed login.
	roll, err := m.prompter.ReadBoundedInt(1, math.MaxInt32)
	if err != nil {
		return err
	}

	st, err := m.deps.Session.Authenticate(ctx, student.RollNumber(roll))
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "\nLogin successful. Welcome, %s!\n", st.Name)
		m.deps.Logger.Info("student logged in",
			"session_id", m.deps.Session.ID,
			"roll_number", roll,
		)
		m.state = StateStudentPortal
	case shared.IsNotFound(err):
		fmt.Fprint(m.out, "\nInvalid roll number. Please try again.\n")
		m.deps.Logger.Info("failed login attempt", "roll_number", roll)
	default:
		return err
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// STUDENT PORTAL
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) stepStudentPortal(ctx context.Context) error {
	current := m.deps.Session.Current()
	if current == nil {
		// A portal step without a session cannot serve any view; fall back
		// to the main menu.
		m.state = StateMainMenu
		return nil
	}

	fmt.Fprint(m.out, presenter.FormatStudentMenu(current.Name))

	choice, err := m.prompter.ReadBoundedInt(portalChoiceProfile, portalChoiceExit)
	if err != nil {
		return err
	}

	switch choice {
	case portalChoiceProfile:
		return m.showView(ctx, m.renderProfile)
	case portalChoiceFees:
		return m.showView(ctx, m.renderFeeHistory)
	case portalChoiceAcademics:
		return m.showView(ctx, m.renderAcademics)
	case portalChoiceNotices:
		return m.showView(ctx, m.renderNoticeBoard)
	case portalChoiceTimetable:
		return m.showView(ctx, m.renderTimetable)
	case portalChoiceExams:
		return m.showView(ctx, m.renderUpcomingExams)
	case portalChoiceLogout:
		m.deps.Session.Logout()
		fmt.Fprint(m.out, "\nLogged out successfully.\n")
		m.deps.Logger.Info("student logged out", "session_id", m.deps.Session.ID)
		m.state = StateMainMenu
	case portalChoiceExit:
		m.deps.Session.Logout()
		fmt.Fprint(m.out, presenter.FormatFarewell())
		m.state = StateTerminated
	}
	return nil
}

// showView renders one read-only view and waits for Enter.
func (m *Menu) showView(ctx context.Context, render func(context.Context) (string, error)) error {
	view, err := render(ctx)
	if err != nil {
		// View errors are not fatal: report, log, stay in the portal.
		fmt.Fprint(m.out, "\nSomething went wrong. Please try again.\n")
		m.deps.Logger.Error("view failed", "error", err)
		return nil
	}

	fmt.Fprint(m.out, view)
	return m.prompter.ReadContinue()
}

func (m *Menu) renderProfile(ctx context.Context) (string, error) {
	result, err := m.deps.ProfileQuery.Handle(ctx, query.GetProfileQuery{
		RollNumber: m.deps.Session.Current().RollNumber,
	})
	if err != nil {
		return "", err
	}
	return presenter.FormatProfile(result), nil
}

func (m *Menu) renderFeeHistory(ctx context.Context) (string, error) {
	result, err := m.deps.FeeQuery.Handle(ctx, query.GetFeeHistoryQuery{
		RollNumber: m.deps.Session.Current().RollNumber,
	})
	if err != nil {
		return "", err
	}
	return presenter.FormatFeeHistory(result), nil
}

func (m *Menu) renderAcademics(ctx context.Context) (string, error) {
	result, err := m.deps.AcademicQuery.Handle(ctx, query.GetAcademicReportQuery{
		RollNumber: m.deps.Session.Current().RollNumber,
	})
	if err != nil {
		return "", err
	}
	return presenter.FormatAcademicReport(result), nil
}

func (m *Menu) renderNoticeBoard(ctx context.Context) (string, error) {
	result, err := m.deps.NoticeQuery.Handle(ctx, query.GetNoticeBoardQuery{})
	if err != nil {
		return "", err
	}
	return presenter.FormatNoticeBoard(result), nil
}

func (m *Menu) renderTimetable(ctx context.Context) (string, error) {
	result, err := m.deps.TimetableQuery.Handle(ctx, query.GetTimetableQuery{})
	if err != nil {
		return "", err
	}
	return presenter.FormatTimetable(result), nil
}

func (m *Menu) renderUpcomingExams(ctx context.Context) (string, error) {
	result, err := m.deps.ExamsQuery.Handle(ctx, query.GetUpcomingExamsQuery{})
	if err != nil {
		return "", err
	}
	return presenter.FormatUpcomingExams(result), nil
}
