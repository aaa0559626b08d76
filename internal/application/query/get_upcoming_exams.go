package query

import (
	"context"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/exam"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET UPCOMING EXAMS QUERY
// Returns the announced exam schedule. No exams is a normal result, never an
// error.
// ══════════════════════════════════════════════════════════════════════════════

// GetUpcomingExamsQuery has no parameters; the schedule is class-wide.
type GetUpcomingExamsQuery struct{}

// ExamDTO is one scheduled exam prepared for display.
type ExamDTO struct {
	Subject     string
	Description string
	Date        time.Time
	Syllabus    string
	MaxMarks    int
}

// UpcomingExamsResult is the exam schedule view data.
type UpcomingExamsResult struct {
	Exams []ExamDTO
}

// GetUpcomingExamsHandler resolves exam schedule queries.
type GetUpcomingExamsHandler struct {
	repo exam.Repository
}

// NewGetUpcomingExamsHandler creates an exam schedule query handler.
func NewGetUpcomingExamsHandler(repo exam.Repository) *GetUpcomingExamsHandler {
	return &GetUpcomingExamsHandler{repo: repo}
}

// Handle executes the query.
func (h *GetUpcomingExamsHandler) Handle(ctx context.Context, _ GetUpcomingExamsQuery) (*UpcomingExamsResult, error) {
	exams, err := h.repo.Upcoming(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ExamDTO, len(exams))
	for i, e := range exams {
		dtos[i] = ExamDTO{
			Subject:     e.Subject,
			Description: e.Description,
			Date:        e.Date,
			Syllabus:    e.Syllabus,
			MaxMarks:    e.MaxMarks,
		}
	}

	return &UpcomingExamsResult{Exams: dtos}, nil
}
