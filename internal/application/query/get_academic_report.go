package query

import (
	"context"
	"sort"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET ACADEMIC REPORT QUERY
// Computes the subject-wise performance table plus the derived summary:
// totals, average, percentage, grade and remark.
// ══════════════════════════════════════════════════════════════════════════════

// GetAcademicReportQuery identifies the student whose report is requested.
type GetAcademicReportQuery struct {
	RollNumber student.RollNumber
}

// Validate checks the query parameters.
func (q GetAcademicReportQuery) Validate() error {
	if !q.RollNumber.IsValid() {
		return shared.ErrInvalidRollNumber
	}
	return nil
}

// SubjectMarkDTO is one row of the performance table.
type SubjectMarkDTO struct {
	Subject string
	Mark    int
	OutOf   int
}

// AcademicReportResult is the academic performance view data.
type AcademicReportResult struct {
	StudentName string

	// Rows lists subject marks sorted by subject name so the table is
	// stable across runs (map iteration order is not).
	Rows []SubjectMarkDTO

	TotalMarks   int
	MaxTotal     int
	SubjectCount int
	AverageMark  float64
	Percentage   float64
	Grade        string
	Comment      string
}

// GetAcademicReportHandler resolves academic report queries.
type GetAcademicReportHandler struct {
	repo student.Repository
}

// NewGetAcademicReportHandler creates an academic report query handler.
func NewGetAcademicReportHandler(repo student.Repository) *GetAcademicReportHandler {
	return &GetAcademicReportHandler{repo: repo}
}

// Handle executes the query.
func (h *GetAcademicReportHandler) Handle(ctx context.Context, q GetAcademicReportQuery) (*AcademicReportResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	st, err := h.repo.GetByRollNumber(ctx, q.RollNumber)
	if err != nil {
		return nil, err
	}

	rows := make([]SubjectMarkDTO, 0, len(st.Marks))
	for subject, mark := range st.Marks {
		rows = append(rows, SubjectMarkDTO{
			Subject: subject,
			Mark:    int(mark),
			OutOf:   student.PerSubjectMax,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Subject < rows[j].Subject })

	grade, comment := st.OverallGrade()

	return &AcademicReportResult{
		StudentName:  st.Name,
		Rows:         rows,
		TotalMarks:   st.TotalMarks(),
		MaxTotal:     st.SubjectCount() * student.PerSubjectMax,
		SubjectCount: st.SubjectCount(),
		AverageMark:  st.AverageMark(),
		Percentage:   st.Percentage(),
		Grade:        string(grade),
		Comment:      comment,
	}, nil
}
