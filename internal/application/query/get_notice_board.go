package query

import (
	"context"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/noticeboard"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET NOTICE BOARD QUERY
// Returns the notices still active as of a given date, in posting order.
// No notices is a normal result, never an error.
// ══════════════════════════════════════════════════════════════════════════════

// GetNoticeBoardQuery carries the reference date for the activity filter.
type GetNoticeBoardQuery struct {
	// AsOf is the reference date. Zero means "today".
	AsOf time.Time
}

// Validate fills in the default reference date. Activity is a calendar-day
// question: a notice stays on the board through its whole expiry day, so any
// time-of-day component is dropped before the filter runs.
func (q *GetNoticeBoardQuery) Validate() error {
	if q.AsOf.IsZero() {
		q.AsOf = timeutil.Today()
	}
	q.AsOf = timeutil.StartOfDay(q.AsOf)
	return nil
}

// NoticeDTO is one notice prepared for display.
type NoticeDTO struct {
	Title     string
	Content   string
	PostedAt  time.Time
	ExpiresAt time.Time
}

// NoticeBoardResult is the notice board view data.
type NoticeBoardResult struct {
	Notices []NoticeDTO
	AsOf    time.Time
}

// GetNoticeBoardHandler resolves notice board queries.
type GetNoticeBoardHandler struct {
	repo noticeboard.Repository
}

// NewGetNoticeBoardHandler creates a notice board query handler.
func NewGetNoticeBoardHandler(repo noticeboard.Repository) *GetNoticeBoardHandler {
	return &GetNoticeBoardHandler{repo: repo}
}

// Handle executes the query. The activity filter runs on every call.
func (h *GetNoticeBoardHandler) Handle(ctx context.Context, q GetNoticeBoardQuery) (*NoticeBoardResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	active, err := h.repo.Active(ctx, q.AsOf)
	if err != nil {
		return nil, err
	}

	dtos := make([]NoticeDTO, len(active))
	for i, n := range active {
		dtos[i] = NoticeDTO{
			Title:     n.Title,
			Content:   n.Content,
			PostedAt:  n.PostedAt,
			ExpiresAt: n.ExpiresAt,
		}
	}

	return &NoticeBoardResult{Notices: dtos, AsOf: q.AsOf}, nil
}
