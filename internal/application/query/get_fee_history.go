package query

import (
	"context"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET FEE HISTORY QUERY
// Returns the latest installment paid by a student plus the standing
// next-installment information. An empty payment list is a normal result,
// never an error.
// ══════════════════════════════════════════════════════════════════════════════

// GetFeeHistoryQuery identifies the student and the date to measure
// "days since last payment" against.
type GetFeeHistoryQuery struct {
	RollNumber student.RollNumber

	// AsOf is the reference date. Zero means "now".
	AsOf time.Time
}

// Validate checks the query parameters.
func (q *GetFeeHistoryQuery) Validate() error {
	if !q.RollNumber.IsValid() {
		return shared.ErrInvalidRollNumber
	}
	if q.AsOf.IsZero() {
		q.AsOf = timeutil.Now()
	}
	return nil
}

// PaymentDTO is one fee payment prepared for display.
type PaymentDTO struct {
	Amount        float64
	PaidAt        time.Time
	Method        string
	ReceiptNumber string
}

// FeeHistoryResult is the fee view data.
type FeeHistoryResult struct {
	// HasPayments is false when the student has no recorded installment.
	HasPayments bool

	// LastPayment is the most recent installment. Only meaningful when
	// HasPayments is true.
	LastPayment PaymentDTO

	// DaysSincePayment counts whole days from the last payment to AsOf.
	DaysSincePayment int

	// NextDueNote and LateFeeNote carry the standing fee reminders.
	NextDueNote   string
	NextDueAmount float64
	LateFeeNote   string
}

// GetFeeHistoryHandler resolves fee history queries.
type GetFeeHistoryHandler struct {
	repo student.Repository
}

// NewGetFeeHistoryHandler creates a fee history query handler.
func NewGetFeeHistoryHandler(repo student.Repository) *GetFeeHistoryHandler {
	return &GetFeeHistoryHandler{repo: repo}
}

// Handle executes the query.
func (h *GetFeeHistoryHandler) Handle(ctx context.Context, q GetFeeHistoryQuery) (*FeeHistoryResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	st, err := h.repo.GetByRollNumber(ctx, q.RollNumber)
	if err != nil {
		return nil, err
	}

	result := &FeeHistoryResult{
		NextDueNote:   "The second installment of fees is due between September 1-16, 2025.",
		NextDueAmount: 5000.00,
		LateFeeNote: "If you have not paid the fees for the current installment, an amount " +
			"of Rs.50 will be charged as a late fee penalty.",
	}

	last := st.LatestPayment()
	if last == nil {
		return result, nil
	}

	result.HasPayments = true
	result.LastPayment = PaymentDTO{
		Amount:        last.Amount,
		PaidAt:        last.PaidAt,
		Method:        last.Method,
		ReceiptNumber: last.ReceiptNumber,
	}
	result.DaysSincePayment = timeutil.DaysBetween(last.PaidAt, q.AsOf)

	return result, nil
}
