// Package query contains the portal's read operations following the CQRS
// pattern. Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PROFILE QUERY
// Returns the identity card of one student together with the fixed school
// header values.
// ══════════════════════════════════════════════════════════════════════════════

// SchoolInfo carries the school header values shown on every profile.
type SchoolInfo struct {
	Name    string
	Class   string
	Section string
}

// GetProfileQuery identifies the student whose profile is requested.
type GetProfileQuery struct {
	RollNumber student.RollNumber
}

// Validate checks the query parameters.
func (q GetProfileQuery) Validate() error {
	if !q.RollNumber.IsValid() {
		return shared.ErrInvalidRollNumber
	}
	return nil
}

// ProfileResult is the profile view data.
type ProfileResult struct {
	Name            string
	School          string
	Class           string
	Section         string
	RollNumber      int
	MotherName      string
	FatherName      string
	AdmissionNumber int
}

// GetProfileHandler resolves profile queries against the record store.
type GetProfileHandler struct {
	repo   student.Repository
	school SchoolInfo
}

// NewGetProfileHandler creates a profile query handler.
func NewGetProfileHandler(repo student.Repository, school SchoolInfo) *GetProfileHandler {
	return &GetProfileHandler{repo: repo, school: school}
}

// Handle executes the query.
func (h *GetProfileHandler) Handle(ctx context.Context, q GetProfileQuery) (*ProfileResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	st, err := h.repo.GetByRollNumber(ctx, q.RollNumber)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		Name:            st.Name,
		School:          h.school.Name,
		Class:           h.school.Class,
		Section:         h.school.Section,
		RollNumber:      st.RollNumber.Int(),
		MotherName:      st.MotherName,
		FatherName:      st.FatherName,
		AdmissionNumber: int(st.AdmissionNumber),
	}, nil
}
