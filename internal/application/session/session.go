// Package session holds the portal's authenticated-student state. A session
// references at most one student at a time - it borrows the entity from the
// record store and never owns it.
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
	"github.com/carmel-jorhat/student-portal/internal/domain/student"
)

// Session is the ephemeral reference to the currently authenticated student.
type Session struct {
	// ID correlates log lines for one portal visit.
	ID string

	repo    student.Repository
	current *student.Student
}

// New creates an empty (unauthenticated) session over the given repository.
func New(repo student.Repository) *Session {
	return &Session{
		ID:   uuid.NewString(),
		repo: repo,
	}
}

// Authenticate looks the roll number up in the record store. On success the
// session holds that student and returns it. On failure the session keeps
// whatever it held before - a failed login never clears an earlier one - and
// the error matches shared.ErrNotFound.
func (s *Session) Authenticate(ctx context.Context, roll student.RollNumber) (*student.Student, error) {
	if !roll.IsValid() {
		return nil, shared.ErrInvalidRollNumber
	}

	st, err := s.repo.GetByRollNumber(ctx, roll)
	if err != nil {
		return nil, err
	}

	s.current = st
	return st, nil
}

// Current returns the authenticated student, or nil when nobody is logged in.
func (s *Session) Current() *student.Student {
	return s.current
}

// IsAuthenticated reports whether a student is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.current != nil
}

// Logout clears the session reference unconditionally. It never fails and is
// safe to call on an empty session.
func (s *Session) Logout() {
	s.current = nil
}
