// Package exam contains the scheduled-assessment domain model. An exam is a
// future test announced to the whole class - it is not tied to any student.
package exam

import (
	"context"
	"strings"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
)

// Exam is an upcoming scheduled assessment. Immutable once created.
type Exam struct {
	// Subject is the examined subject, e.g. "Mathematics".
	Subject string

	// Description says what kind of test it is.
	Description string

	// Date is the scheduled date of the exam.
	Date time.Time

	// Syllabus describes the covered material.
	Syllabus string

	// MaxMarks is the maximum attainable score. Always positive and may
	// differ per exam (practicals are commonly out of 25).
	MaxMarks int
}

// NewExam creates an exam with validation.
func NewExam(subject, description string, date time.Time, syllabus string, maxMarks int) (*Exam, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, shared.ErrEmptySubject
	}
	if date.IsZero() {
		return nil, shared.WrapError("exam", "Validate", shared.ErrEmptyValue, "exam date is required", nil)
	}
	if maxMarks <= 0 {
		return nil, shared.ErrInvalidMaxMarks
	}

	return &Exam{
		Subject:     strings.TrimSpace(subject),
		Description: description,
		Date:        date,
		Syllabus:    syllabus,
		MaxMarks:    maxMarks,
	}, nil
}

// Repository defines the read operations over the seeded exam schedule.
type Repository interface {
	// Upcoming returns every scheduled exam in insertion order. An empty
	// slice is a normal result, not an error.
	Upcoming(ctx context.Context) ([]*Exam, error)
}
