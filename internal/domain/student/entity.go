// Package student contains the student domain model for the Carmel School
// student portal. This is the core of the business logic - there are no
// external dependencies here.
package student

import (
	"fmt"
	"strings"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// RollNumber is the unique class-roll identifier of a student and the sole
// lookup key used for portal authentication. Roll numbers never change.
type RollNumber int

// IsValid checks that the roll number is positive.
func (r RollNumber) IsValid() bool {
	return r > 0
}

// Int returns the underlying int value.
func (r RollNumber) Int() int {
	return int(r)
}

// AdmissionNumber is the school admission register number. It is unique per
// student but purely informational - nothing is looked up by it.
type AdmissionNumber int

// IsValid checks that the admission number is positive.
func (a AdmissionNumber) IsValid() bool {
	return a > 0
}

// Mark is a recorded score for one subject, out of PerSubjectMax.
type Mark int

// IsValid checks that the mark lies in [0, PerSubjectMax].
func (m Mark) IsValid() bool {
	return m >= 0 && m <= PerSubjectMax
}

// Marks maps a subject name to the recorded mark for that subject.
// Subject names are unique keys.
type Marks map[string]Mark

// ══════════════════════════════════════════════════════════════════════════════
// FEE PAYMENT
// Value record owned exclusively by its Student. Immutable once created.
// ══════════════════════════════════════════════════════════════════════════════

// FeePayment records a single fee installment paid by a student.
type FeePayment struct {
	// Amount is the paid amount in rupees. Always positive.
	Amount float64

	// PaidAt is the calendar date of the payment.
	PaidAt time.Time

	// Method is the free-text payment method, e.g. "Online Transfer".
	Method string

	// ReceiptNumber identifies the receipt. Unique per payment for one
	// student; uniqueness is not enforced globally.
	ReceiptNumber string
}

// NewFeePayment creates a fee payment with validation.
func NewFeePayment(amount float64, paidAt time.Time, method, receiptNumber string) (FeePayment, error) {
	if amount <= 0 {
		return FeePayment{}, shared.ErrInvalidPayment
	}
	if paidAt.IsZero() {
		return FeePayment{}, shared.WrapError("student", "Validate", shared.ErrEmptyValue, "payment date is required", nil)
	}
	if strings.TrimSpace(receiptNumber) == "" {
		return FeePayment{}, shared.WrapError("student", "Validate", shared.ErrEmptyValue, "receipt number is required", nil)
	}

	return FeePayment{
		Amount:        amount,
		PaidAt:        paidAt,
		Method:        method,
		ReceiptNumber: receiptNumber,
	}, nil
}

// String returns a one-line representation matching the portal's fee view.
func (p FeePayment) String() string {
	return fmt.Sprintf("Payment of Rs. %.2f made on %s via %s (Receipt: %s)",
		p.Amount, p.PaidAt.Format("January 2, 2006"), p.Method, p.ReceiptNumber)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is the central entity of the portal: one pupil of the class,
// identified by roll number, with recorded marks and fee payments.
type Student struct {
	// RollNumber is the unique lookup key (1..N within the class).
	RollNumber RollNumber

	// Name is the student's full name.
	Name string

	// MotherName is the student's mother's full name.
	MotherName string

	// FatherName is the student's father's full name.
	FatherName string

	// AdmissionNumber is the school admission register number.
	AdmissionNumber AdmissionNumber

	// Marks maps subject name to the recorded score. Never empty after
	// construction.
	Marks Marks

	// FeePayments holds payments in insertion order. The order is not
	// necessarily sorted by date.
	FeePayments []FeePayment
}

// NewStudentParams contains the parameters for creating a student.
type NewStudentParams struct {
	RollNumber      RollNumber
	Name            string
	MotherName      string
	FatherName      string
	AdmissionNumber AdmissionNumber
	Marks           Marks
	FeePayments     []FeePayment
}

// NewStudent creates a student with validation of all fields. The marks map
// must be non-empty and every mark must lie within its allowed range.
func NewStudent(params NewStudentParams) (*Student, error) {
	if !params.RollNumber.IsValid() {
		return nil, shared.ErrInvalidRollNumber
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, shared.WrapError("student", "Validate", shared.ErrEmptyValue, "student name is required", nil)
	}

	if !params.AdmissionNumber.IsValid() {
		return nil, shared.WrapError("student", "Validate", shared.ErrInvalidID, "invalid admission number", nil)
	}

	if len(params.Marks) == 0 {
		return nil, shared.ErrNoMarksRecorded
	}
	for subject, mark := range params.Marks {
		if strings.TrimSpace(subject) == "" {
			return nil, shared.WrapError("student", "Validate", shared.ErrEmptyValue, "subject name is required", nil)
		}
		if !mark.IsValid() {
			return nil, shared.WrapError("student", "Validate", shared.ErrInvalidMark,
				fmt.Sprintf("%s: %d is outside [0, %d]", subject, mark, PerSubjectMax), nil)
		}
	}

	// Copy the mutable containers so the caller cannot change the entity
	// behind its back. The store is read-only after seeding.
	marks := make(Marks, len(params.Marks))
	for subject, mark := range params.Marks {
		marks[subject] = mark
	}
	payments := make([]FeePayment, len(params.FeePayments))
	copy(payments, params.FeePayments)

	return &Student{
		RollNumber:      params.RollNumber,
		Name:            name,
		MotherName:      strings.TrimSpace(params.MotherName),
		FatherName:      strings.TrimSpace(params.FatherName),
		AdmissionNumber: params.AdmissionNumber,
		Marks:           marks,
		FeePayments:     payments,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// LatestPayment returns the fee payment with the maximum payment date, or nil
// when the student has no payments. Equal dates resolve to the first such
// payment in insertion order, so the choice is stable across calls.
func (s *Student) LatestPayment() *FeePayment {
	if len(s.FeePayments) == 0 {
		return nil
	}

	latest := 0
	for i := 1; i < len(s.FeePayments); i++ {
		if s.FeePayments[i].PaidAt.After(s.FeePayments[latest].PaidAt) {
			latest = i
		}
	}

	p := s.FeePayments[latest]
	return &p
}

// TotalMarks returns the sum of all recorded marks.
func (s *Student) TotalMarks() int {
	total := 0
	for _, mark := range s.Marks {
		total += int(mark)
	}
	return total
}

// SubjectCount returns the number of subjects with a recorded mark.
func (s *Student) SubjectCount() int {
	return len(s.Marks)
}

// AverageMark returns the mean mark across all subjects.
func (s *Student) AverageMark() float64 {
	count := s.SubjectCount()
	if count == 0 {
		return 0
	}
	return float64(s.TotalMarks()) / float64(count)
}

// Percentage returns the overall percentage, with every subject weighted by
// the uniform PerSubjectMax. Guaranteed to lie in [0, 100] for marks within
// their valid range.
func (s *Student) Percentage() float64 {
	count := s.SubjectCount()
	if count == 0 {
		return 0
	}
	return float64(s.TotalMarks()) / float64(count*PerSubjectMax) * 100
}

// String returns a short representation for logging.
func (s *Student) String() string {
	return fmt.Sprintf("Student{Roll: %d, Name: %s, Subjects: %d}",
		s.RollNumber, s.Name, s.SubjectCount())
}

// Clone creates a deep copy of the student.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Marks = make(Marks, len(s.Marks))
	for subject, mark := range s.Marks {
		clone.Marks[subject] = mark
	}
	clone.FeePayments = make([]FeePayment, len(s.FeePayments))
	copy(clone.FeePayments, s.FeePayments)
	return &clone
}
