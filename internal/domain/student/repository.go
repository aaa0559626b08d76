package student

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// The contract for the student record store. The implementation lives in
// infrastructure/persistence and is read-only after seeding.
// ══════════════════════════════════════════════════════════════════════════════

// Repository defines the read operations over the seeded student records.
type Repository interface {
	// GetByRollNumber returns the student with the given roll number.
	// The lookup is an exact integer match - no partial or fuzzy matching.
	// Returns an error matching shared.ErrNotFound when the key is absent.
	GetByRollNumber(ctx context.Context, roll RollNumber) (*Student, error)

	// GetAll returns all students in roll-number order.
	GetAll(ctx context.Context) ([]*Student, error)

	// Count returns the number of seeded students.
	Count(ctx context.Context) (int, error)
}
