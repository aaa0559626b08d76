// Package noticeboard contains the school notice domain model.
package noticeboard

import (
	"context"
	"strings"
	"time"

	"github.com/carmel-jorhat/student-portal/internal/domain/shared"
)

// Notice is a school announcement posted for a bounded period. Immutable
// once created; whether it is active depends only on the asked-for date.
type Notice struct {
	// Title is the headline of the notice.
	Title string

	// Content is the body text.
	Content string

	// PostedAt is the date the notice was published.
	PostedAt time.Time

	// ExpiresAt is the last date the notice is considered active.
	// Invariant: PostedAt <= ExpiresAt.
	ExpiresAt time.Time
}

// NewNotice creates a notice with validation.
func NewNotice(title, content string, postedAt, expiresAt time.Time) (*Notice, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.ErrEmptyNoticeTitle
	}
	if postedAt.IsZero() || expiresAt.IsZero() {
		return nil, shared.WrapError("noticeboard", "Validate", shared.ErrEmptyValue, "post and expiry dates are required", nil)
	}
	if expiresAt.Before(postedAt) {
		return nil, shared.ErrInvalidNoticePeriod
	}

	return &Notice{
		Title:     strings.TrimSpace(title),
		Content:   content,
		PostedAt:  postedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// IsActive reports whether the notice is still active as of the given date.
// Activity is derived at read time, never stored: a notice expiring today is
// still active today.
func (n *Notice) IsActive(asOf time.Time) bool {
	return !asOf.After(n.ExpiresAt)
}

// Repository defines the read operations over the seeded notices.
type Repository interface {
	// All returns every seeded notice in insertion order.
	All(ctx context.Context) ([]*Notice, error)

	// Active returns the notices still active as of the given date,
	// preserving insertion order. Recomputed on every call - activity is
	// time-dependent and must not be cached.
	Active(ctx context.Context, asOf time.Time) ([]*Notice, error)
}
