package types

import (
	"github.com/samber/lo"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// Status is the lifecycle status of a resource in the database. Logical
// deletion is tracked separately via the deleted_at timestamp, not here.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	allowed := []Status{StatusActive, StatusInactive, StatusArchived}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid status").
			WithHint("Invalid status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Visibility governs read eligibility of public-facing listings.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityDraft   Visibility = "draft"
)

func (v Visibility) String() string {
	return string(v)
}

func (v Visibility) Validate() error {
	allowed := []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityDraft}
	if !lo.Contains(allowed, v) {
		return ierr.NewError("invalid visibility").
			WithHint("Invalid visibility").
			WithReportableDetails(map[string]any{
				"visibility":     v,
				"allowed_values": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
