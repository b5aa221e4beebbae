package types

import (
	"github.com/samber/lo"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// SubscriptionStatus is the lifecycle status of a host subscription
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) Validate() error {
	allowed := []SubscriptionStatus{
		SubscriptionStatusPending,
		SubscriptionStatusActive,
		SubscriptionStatusPastDue,
		SubscriptionStatusPaused,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Invalid subscription status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// subscriptionTransitions is the static allow-list of valid status changes.
// Cancelled and expired are terminal.
var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusPending: {
		SubscriptionStatusActive,
		SubscriptionStatusCancelled,
	},
	SubscriptionStatusActive: {
		SubscriptionStatusPastDue,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
		SubscriptionStatusPaused,
	},
	SubscriptionStatusPastDue: {
		SubscriptionStatusActive,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
	},
	SubscriptionStatusPaused: {
		SubscriptionStatusActive,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired,
	},
}

// CanTransition reports whether a subscription may move from one status to
// another. Checked before any write so an invalid transition fails fast
// without touching storage.
func (s SubscriptionStatus) CanTransition(to SubscriptionStatus) bool {
	allowed, ok := subscriptionTransitions[s]
	if !ok {
		return false
	}
	return lo.Contains(allowed, to)
}

// IsTerminal reports whether the status admits no further transitions.
func (s SubscriptionStatus) IsTerminal() bool {
	_, ok := subscriptionTransitions[s]
	return !ok
}
