package types

import (
	"github.com/samber/lo"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// BookingStatus is the lifecycle status of a reservation
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) Validate() error {
	allowed := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid booking status").
			WithHint("Invalid booking status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {
		BookingStatusConfirmed,
		BookingStatusCancelled,
	},
	BookingStatusConfirmed: {
		BookingStatusCompleted,
		BookingStatusCancelled,
	},
}

// CanTransition reports whether a booking may move from one status to another.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	if !ok {
		return false
	}
	return lo.Contains(allowed, to)
}
