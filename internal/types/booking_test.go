package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValidate(t *testing.T) {
	assert.NoError(t, BookingStatusPending.Validate())
	assert.NoError(t, BookingStatusConfirmed.Validate())
	assert.Error(t, BookingStatus("unknown").Validate())
	assert.Error(t, BookingStatus("").Validate())
}

func TestBookingStatusCanTransition(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
