package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatusCanTransition(t *testing.T) {
	cases := []struct {
		from    SubscriptionStatus
		to      SubscriptionStatus
		allowed bool
	}{
		{SubscriptionStatusPending, SubscriptionStatusActive, true},
		{SubscriptionStatusPending, SubscriptionStatusCancelled, true},
		{SubscriptionStatusPending, SubscriptionStatusPaused, false},
		{SubscriptionStatusActive, SubscriptionStatusPastDue, true},
		{SubscriptionStatusActive, SubscriptionStatusPaused, true},
		{SubscriptionStatusActive, SubscriptionStatusExpired, true},
		{SubscriptionStatusActive, SubscriptionStatusCancelled, true},
		{SubscriptionStatusActive, SubscriptionStatusPending, false},
		{SubscriptionStatusPastDue, SubscriptionStatusActive, true},
		{SubscriptionStatusPaused, SubscriptionStatusActive, true},
		{SubscriptionStatusCancelled, SubscriptionStatusActive, false},
		{SubscriptionStatusExpired, SubscriptionStatusActive, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSubscriptionStatusIsTerminal(t *testing.T) {
	assert.True(t, SubscriptionStatusCancelled.IsTerminal())
	assert.True(t, SubscriptionStatusExpired.IsTerminal())
	assert.False(t, SubscriptionStatusActive.IsTerminal())
	assert.False(t, SubscriptionStatusPending.IsTerminal())
}
