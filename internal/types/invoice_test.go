package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusCanTransition(t *testing.T) {
	cases := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentStatusPending, PaymentStatusSucceeded, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusFailed, PaymentStatusPending, true},
		{PaymentStatusFailed, PaymentStatusSucceeded, false},
		{PaymentStatusSucceeded, PaymentStatusPending, false},
		{PaymentStatusSucceeded, PaymentStatusFailed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestInvoiceStatusValidate(t *testing.T) {
	assert.NoError(t, InvoiceStatusDraft.Validate())
	assert.NoError(t, InvoiceStatusFinalized.Validate())
	assert.NoError(t, InvoiceStatusVoided.Validate())
	assert.Error(t, InvoiceStatus("open").Validate())
}
