package types

import (
	"github.com/samber/lo"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// InvoiceStatus tracks the document lifecycle of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
	InvoiceStatusVoided    InvoiceStatus = "voided"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusFinalized, InvoiceStatusVoided}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Invalid invoice status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PaymentStatus tracks collection of an invoice
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid payment status").
			WithHint("Invalid payment status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Succeeded is terminal; a failed payment may be retried.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {
		PaymentStatusSucceeded,
		PaymentStatusFailed,
	},
	PaymentStatusFailed: {
		PaymentStatusPending,
	},
}

// CanTransition reports whether an invoice payment may move between statuses.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	allowed, ok := paymentTransitions[s]
	if !ok {
		return false
	}
	return lo.Contains(allowed, to)
}
