package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/invoice"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateInvoiceLineItemRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
}

func (r *CreateInvoiceLineItemRequest) ToLineItem(ctx context.Context) *invoice.LineItem {
	return &invoice.LineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE),
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Amount:      r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity))),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type CreateInvoiceRequest struct {
	CustomerID     string                          `json:"customer_id" validate:"required"`
	BookingID      *string                         `json:"booking_id,omitempty"`
	SubscriptionID *string                         `json:"subscription_id,omitempty"`
	CurrencyCode   string                          `json:"currency_code" validate:"required,len=3"`
	DueDate        *time.Time                      `json:"due_date,omitempty"`
	LineItems      []*CreateInvoiceLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BookingID == nil && r.SubscriptionID == nil {
		return ierr.NewError("invoice target missing").
			WithHint("An invoice must reference a booking or a subscription").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type RecordPaymentRequest struct {
	Status types.PaymentStatus `json:"status" validate:"required"`
	Amount decimal.Decimal     `json:"amount"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
