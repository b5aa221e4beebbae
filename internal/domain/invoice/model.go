package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Invoice bills a customer for a booking or a subscription period.
type Invoice struct {
	ID             string              `db:"id" json:"id"`
	InvoiceNumber  string              `db:"invoice_number" json:"invoice_number"`
	CustomerID     string              `db:"customer_id" json:"customer_id"`
	BookingID      *string             `db:"booking_id" json:"booking_id,omitempty"`
	SubscriptionID *string             `db:"subscription_id" json:"subscription_id,omitempty"`
	InvoiceStatus  types.InvoiceStatus `db:"invoice_status" json:"invoice_status"`
	PaymentStatus  types.PaymentStatus `db:"payment_status" json:"payment_status"`
	CurrencyCode   string              `db:"currency_code" json:"currency_code"`
	AmountDue      decimal.Decimal     `db:"amount_due" json:"amount_due"`
	AmountPaid     decimal.Decimal     `db:"amount_paid" json:"amount_paid"`
	DueDate        *time.Time          `db:"due_date" json:"due_date,omitempty"`

	types.BaseModel

	// Hydrated by GetWithLineItems and CreateWithLineItems.
	LineItems []*LineItem `db:"-" json:"line_items,omitempty"`
}

// LineItem is a single billed position on an invoice.
type LineItem struct {
	ID          string          `db:"id" json:"id"`
	InvoiceID   string          `db:"invoice_id" json:"invoice_id"`
	Description string          `db:"description" json:"description"`
	Quantity    int             `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`

	types.BaseModel
}

// Total returns the sum of line item amounts.
func Total(items []*LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
