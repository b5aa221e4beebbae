package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/invoice"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryInvoiceStore is an in-memory implementation of invoice.Repository.
// Line items live in a side map keyed by invoice id.
type InMemoryInvoiceStore struct {
	*memoryStore[invoice.Invoice]

	itemMu    sync.RWMutex
	lineItems map[string][]*invoice.LineItem
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		memoryStore: newMemoryStore(
			func(inv *invoice.Invoice) string { return inv.ID },
			func(inv *invoice.Invoice) *types.BaseModel { return &inv.BaseModel },
			func(inv *invoice.Invoice) map[string]any {
				return map[string]any{
					"id":             inv.ID,
					"invoice_number": inv.InvoiceNumber,
					"customer_id":    inv.CustomerID,
					"invoice_status": inv.InvoiceStatus,
					"payment_status": inv.PaymentStatus,
					"currency_code":  inv.CurrencyCode,
				}
			},
			func(inv *invoice.Invoice, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "invoice_status":
						inv.InvoiceStatus = v.(types.InvoiceStatus)
					case "payment_status":
						inv.PaymentStatus = v.(types.PaymentStatus)
					case "amount_paid":
						inv.AmountPaid = v.(decimal.Decimal)
					case "due_date":
						inv.DueDate = v.(*time.Time)
					}
				}
			},
		),
		lineItems: make(map[string][]*invoice.LineItem),
	}
}

func (s *InMemoryInvoiceStore) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice, items []*invoice.LineItem) (*invoice.Invoice, error) {
	stored, err := s.Create(ctx, inv)
	if err != nil {
		return nil, err
	}

	s.itemMu.Lock()
	defer s.itemMu.Unlock()
	stored.LineItems = make([]*invoice.LineItem, 0, len(items))
	for _, item := range items {
		item.InvoiceID = stored.ID
		copied := *item
		s.lineItems[stored.ID] = append(s.lineItems[stored.ID], &copied)
		out := copied
		stored.LineItems = append(stored.LineItems, &out)
	}
	return stored, nil
}

func (s *InMemoryInvoiceStore) GetWithLineItems(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.GetByID(ctx, id)
	if err != nil || inv == nil {
		return inv, err
	}

	s.itemMu.RLock()
	defer s.itemMu.RUnlock()
	inv.LineItems = make([]*invoice.LineItem, 0, len(s.lineItems[id]))
	for _, item := range s.lineItems[id] {
		copied := *item
		inv.LineItems = append(inv.LineItems, &copied)
	}
	return inv, nil
}

// itemsFor returns the stored line items for revenue aggregation.
func (s *InMemoryInvoiceStore) itemsFor(invoiceID string) []*invoice.LineItem {
	s.itemMu.RLock()
	defer s.itemMu.RUnlock()
	return append([]*invoice.LineItem(nil), s.lineItems[invoiceID]...)
}
