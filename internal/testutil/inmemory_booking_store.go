package testutil

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/booking"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryBookingStore is an in-memory implementation of booking.Repository.
// Revenue aggregation walks the invoice store the same way the sql join does.
type InMemoryBookingStore struct {
	*memoryStore[booking.Booking]

	invoices *InMemoryInvoiceStore
}

func NewInMemoryBookingStore(invoices *InMemoryInvoiceStore) *InMemoryBookingStore {
	return &InMemoryBookingStore{
		memoryStore: newMemoryStore(
			func(b *booking.Booking) string { return b.ID },
			func(b *booking.Booking) *types.BaseModel { return &b.BaseModel },
			func(b *booking.Booking) map[string]any {
				return map[string]any{
					"id":               b.ID,
					"accommodation_id": b.AccommodationID,
					"guest_id":         b.GuestID,
					"booking_status":   b.BookingStatus,
					"currency_code":    b.CurrencyCode,
				}
			},
			func(b *booking.Booking, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "booking_status":
						b.BookingStatus = v.(types.BookingStatus)
					case "guests":
						b.Guests = v.(int)
					case "total_amount":
						b.TotalAmount = v.(decimal.Decimal)
					}
				}
			},
		),
		invoices: invoices,
	}
}

func (s *InMemoryBookingStore) ListInRange(ctx context.Context, accommodationID string, from, to time.Time) ([]*booking.Booking, error) {
	all, err := s.List(ctx, types.NewFilter(map[string]any{"accommodation_id": accommodationID}))
	if err != nil {
		return nil, err
	}
	var result []*booking.Booking
	for _, b := range all {
		if b.BookingStatus == types.BookingStatusCancelled {
			continue
		}
		if b.Overlaps(from, to) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *InMemoryBookingStore) TotalRevenue(ctx context.Context, accommodationID string, from, to time.Time) (decimal.Decimal, error) {
	bookings, err := s.List(ctx, types.NewFilter(map[string]any{"accommodation_id": accommodationID}).WithDeleted())
	if err != nil {
		return decimal.Zero, err
	}
	ids := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		ids[b.ID] = true
	}

	invoices, err := s.invoices.List(ctx, types.Filter{})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, inv := range invoices {
		if inv.BookingID == nil || !ids[*inv.BookingID] {
			continue
		}
		if inv.PaymentStatus != types.PaymentStatusSucceeded {
			continue
		}
		if inv.CreatedAt.Before(from) || !inv.CreatedAt.Before(to) {
			continue
		}
		for _, item := range s.invoices.itemsFor(inv.ID) {
			if item.DeletedAt == nil {
				total = total.Add(item.Amount)
			}
		}
	}
	return total, nil
}
