package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Booking is a guest reservation for an accommodation stay.
type Booking struct {
	ID              string              `db:"id" json:"id"`
	AccommodationID string              `db:"accommodation_id" json:"accommodation_id"`
	GuestID         string              `db:"guest_id" json:"guest_id"`
	CheckIn         time.Time           `db:"check_in" json:"check_in"`
	CheckOut        time.Time           `db:"check_out" json:"check_out"`
	Guests          int                 `db:"guests" json:"guests"`
	TotalAmount     decimal.Decimal     `db:"total_amount" json:"total_amount"`
	CurrencyCode    string              `db:"currency_code" json:"currency_code"`
	BookingStatus   types.BookingStatus `db:"booking_status" json:"booking_status"`

	types.BaseModel
}

// Nights returns the stay length in nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Overlaps reports whether the stay intersects the given date range.
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.CheckIn.Before(to) && b.CheckOut.After(from)
}
