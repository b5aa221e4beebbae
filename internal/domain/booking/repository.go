package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	FindOne(ctx context.Context, f types.Filter) (*Booking, error)
	List(ctx context.Context, f types.Filter) ([]*Booking, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Booking], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Booking, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)

	// ListInRange returns non-cancelled bookings for an accommodation whose
	// stay intersects [from, to).
	ListInRange(ctx context.Context, accommodationID string, from, to time.Time) ([]*Booking, error)

	// TotalRevenue sums paid invoice line items attributed to an
	// accommodation's bookings in the given period.
	TotalRevenue(ctx context.Context, accommodationID string, from, to time.Time) (decimal.Decimal, error)
}
