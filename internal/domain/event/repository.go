package event

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for event data access
type Repository interface {
	Create(ctx context.Context, e *Event) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	FindOne(ctx context.Context, f types.Filter) (*Event, error)
	List(ctx context.Context, f types.Filter) ([]*Event, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Event], error)
	ListUpcoming(ctx context.Context, destinationID string, after time.Time) ([]*Event, error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Event, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)
}
