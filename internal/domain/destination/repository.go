package destination

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for destination data access
type Repository interface {
	Create(ctx context.Context, d *Destination) (*Destination, error)
	GetByID(ctx context.Context, id string) (*Destination, error)
	FindOne(ctx context.Context, f types.Filter) (*Destination, error)
	List(ctx context.Context, f types.Filter) ([]*Destination, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Destination], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Destination, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)
}
