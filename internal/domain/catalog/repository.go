package catalog

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for catalog data access
type Repository interface {
	Create(ctx context.Context, c *Catalog) (*Catalog, error)
	GetByID(ctx context.Context, id string) (*Catalog, error)
	FindOne(ctx context.Context, f types.Filter) (*Catalog, error)
	List(ctx context.Context, f types.Filter) ([]*Catalog, error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Catalog, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)
}
