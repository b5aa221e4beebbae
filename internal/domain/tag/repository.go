package tag

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for tag data access
type Repository interface {
	Create(ctx context.Context, t *Tag) (*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	FindOne(ctx context.Context, f types.Filter) (*Tag, error)
	List(ctx context.Context, f types.Filter) ([]*Tag, error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Tag, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)
}
