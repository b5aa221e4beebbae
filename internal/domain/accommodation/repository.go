package accommodation

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// SearchQuery is a sparse conjunction of equality predicates plus sorting
// and pagination. Zero-valued fields are ignored.
type SearchQuery struct {
	DestinationID string
	HostID        string
	Visibility    types.Visibility
	MaxGuests     int
	Pagination    types.Pagination
}

// Repository defines the interface for accommodation data access
type Repository interface {
	Create(ctx context.Context, a *Accommodation) (*Accommodation, error)
	GetByID(ctx context.Context, id string) (*Accommodation, error)
	GetWithRelations(ctx context.Context, id string, relations []string) (*Accommodation, error)
	FindOne(ctx context.Context, f types.Filter) (*Accommodation, error)
	List(ctx context.Context, f types.Filter) ([]*Accommodation, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Accommodation], error)
	Search(ctx context.Context, q SearchQuery) (*types.ListResult[*Accommodation], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Accommodation, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)
	ReplaceTags(ctx context.Context, accommodationID string, tagIDs []string) error
}
