package promotion

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for promotion data access
type Repository interface {
	Create(ctx context.Context, p *Promotion) (*Promotion, error)
	GetByID(ctx context.Context, id string) (*Promotion, error)
	GetByCode(ctx context.Context, code string) (*Promotion, error)
	FindOne(ctx context.Context, f types.Filter) (*Promotion, error)
	List(ctx context.Context, f types.Filter) ([]*Promotion, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Promotion], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Promotion, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)

	// IncrementRedemptions bumps the redemption counter atomically.
	IncrementRedemptions(ctx context.Context, id string) error
}
