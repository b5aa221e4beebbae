package invoice

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for invoice data access
type Repository interface {
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	FindOne(ctx context.Context, f types.Filter) (*Invoice, error)
	List(ctx context.Context, f types.Filter) ([]*Invoice, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Invoice], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Invoice, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)

	// CreateWithLineItems inserts the invoice and its line items atomically.
	// It joins a caller-managed transaction when one is carried in ctx.
	CreateWithLineItems(ctx context.Context, inv *Invoice, items []*LineItem) (*Invoice, error)

	// GetWithLineItems returns the invoice with its line items hydrated.
	GetWithLineItems(ctx context.Context, id string) (*Invoice, error)
}
