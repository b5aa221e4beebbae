package tenant

import "context"

// Repository defines the interface for tenant data access
type Repository interface {
	Create(ctx context.Context, t *Tenant) (*Tenant, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
	Update(ctx context.Context, id string, changes map[string]any) (*Tenant, error)
}
