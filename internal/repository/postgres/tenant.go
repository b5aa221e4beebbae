package postgres

import (
	"context"

	"github.com/stayloop/stayloop/internal/domain/tenant"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

// tenantRepository is the one unscoped repository: tenants are the scoping
// root and cannot be filtered by themselves.
type tenantRepository struct {
	*Repository[tenant.Tenant]
}

func NewTenantRepository(db *postgres.DB, log *logger.Logger) tenant.Repository {
	return &tenantRepository{
		Repository: NewRepository[tenant.Tenant](db, log, tenantTable),
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	return r.Repository.Create(ctx, t)
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	return r.FindOne(ctx, types.Filter{Eq: map[string]any{"slug": slug}})
}

func (r *tenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	return r.Repository.List(ctx, types.Filter{})
}

func (r *tenantRepository) Update(ctx context.Context, id string, changes map[string]any) (*tenant.Tenant, error) {
	return r.Repository.Update(ctx, types.ByID(id), changes)
}
