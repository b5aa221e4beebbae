package postgres

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/cache"
	"github.com/stayloop/stayloop/internal/domain/catalog"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type catalogRepository struct {
	*Repository[catalog.Catalog]
	cache cache.Cache
}

func NewCatalogRepository(db *postgres.DB, log *logger.Logger, c cache.Cache) catalog.Repository {
	return &catalogRepository{
		Repository: NewRepository[catalog.Catalog](db, log, catalogTable),
		cache:      c,
	}
}

// Rate cards change rarely and price every placement quote, so reads are
// cached aggressively.
func (r *catalogRepository) GetByID(ctx context.Context, id string) (*catalog.Catalog, error) {
	key := cache.GenerateKey(cache.PrefixCatalog, ctx, id)
	if v, found := r.cache.Get(ctx, key); found {
		if c, ok := v.(*catalog.Catalog); ok {
			return c, nil
		}
	}
	c, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c != nil {
		r.cache.Set(ctx, key, c, 10*time.Minute)
	}
	return c, nil
}

func (r *catalogRepository) Update(ctx context.Context, f types.Filter, changes map[string]any) (*catalog.Catalog, error) {
	c, err := r.Repository.Update(ctx, f, changes)
	if err != nil {
		return nil, err
	}
	if c != nil {
		r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixCatalog, ctx, c.ID))
	}
	return c, nil
}

func (r *catalogRepository) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.SoftDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixCatalog, ctx))
	}
	return n, err
}

func (r *catalogRepository) Restore(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.Restore(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixCatalog, ctx))
	}
	return n, err
}

func (r *catalogRepository) HardDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.HardDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixCatalog, ctx))
	}
	return n, err
}
