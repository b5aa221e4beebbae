package postgres

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/cache"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type destinationRepository struct {
	*Repository[destination.Destination]
	cache cache.Cache
}

func NewDestinationRepository(db *postgres.DB, log *logger.Logger, c cache.Cache) destination.Repository {
	return &destinationRepository{
		Repository: NewRepository[destination.Destination](db, log, destinationTable),
		cache:      c,
	}
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*destination.Destination, error) {
	key := cache.GenerateKey(cache.PrefixDestination, ctx, id)
	if v, found := r.cache.Get(ctx, key); found {
		if d, ok := v.(*destination.Destination); ok {
			return d, nil
		}
	}
	d, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d != nil {
		r.cache.Set(ctx, key, d, 5*time.Minute)
	}
	return d, nil
}

func (r *destinationRepository) Update(ctx context.Context, f types.Filter, changes map[string]any) (*destination.Destination, error) {
	d, err := r.Repository.Update(ctx, f, changes)
	if err != nil {
		return nil, err
	}
	if d != nil {
		r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixDestination, ctx, d.ID))
	}
	return d, nil
}

func (r *destinationRepository) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.SoftDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixDestination, ctx))
	}
	return n, err
}

func (r *destinationRepository) Restore(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.Restore(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixDestination, ctx))
	}
	return n, err
}

func (r *destinationRepository) HardDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.HardDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixDestination, ctx))
	}
	return n, err
}
