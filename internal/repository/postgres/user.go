package postgres

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/cache"
	"github.com/stayloop/stayloop/internal/domain/user"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type userRepository struct {
	*Repository[user.User]
	cache cache.Cache
	log   *logger.Logger
}

func NewUserRepository(db *postgres.DB, log *logger.Logger, c cache.Cache) user.Repository {
	return &userRepository{
		Repository: NewRepository[user.User](db, log, userTable),
		cache:      c,
		log:        log,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if cached := r.getCached(ctx, "id", id); cached != nil {
		return cached, nil
	}
	u, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.setCached(ctx, u)
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if cached := r.getCached(ctx, "email", email); cached != nil {
		return cached, nil
	}
	u, err := r.FindOne(ctx, types.Filter{Eq: map[string]any{"email": email}})
	if err != nil {
		return nil, err
	}
	r.setCached(ctx, u)
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, f types.Filter, changes map[string]any) (*user.User, error) {
	u, err := r.Repository.Update(ctx, f, changes)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, u)
	return u, nil
}

func (r *userRepository) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.SoftDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixUser, ctx))
	}
	return n, err
}

func (r *userRepository) Restore(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.Restore(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixUser, ctx))
	}
	return n, err
}

func (r *userRepository) getCached(ctx context.Context, field, value string) *user.User {
	key := cache.GenerateKey(cache.PrefixUser, ctx, field, value)
	if v, found := r.cache.Get(ctx, key); found {
		if u, ok := v.(*user.User); ok {
			r.log.Debugw("cache hit", "entity", "user", "key", key)
			return u
		}
	}
	return nil
}

func (r *userRepository) setCached(ctx context.Context, u *user.User) {
	if u == nil {
		return
	}
	r.cache.Set(ctx, cache.GenerateKey(cache.PrefixUser, ctx, "id", u.ID), u, 5*time.Minute)
	r.cache.Set(ctx, cache.GenerateKey(cache.PrefixUser, ctx, "email", u.Email), u, 5*time.Minute)
}

func (r *userRepository) invalidate(ctx context.Context, u *user.User) {
	if u == nil {
		return
	}
	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixUser, ctx, "id", u.ID))
	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixUser, ctx, "email", u.Email))
}
