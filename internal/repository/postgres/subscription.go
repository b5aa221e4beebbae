package postgres

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/domain/subscription"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type subscriptionRepository struct {
	*Repository[subscription.Subscription]
	db *postgres.DB
}

func NewSubscriptionRepository(db *postgres.DB, log *logger.Logger) subscription.Repository {
	return &subscriptionRepository{
		Repository: NewRepository[subscription.Subscription](db, log, subscriptionTable),
		db:         db,
	}
}

// UpdateStatus sets the status on a single subscription. Transition
// validation lives in the service layer; this is a plain write.
func (r *subscriptionRepository) UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) (*subscription.Subscription, error) {
	changes := map[string]any{"subscription_status": status}
	if status == types.SubscriptionStatusCancelled {
		changes["cancelled_at"] = time.Now().UTC()
	}
	return r.Update(ctx, types.ByID(id), changes)
}

// ListExpiring returns active subscriptions whose period ends before the
// given time, earliest first.
func (r *subscriptionRepository) ListExpiring(ctx context.Context, before time.Time) ([]*subscription.Subscription, error) {
	preds := []*entsql.Predicate{
		entsql.EQ("subscription_status", types.SubscriptionStatusActive),
		entsql.LT("current_period_end", before),
		entsql.IsNull("deleted_at"),
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		preds = append(preds, entsql.EQ("tenant_id", tenantID))
	}

	query, args := entsql.Dialect(dialect.Postgres).
		Select(subscriptionTable.Columns...).
		From(entsql.Table(subscriptionTable.Name)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Asc("current_period_end")).
		Query()

	var subs []*subscription.Subscription
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list expiring subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return subs, nil
}
