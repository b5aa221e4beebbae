package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/subscription"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemorySubscriptionStore is an in-memory implementation of
// subscription.Repository.
type InMemorySubscriptionStore struct {
	*memoryStore[subscription.Subscription]
}

func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		memoryStore: newMemoryStore(
			func(sub *subscription.Subscription) string { return sub.ID },
			func(sub *subscription.Subscription) *types.BaseModel { return &sub.BaseModel },
			func(sub *subscription.Subscription) map[string]any {
				return map[string]any{
					"id":                  sub.ID,
					"user_id":             sub.UserID,
					"plan_key":            sub.PlanKey,
					"subscription_status": sub.SubscriptionStatus,
					"currency_code":       sub.CurrencyCode,
				}
			},
			func(sub *subscription.Subscription, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "subscription_status":
						sub.SubscriptionStatus = v.(types.SubscriptionStatus)
					case "amount":
						sub.Amount = v.(decimal.Decimal)
					case "cancelled_at":
						sub.CancelledAt = v.(*time.Time)
					case "current_period_start":
						sub.CurrentPeriodStart = v.(time.Time)
					case "current_period_end":
						sub.CurrentPeriodEnd = v.(time.Time)
					}
				}
			},
		),
	}
}

func (s *InMemorySubscriptionStore) UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) (*subscription.Subscription, error) {
	changes := map[string]any{"subscription_status": status}
	if status == types.SubscriptionStatusCancelled {
		now := time.Now().UTC()
		changes["cancelled_at"] = &now
	}
	return s.Update(ctx, types.ByID(id), changes)
}

func (s *InMemorySubscriptionStore) ListExpiring(ctx context.Context, before time.Time) ([]*subscription.Subscription, error) {
	all, err := s.List(ctx, types.NewFilter(map[string]any{
		"subscription_status": types.SubscriptionStatusActive,
	}))
	if err != nil {
		return nil, err
	}
	var result []*subscription.Subscription
	for _, sub := range all {
		if sub.CurrentPeriodEnd.Before(before) {
			result = append(result, sub)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CurrentPeriodEnd.Before(result[j].CurrentPeriodEnd)
	})
	return result, nil
}
