package subscription

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/types"
)

// Repository defines the interface for subscription data access
type Repository interface {
	Create(ctx context.Context, s *Subscription) (*Subscription, error)
	GetByID(ctx context.Context, id string) (*Subscription, error)
	FindOne(ctx context.Context, f types.Filter) (*Subscription, error)
	List(ctx context.Context, f types.Filter) ([]*Subscription, error)
	ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*Subscription], error)
	Count(ctx context.Context, f types.Filter) (int, error)
	Update(ctx context.Context, f types.Filter, changes map[string]any) (*Subscription, error)
	SoftDelete(ctx context.Context, f types.Filter) (int, error)
	Restore(ctx context.Context, f types.Filter) (int, error)
	HardDelete(ctx context.Context, f types.Filter) (int, error)

	// UpdateStatus sets the status of a single subscription. It does not
	// validate the transition; callers check the allow-list first.
	UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) (*Subscription, error)

	// ListExpiring returns active subscriptions whose current period ends
	// before the given time.
	ListExpiring(ctx context.Context, before time.Time) ([]*Subscription, error)
}
