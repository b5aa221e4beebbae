package service

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/subscription"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entitySubscription = "subscription"

type SubscriptionService interface {
	Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*subscription.Subscription, error)
	Get(ctx context.Context, id string) (*subscription.Subscription, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*subscription.Subscription], error)
	UpdateStatus(ctx context.Context, id string, to types.SubscriptionStatus) (*subscription.Subscription, error)
	Activate(ctx context.Context, id string) (*subscription.Subscription, error)
	Pause(ctx context.Context, id string) (*subscription.Subscription, error)
	Cancel(ctx context.Context, id string) (*subscription.Subscription, error)
	Expire(ctx context.Context, id string) (*subscription.Subscription, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{ServiceParams: params}
}

func (s *subscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*subscription.Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entitySubscription, ActionCreate, req.UserID); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsDeleted() {
		return nil, notFound("user", req.UserID)
	}
	return s.SubscriptionRepo.Create(ctx, req.ToSubscription(ctx))
}

func (s *subscriptionService) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	sub, err := s.SubscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, notFound(entitySubscription, id)
	}
	if err := s.authorize(ctx, entitySubscription, ActionRead, sub.UserID); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*subscription.Subscription], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.SubscriptionRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

// UpdateStatus validates the transition allow-list before any write. An
// invalid transition fails without touching storage.
func (s *subscriptionService) UpdateStatus(ctx context.Context, id string, to types.SubscriptionStatus) (*subscription.Subscription, error) {
	if err := to.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.SubscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, notFound(entitySubscription, id)
	}
	if err := s.authorize(ctx, entitySubscription, ActionUpdate, sub.UserID); err != nil {
		return nil, err
	}
	if !sub.SubscriptionStatus.CanTransition(to) {
		return nil, ierr.NewError("invalid subscription transition").
			WithHintf("A %s subscription cannot move to %s", sub.SubscriptionStatus, to).
			WithReportableDetails(map[string]any{
				"from": sub.SubscriptionStatus,
				"to":   to,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return s.SubscriptionRepo.UpdateStatus(ctx, id, to)
}

func (s *subscriptionService) Activate(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.UpdateStatus(ctx, id, types.SubscriptionStatusActive)
}

func (s *subscriptionService) Pause(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.UpdateStatus(ctx, id, types.SubscriptionStatusPaused)
}

func (s *subscriptionService) Cancel(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.UpdateStatus(ctx, id, types.SubscriptionStatusCancelled)
}

func (s *subscriptionService) Expire(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.UpdateStatus(ctx, id, types.SubscriptionStatusExpired)
}

// ExpireOverdue expires every active subscription whose period has lapsed
// and returns how many were expired. Failures on individual subscriptions
// stop the sweep; the next run picks up where it left off.
func (s *subscriptionService) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.SubscriptionRepo.ListExpiring(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, sub := range overdue {
		if !sub.SubscriptionStatus.CanTransition(types.SubscriptionStatusExpired) {
			continue
		}
		if _, err := s.SubscriptionRepo.UpdateStatus(ctx, sub.ID, types.SubscriptionStatusExpired); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}
