package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/subscription"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateSubscriptionRequest struct {
	UserID       string          `json:"user_id" validate:"required"`
	PlanKey      string          `json:"plan_key" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	CurrencyCode string          `json:"currency_code" validate:"required,len=3"`
	PeriodDays   int             `json:"period_days" validate:"required,min=1"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateSubscriptionRequest) ToSubscription(ctx context.Context) *subscription.Subscription {
	now := time.Now().UTC()
	return &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		UserID:             r.UserID,
		PlanKey:            r.PlanKey,
		SubscriptionStatus: types.SubscriptionStatusPending,
		Amount:             r.Amount,
		CurrencyCode:       r.CurrencyCode,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(0, 0, r.PeriodDays),
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
}

type UpdateSubscriptionStatusRequest struct {
	Status types.SubscriptionStatus `json:"status" validate:"required"`
}

func (r *UpdateSubscriptionStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

type SubscriptionResponse struct {
	*subscription.Subscription
}

type ListSubscriptionsResponse = types.ListResponse[*SubscriptionResponse]
