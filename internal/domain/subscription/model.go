package subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Subscription is a host's recurring plan for listing on the platform.
type Subscription struct {
	ID                 string                   `db:"id" json:"id"`
	UserID             string                   `db:"user_id" json:"user_id"`
	PlanKey            string                   `db:"plan_key" json:"plan_key"`
	SubscriptionStatus types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`
	Amount             decimal.Decimal          `db:"amount" json:"amount"`
	CurrencyCode       string                   `db:"currency_code" json:"currency_code"`
	CurrentPeriodStart time.Time                `db:"current_period_start" json:"current_period_start"`
	CurrentPeriodEnd   time.Time                `db:"current_period_end" json:"current_period_end"`
	CancelledAt        *time.Time               `db:"cancelled_at" json:"cancelled_at,omitempty"`

	types.BaseModel
}
