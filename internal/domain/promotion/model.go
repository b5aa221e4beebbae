package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// PromotionType determines how the discount is computed.
type PromotionType string

const (
	PromotionTypeFixed      PromotionType = "fixed"
	PromotionTypePercentage PromotionType = "percentage"
)

// Promotion is a discount code with an eligibility ruleset.
type Promotion struct {
	ID               string           `db:"id" json:"id"`
	Code             string           `db:"code" json:"code"`
	Name             string           `db:"name" json:"name"`
	Type             PromotionType    `db:"type" json:"type"`
	AmountOff        *decimal.Decimal `db:"amount_off" json:"amount_off,omitempty"`
	PercentageOff    *decimal.Decimal `db:"percentage_off" json:"percentage_off,omitempty"`
	CurrencyCode     *string          `db:"currency_code" json:"currency_code,omitempty"`
	RedeemAfter      *time.Time       `db:"redeem_after" json:"redeem_after,omitempty"`
	RedeemBefore     *time.Time       `db:"redeem_before" json:"redeem_before,omitempty"`
	MaxRedemptions   *int             `db:"max_redemptions" json:"max_redemptions,omitempty"`
	TotalRedemptions int              `db:"total_redemptions" json:"total_redemptions"`
	Rules            Rules            `db:"rules" json:"rules,omitempty"`

	types.BaseModel
}

// IsRedeemable checks the redemption window and the redemption cap.
// Rule eligibility against a purchase is a separate check.
func (p *Promotion) IsRedeemable(now time.Time) bool {
	if p.RedeemAfter != nil && now.Before(*p.RedeemAfter) {
		return false
	}
	if p.RedeemBefore != nil && now.After(*p.RedeemBefore) {
		return false
	}
	if p.MaxRedemptions != nil && p.TotalRedemptions >= *p.MaxRedemptions {
		return false
	}
	return true
}

// CalculateDiscount calculates the discount amount for a given price
func (p *Promotion) CalculateDiscount(originalPrice decimal.Decimal) decimal.Decimal {
	switch p.Type {
	case PromotionTypeFixed:
		if p.AmountOff == nil {
			return decimal.Zero
		}
		return *p.AmountOff
	case PromotionTypePercentage:
		if p.PercentageOff == nil {
			return decimal.Zero
		}
		return originalPrice.Mul(*p.PercentageOff).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
}

// ApplyDiscount applies the discount to a price, flooring at zero.
func (p *Promotion) ApplyDiscount(originalPrice decimal.Decimal) decimal.Decimal {
	finalPrice := originalPrice.Sub(p.CalculateDiscount(originalPrice))
	if finalPrice.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return finalPrice
}
