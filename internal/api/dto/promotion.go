package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreatePromotionRequest struct {
	Code           string                  `json:"code" validate:"required,max=64"`
	Name           string                  `json:"name" validate:"required,max=255"`
	Type           promotion.PromotionType `json:"type" validate:"required,oneof=fixed percentage"`
	AmountOff      *decimal.Decimal        `json:"amount_off,omitempty"`
	PercentageOff  *decimal.Decimal        `json:"percentage_off,omitempty"`
	CurrencyCode   *string                 `json:"currency_code,omitempty" validate:"omitempty,len=3"`
	RedeemAfter    *time.Time              `json:"redeem_after,omitempty"`
	RedeemBefore   *time.Time              `json:"redeem_before,omitempty"`
	MaxRedemptions *int                    `json:"max_redemptions,omitempty" validate:"omitempty,min=1"`
	Rules          promotion.Rules         `json:"rules,omitempty"`
}

func (r *CreatePromotionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	switch r.Type {
	case promotion.PromotionTypeFixed:
		if r.AmountOff == nil {
			return ierr.NewError("amount_off required").
				WithHint("Fixed promotions require amount_off").
				Mark(ierr.ErrValidation)
		}
	case promotion.PromotionTypePercentage:
		if r.PercentageOff == nil {
			return ierr.NewError("percentage_off required").
				WithHint("Percentage promotions require percentage_off").
				Mark(ierr.ErrValidation)
		}
		if r.PercentageOff.LessThan(decimal.Zero) || r.PercentageOff.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewError("percentage_off out of range").
				WithHint("percentage_off must be between 0 and 100").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreatePromotionRequest) ToPromotion(ctx context.Context) *promotion.Promotion {
	return &promotion.Promotion{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION),
		Code:           r.Code,
		Name:           r.Name,
		Type:           r.Type,
		AmountOff:      r.AmountOff,
		PercentageOff:  r.PercentageOff,
		CurrencyCode:   r.CurrencyCode,
		RedeemAfter:    r.RedeemAfter,
		RedeemBefore:   r.RedeemBefore,
		MaxRedemptions: r.MaxRedemptions,
		Rules:          r.Rules,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type RedeemPromotionRequest struct {
	Code         string          `json:"code" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	CurrencyCode string          `json:"currency_code" validate:"required,len=3"`
}

func (r *RedeemPromotionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RedeemPromotionResponse struct {
	PromotionID    string          `json:"promotion_id"`
	Code           string          `json:"code"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Discount       decimal.Decimal `json:"discount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

type PromotionResponse struct {
	*promotion.Promotion
}

type ListPromotionsResponse = types.ListResponse[*PromotionResponse]
