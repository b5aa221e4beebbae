package service

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entityPromotion = "promotion"

type PromotionService interface {
	Create(ctx context.Context, req *dto.CreatePromotionRequest) (*promotion.Promotion, error)
	Get(ctx context.Context, id string) (*promotion.Promotion, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*promotion.Promotion], error)
	Redeem(ctx context.Context, req *dto.RedeemPromotionRequest) (*dto.RedeemPromotionResponse, error)
	Delete(ctx context.Context, id string) (int, error)
}

type promotionService struct {
	ServiceParams
}

func NewPromotionService(params ServiceParams) PromotionService {
	return &promotionService{ServiceParams: params}
}

func (s *promotionService) Create(ctx context.Context, req *dto.CreatePromotionRequest) (*promotion.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityPromotion, ActionCreate, ""); err != nil {
		return nil, err
	}

	existing, err := s.PromotionRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("promotion code taken").
			WithHintf("A promotion with code %q already exists", req.Code).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.PromotionRepo.Create(ctx, req.ToPromotion(ctx))
}

func (s *promotionService) Get(ctx context.Context, id string) (*promotion.Promotion, error) {
	p, err := s.PromotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound(entityPromotion, id)
	}
	return p, nil
}

func (s *promotionService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*promotion.Promotion], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.PromotionRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

// Redeem checks the redemption window, cap, currency binding and eligibility
// rules against the purchase, then records the redemption and returns the
// discounted amount.
func (s *promotionService) Redeem(ctx context.Context, req *dto.RedeemPromotionRequest) (*dto.RedeemPromotionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	promo, err := s.PromotionRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, notFound(entityPromotion, req.Code)
	}
	if !promo.IsRedeemable(time.Now().UTC()) {
		return nil, ierr.NewError("promotion not redeemable").
			WithHintf("Promotion %q is outside its redemption window or fully redeemed", req.Code).
			Mark(ierr.ErrInvalidOperation)
	}
	if promo.CurrencyCode != nil && *promo.CurrencyCode != req.CurrencyCode {
		return nil, ierr.NewError("currency mismatch").
			WithHintf("Promotion %q only applies to %s purchases", req.Code, *promo.CurrencyCode).
			Mark(ierr.ErrInvalidOperation)
	}

	if ok, reason := promo.Rules.Eval(promotion.Purchase{
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ActorID:      types.GetUserID(ctx),
	}); !ok {
		return nil, ierr.NewError("promotion not eligible").
			WithHint(reason).
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.PromotionRepo.IncrementRedemptions(ctx, promo.ID); err != nil {
		return nil, err
	}

	final := promo.ApplyDiscount(req.Amount)
	return &dto.RedeemPromotionResponse{
		PromotionID:    promo.ID,
		Code:           promo.Code,
		OriginalAmount: req.Amount,
		Discount:       req.Amount.Sub(final),
		FinalAmount:    final,
	}, nil
}

func (s *promotionService) Delete(ctx context.Context, id string) (int, error) {
	p, err := s.PromotionRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, notFound(entityPromotion, id)
	}
	if err := s.authorize(ctx, entityPromotion, ActionDelete, p.CreatedBy); err != nil {
		return 0, err
	}
	if p.IsDeleted() {
		return 0, nil
	}
	return s.PromotionRepo.SoftDelete(ctx, types.ByID(id))
}
