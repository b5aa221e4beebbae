package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/catalog"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entityCatalog = "catalog"

var thousand = decimal.NewFromInt(1000)

type CatalogService interface {
	Create(ctx context.Context, req *dto.CreateCatalogRequest) (*catalog.Catalog, error)
	Get(ctx context.Context, id string) (*catalog.Catalog, error)
	List(ctx context.Context) ([]*catalog.Catalog, error)
	CalculatePrice(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error)
	Delete(ctx context.Context, id string) (int, error)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) Create(ctx context.Context, req *dto.CreateCatalogRequest) (*catalog.Catalog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityCatalog, ActionCreate, ""); err != nil {
		return nil, err
	}
	return s.CatalogRepo.Create(ctx, req.ToCatalog(ctx))
}

func (s *catalogService) Get(ctx context.Context, id string) (*catalog.Catalog, error) {
	c, err := s.CatalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(entityCatalog, id)
	}
	return c, nil
}

func (s *catalogService) List(ctx context.Context) ([]*catalog.Catalog, error) {
	return s.CatalogRepo.List(ctx, types.Filter{})
}

// CalculatePrice quotes a promoted-listing placement:
// flat charges the (possibly weekend-multiplied) base price once, cpm per
// thousand impressions, cpc per click.
func (s *catalogService) CalculatePrice(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CatalogRepo.GetByID(ctx, req.CatalogID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.IsDeleted() {
		return nil, notFound(entityCatalog, req.CatalogID)
	}

	rate := c.BasePrice
	if req.Weekend {
		rate = rate.Mul(c.WeekendMultiplier)
	}

	var price decimal.Decimal
	switch c.PricingModel {
	case types.PricingModelFlat:
		price = rate
	case types.PricingModelCPM:
		price = rate.Div(thousand).Mul(decimal.NewFromInt(req.Impressions))
	case types.PricingModelCPC:
		price = rate.Mul(decimal.NewFromInt(req.Clicks))
	default:
		return nil, ierr.NewError("unknown pricing model").
			WithHintf("Pricing model %q is not supported", c.PricingModel).
			Mark(ierr.ErrInvalidOperation)
	}

	return &dto.CalculatePriceResponse{
		CatalogID:    c.ID,
		Price:        price,
		CurrencyCode: c.CurrencyCode,
	}, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) (int, error) {
	c, err := s.CatalogRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, notFound(entityCatalog, id)
	}
	if err := s.authorize(ctx, entityCatalog, ActionDelete, c.CreatedBy); err != nil {
		return 0, err
	}
	if c.IsDeleted() {
		return 0, nil
	}
	return s.CatalogRepo.SoftDelete(ctx, types.ByID(id))
}
