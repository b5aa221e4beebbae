package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/catalog"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateCatalogRequest struct {
	Name              string             `json:"name" validate:"required,max=255"`
	PricingModel      types.PricingModel `json:"pricing_model" validate:"required"`
	BasePrice         decimal.Decimal    `json:"base_price" validate:"required"`
	WeekendMultiplier decimal.Decimal    `json:"weekend_multiplier"`
	CurrencyCode      string             `json:"currency_code" validate:"required,len=3"`
}

func (r *CreateCatalogRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PricingModel.Validate()
}

func (r *CreateCatalogRequest) ToCatalog(ctx context.Context) *catalog.Catalog {
	multiplier := r.WeekendMultiplier
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	return &catalog.Catalog{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATALOG),
		Name:              r.Name,
		PricingModel:      r.PricingModel,
		BasePrice:         r.BasePrice,
		WeekendMultiplier: multiplier,
		CurrencyCode:      r.CurrencyCode,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

type CalculatePriceRequest struct {
	CatalogID   string `json:"catalog_id" validate:"required"`
	Impressions int64  `json:"impressions" validate:"min=0"`
	Clicks      int64  `json:"clicks" validate:"min=0"`
	Weekend     bool   `json:"weekend"`
}

func (r *CalculatePriceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CalculatePriceResponse struct {
	CatalogID    string          `json:"catalog_id"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code"`
}

type CatalogResponse struct {
	*catalog.Catalog
}

type ListCatalogsResponse = types.ListResponse[*CatalogResponse]
