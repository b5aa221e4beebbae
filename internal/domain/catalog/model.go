package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Catalog is a rate card for promoted-listing placements: how much a host
// pays to feature a listing, per the catalog's pricing model.
type Catalog struct {
	ID                string             `db:"id" json:"id"`
	Name              string             `db:"name" json:"name"`
	PricingModel      types.PricingModel `db:"pricing_model" json:"pricing_model"`
	BasePrice         decimal.Decimal    `db:"base_price" json:"base_price"`
	WeekendMultiplier decimal.Decimal    `db:"weekend_multiplier" json:"weekend_multiplier"`
	CurrencyCode      string             `db:"currency_code" json:"currency_code"`

	types.BaseModel
}
