package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/catalog"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryCatalogStore is an in-memory implementation of catalog.Repository.
type InMemoryCatalogStore struct {
	*memoryStore[catalog.Catalog]
}

func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		memoryStore: newMemoryStore(
			func(c *catalog.Catalog) string { return c.ID },
			func(c *catalog.Catalog) *types.BaseModel { return &c.BaseModel },
			func(c *catalog.Catalog) map[string]any {
				return map[string]any{
					"id":            c.ID,
					"name":          c.Name,
					"pricing_model": c.PricingModel,
					"currency_code": c.CurrencyCode,
				}
			},
			func(c *catalog.Catalog, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						c.Name = v.(string)
					case "base_price":
						c.BasePrice = v.(decimal.Decimal)
					case "weekend_multiplier":
						c.WeekendMultiplier = v.(decimal.Decimal)
					}
				}
			},
		),
	}
}
