package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCatalogService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *CatalogServiceSuite) seedCatalog(model types.PricingModel, base float64, weekend float64) string {
	c, err := s.service.Create(s.GetContext(), &dto.CreateCatalogRequest{
		Name:              "Featured placement",
		PricingModel:      model,
		BasePrice:         decimal.NewFromFloat(base),
		WeekendMultiplier: decimal.NewFromFloat(weekend),
		CurrencyCode:      "eur",
	})
	s.Require().NoError(err)
	return c.ID
}

func (s *CatalogServiceSuite) TestCreateDefaultsWeekendMultiplier() {
	id := s.seedCatalog(types.PricingModelFlat, 50, 0)

	c, err := s.service.Get(s.GetContext(), id)
	s.NoError(err)
	s.True(c.WeekendMultiplier.Equal(decimal.NewFromInt(1)), "got %s", c.WeekendMultiplier)
}

func (s *CatalogServiceSuite) TestFlatPrice() {
	id := s.seedCatalog(types.PricingModelFlat, 50, 2)

	resp, err := s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{CatalogID: id})
	s.NoError(err)
	s.True(resp.Price.Equal(decimal.NewFromInt(50)), "got %s", resp.Price)

	resp, err = s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{CatalogID: id, Weekend: true})
	s.NoError(err)
	s.True(resp.Price.Equal(decimal.NewFromInt(100)), "got %s", resp.Price)
}

func (s *CatalogServiceSuite) TestCPMPrice() {
	id := s.seedCatalog(types.PricingModelCPM, 10, 1.5)

	// Weekday: 10 per thousand over 10000 impressions.
	resp, err := s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{
		CatalogID:   id,
		Impressions: 10000,
	})
	s.NoError(err)
	s.True(resp.Price.Equal(decimal.NewFromInt(100)), "got %s", resp.Price)

	// Weekend: (10 * 1.5) / 1000 * 10000 = 150.
	resp, err = s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{
		CatalogID:   id,
		Impressions: 10000,
		Weekend:     true,
	})
	s.NoError(err)
	s.True(resp.Price.Equal(decimal.NewFromInt(150)), "got %s", resp.Price)
}

func (s *CatalogServiceSuite) TestCPCPrice() {
	id := s.seedCatalog(types.PricingModelCPC, 0.5, 1)

	resp, err := s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{
		CatalogID: id,
		Clicks:    40,
	})
	s.NoError(err)
	s.True(resp.Price.Equal(decimal.NewFromInt(20)), "got %s", resp.Price)
}

func (s *CatalogServiceSuite) TestCalculatePriceUnknownCatalog() {
	_, err := s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{CatalogID: "catalog_missing"})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CatalogServiceSuite) TestDeleteIdempotent() {
	id := s.seedCatalog(types.PricingModelFlat, 50, 1)

	n, err := s.service.Delete(s.GetContext(), id)
	s.NoError(err)
	s.Equal(1, n)

	n, err = s.service.Delete(s.GetContext(), id)
	s.NoError(err)
	s.Equal(0, n)

	// Deleted catalogs cannot price placements.
	_, err = s.service.CalculatePrice(s.GetContext(), &dto.CalculatePriceRequest{CatalogID: id})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
