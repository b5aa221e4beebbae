package service

import (
	"github.com/stayloop/stayloop/internal/testutil"
)

// newTestParams wires the in-memory stores and test infrastructure into the
// shared service dependency bundle.
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger: s.GetLogger(),
		Config: s.GetConfig(),
		Cache:  s.GetCache(),
		RBAC:   s.GetRBAC(),
		Auth:   s.GetAuth(),

		TenantRepo:        stores.TenantRepo,
		UserRepo:          stores.UserRepo,
		DestinationRepo:   stores.DestinationRepo,
		TagRepo:           stores.TagRepo,
		AccommodationRepo: stores.AccommodationRepo,
		EventRepo:         stores.EventRepo,
		BookingRepo:       stores.BookingRepo,
		SubscriptionRepo:  stores.SubscriptionRepo,
		InvoiceRepo:       stores.InvoiceRepo,
		PromotionRepo:     stores.PromotionRepo,
		CatalogRepo:       stores.CatalogRepo,
	}
}
