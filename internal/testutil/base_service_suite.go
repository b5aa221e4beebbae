package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/auth"
	"github.com/stayloop/stayloop/internal/cache"
	"github.com/stayloop/stayloop/internal/config"
	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/domain/booking"
	"github.com/stayloop/stayloop/internal/domain/catalog"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/domain/event"
	"github.com/stayloop/stayloop/internal/domain/invoice"
	"github.com/stayloop/stayloop/internal/domain/promotion"
	"github.com/stayloop/stayloop/internal/domain/subscription"
	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/domain/tenant"
	"github.com/stayloop/stayloop/internal/domain/user"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/rbac"
	"github.com/stayloop/stayloop/internal/types"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	TenantRepo        tenant.Repository
	UserRepo          user.Repository
	DestinationRepo   destination.Repository
	TagRepo           tag.Repository
	AccommodationRepo accommodation.Repository
	EventRepo         event.Repository
	BookingRepo       booking.Repository
	SubscriptionRepo  subscription.Repository
	InvoiceRepo       invoice.Repository
	PromotionRepo     promotion.Repository
	CatalogRepo       catalog.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	rbac   *rbac.Service
	auth   *auth.Provider
	cache  cache.Cache
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	s.config = &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: "local"},
		Auth: config.AuthConfig{
			Secret:       "test-signing-secret",
			APIKeyHeader: "x-api-key",
		},
		Logging: config.LoggingConfig{Level: "info"},
	}

	var err error
	s.logger, err = logger.NewLogger(s.config.Logging.Level)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.rbac = rbac.NewServiceFromRoles(map[string]*rbac.Role{
		"admin": {
			Name: "Admin",
			Permissions: map[string][]string{
				"tenant":        {"create", "read", "update", "delete"},
				"user":          {"create", "read", "update", "delete"},
				"destination":   {"create", "read", "update", "delete"},
				"tag":           {"create", "read", "update", "delete"},
				"accommodation": {"create", "read", "update", "delete"},
				"event":         {"create", "read", "update", "delete"},
				"booking":       {"create", "read", "update", "delete"},
				"subscription":  {"create", "read", "update", "delete"},
				"invoice":       {"create", "read", "update", "delete"},
				"promotion":     {"create", "read", "update", "delete"},
				"catalog":       {"create", "read", "update", "delete"},
			},
		},
		"host": {
			Name: "Host",
			Permissions: map[string][]string{
				"destination":   {"read"},
				"tag":           {"read"},
				"accommodation": {"create", "read"},
				"event":         {"read"},
				"booking":       {"create", "read"},
				"subscription":  {"create", "read"},
				"promotion":     {"read"},
				"catalog":       {"read"},
			},
		},
	})
	s.auth = auth.NewProvider(s.config)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.cache = cache.NewInMemoryCache()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	destinations := NewInMemoryDestinationStore()
	tags := NewInMemoryTagStore()
	invoices := NewInMemoryInvoiceStore()

	s.stores = Stores{
		TenantRepo:        NewInMemoryTenantStore(),
		UserRepo:          NewInMemoryUserStore(),
		DestinationRepo:   destinations,
		TagRepo:           tags,
		AccommodationRepo: NewInMemoryAccommodationStore(destinations, tags),
		EventRepo:         NewInMemoryEventStore(),
		BookingRepo:       NewInMemoryBookingStore(invoices),
		SubscriptionRepo:  NewInMemorySubscriptionStore(),
		InvoiceRepo:       invoices,
		PromotionRepo:     NewInMemoryPromotionStore(),
		CatalogRepo:       NewInMemoryCatalogStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.TenantRepo.(*InMemoryTenantStore).Clear()
	s.stores.UserRepo.(*InMemoryUserStore).Clear()
	s.stores.DestinationRepo.(*InMemoryDestinationStore).Clear()
	s.stores.TagRepo.(*InMemoryTagStore).Clear()
	s.stores.AccommodationRepo.(*InMemoryAccommodationStore).Clear()
	s.stores.EventRepo.(*InMemoryEventStore).Clear()
	s.stores.BookingRepo.(*InMemoryBookingStore).Clear()
	s.stores.SubscriptionRepo.(*InMemorySubscriptionStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.PromotionRepo.(*InMemoryPromotionStore).Clear()
	s.stores.CatalogRepo.(*InMemoryCatalogStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext replaces the test context, e.g. to attach an actor.
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetRBAC returns the test role definitions
func (s *BaseServiceTestSuite) GetRBAC() *rbac.Service {
	return s.rbac
}

// GetAuth returns the test auth provider
func (s *BaseServiceTestSuite) GetAuth() *auth.Provider {
	return s.auth
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
