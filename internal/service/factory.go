package service

import (
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
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/rbac"
)

// ServiceParams bundles the shared infrastructure and every repository so
// service constructors take one argument and stay stable as dependencies
// grow.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     *postgres.DB
	Cache  cache.Cache
	RBAC   *rbac.Service
	Auth   *auth.Provider

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
