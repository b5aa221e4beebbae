package repository

import (
	"github.com/stayloop/stayloop/internal/cache"
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
	pg "github.com/stayloop/stayloop/internal/postgres"
	repo "github.com/stayloop/stayloop/internal/repository/postgres"
)

func NewTenantRepository(db *pg.DB, log *logger.Logger) tenant.Repository {
	return repo.NewTenantRepository(db, log)
}

func NewUserRepository(db *pg.DB, log *logger.Logger, c cache.Cache) user.Repository {
	return repo.NewUserRepository(db, log, c)
}

func NewDestinationRepository(db *pg.DB, log *logger.Logger, c cache.Cache) destination.Repository {
	return repo.NewDestinationRepository(db, log, c)
}

func NewTagRepository(db *pg.DB, log *logger.Logger) tag.Repository {
	return repo.NewTagRepository(db, log)
}

func NewAccommodationRepository(
	db *pg.DB,
	log *logger.Logger,
	destinations destination.Repository,
	tags tag.Repository,
	c cache.Cache,
) accommodation.Repository {
	return repo.NewAccommodationRepository(db, log, destinations, tags, c)
}

func NewEventRepository(db *pg.DB, log *logger.Logger) event.Repository {
	return repo.NewEventRepository(db, log)
}

func NewBookingRepository(db *pg.DB, log *logger.Logger) booking.Repository {
	return repo.NewBookingRepository(db, log)
}

func NewSubscriptionRepository(db *pg.DB, log *logger.Logger) subscription.Repository {
	return repo.NewSubscriptionRepository(db, log)
}

func NewInvoiceRepository(db *pg.DB, log *logger.Logger) invoice.Repository {
	return repo.NewInvoiceRepository(db, log)
}

func NewPromotionRepository(db *pg.DB, log *logger.Logger) promotion.Repository {
	return repo.NewPromotionRepository(db, log)
}

func NewCatalogRepository(db *pg.DB, log *logger.Logger, c cache.Cache) catalog.Repository {
	return repo.NewCatalogRepository(db, log, c)
}
