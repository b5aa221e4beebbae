package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/stayloop/stayloop/internal/api"
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
	"github.com/stayloop/stayloop/internal/repository"
	"github.com/stayloop/stayloop/internal/service"
)

func init() {
	// All timestamps are stored and compared in UTC.
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			func(cfg *config.Configuration) (*logger.Logger, error) {
				return logger.NewLogger(cfg.Logging.Level)
			},
			postgres.NewDB,
			func() cache.Cache { return cache.NewInMemoryCache() },
			rbac.NewService,
			auth.NewProvider,

			repository.NewTenantRepository,
			repository.NewUserRepository,
			repository.NewDestinationRepository,
			repository.NewTagRepository,
			repository.NewAccommodationRepository,
			repository.NewEventRepository,
			repository.NewBookingRepository,
			repository.NewSubscriptionRepository,
			repository.NewInvoiceRepository,
			repository.NewPromotionRepository,
			repository.NewCatalogRepository,

			newServiceParams,
			api.NewServices,
			api.NewHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

type appParams struct {
	fx.In

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

func newServiceParams(p appParams) service.ServiceParams {
	return service.ServiceParams{
		Logger:            p.Logger,
		Config:            p.Config,
		DB:                p.DB,
		Cache:             p.Cache,
		RBAC:              p.RBAC,
		Auth:              p.Auth,
		TenantRepo:        p.TenantRepo,
		UserRepo:          p.UserRepo,
		DestinationRepo:   p.DestinationRepo,
		TagRepo:           p.TagRepo,
		AccommodationRepo: p.AccommodationRepo,
		EventRepo:         p.EventRepo,
		BookingRepo:       p.BookingRepo,
		SubscriptionRepo:  p.SubscriptionRepo,
		InvoiceRepo:       p.InvoiceRepo,
		PromotionRepo:     p.PromotionRepo,
		CatalogRepo:       p.CatalogRepo,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			db.Close()
			return nil
		},
	})
}
