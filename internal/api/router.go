package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/stayloop/stayloop/internal/api/v1"
	"github.com/stayloop/stayloop/internal/auth"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/rbac"
	"github.com/stayloop/stayloop/internal/rest/middleware"
	"github.com/stayloop/stayloop/internal/service"
)

// Handlers groups every v1 handler for router assembly.
type Handlers struct {
	Auth          *v1.AuthHandler
	Tenant        *v1.TenantHandler
	Destination   *v1.DestinationHandler
	Tag           *v1.TagHandler
	Accommodation *v1.AccommodationHandler
	Event         *v1.EventHandler
	Booking       *v1.BookingHandler
	Subscription  *v1.SubscriptionHandler
	Invoice       *v1.InvoiceHandler
	Promotion     *v1.PromotionHandler
	Catalog       *v1.CatalogHandler
}

func NewHandlers(services Services, log *logger.Logger) Handlers {
	return Handlers{
		Auth:          v1.NewAuthHandler(services.Auth, log),
		Tenant:        v1.NewTenantHandler(services.Tenant, log),
		Destination:   v1.NewDestinationHandler(services.Destination, log),
		Tag:           v1.NewTagHandler(services.Tag, log),
		Accommodation: v1.NewAccommodationHandler(services.Accommodation, log),
		Event:         v1.NewEventHandler(services.Event, log),
		Booking:       v1.NewBookingHandler(services.Booking, log),
		Subscription:  v1.NewSubscriptionHandler(services.Subscription, log),
		Invoice:       v1.NewInvoiceHandler(services.Invoice, log),
		Promotion:     v1.NewPromotionHandler(services.Promotion, log),
		Catalog:       v1.NewCatalogHandler(services.Catalog, log),
	}
}

// Services groups the service layer for handler construction.
type Services struct {
	Auth          service.AuthService
	Tenant        service.TenantService
	Destination   service.DestinationService
	Tag           service.TagService
	Accommodation service.AccommodationService
	Event         service.EventService
	Booking       service.BookingService
	Subscription  service.SubscriptionService
	Invoice       service.InvoiceService
	Promotion     service.PromotionService
	Catalog       service.CatalogService
}

func NewServices(params service.ServiceParams) Services {
	return Services{
		Auth:          service.NewAuthService(params),
		Tenant:        service.NewTenantService(params),
		Destination:   service.NewDestinationService(params),
		Tag:           service.NewTagService(params),
		Accommodation: service.NewAccommodationService(params),
		Event:         service.NewEventService(params),
		Booking:       service.NewBookingService(params),
		Subscription:  service.NewSubscriptionService(params),
		Invoice:       service.NewInvoiceService(params),
		Promotion:     service.NewPromotionService(params),
		Catalog:       service.NewCatalogService(params),
	}
}

// NewRouter assembles the gin engine: public auth and browse routes, then
// authenticated v1 routes with route-level permission gates on admin-ish
// surfaces. Ownership checks stay in the service layer.
func NewRouter(
	handlers Handlers,
	provider *auth.Provider,
	rbacService *rbac.Service,
	log *logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	perm := middleware.NewPermissionMiddleware(rbacService, log)

	public := router.Group("/v1")
	public.Use(middleware.GuestAuthenticateMiddleware)
	{
		public.POST("/auth/signup", handlers.Auth.SignUp)
		public.POST("/auth/login", handlers.Auth.Login)

		public.GET("/destinations", handlers.Destination.List)
		public.GET("/destinations/:id", handlers.Destination.Get)
		public.GET("/destinations/:id/events", handlers.Event.ListUpcoming)
		public.GET("/accommodations/search", handlers.Accommodation.Search)
	}

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(provider, log))
	{
		private.GET("/auth/me", handlers.Auth.Me)

		tenants := private.Group("/tenants")
		{
			tenants.POST("", perm.RequirePermission("tenant", "create"), handlers.Tenant.Create)
			tenants.GET("", perm.RequirePermission("tenant", "read"), handlers.Tenant.List)
			tenants.GET("/:id", handlers.Tenant.Get)
		}

		destinations := private.Group("/destinations")
		{
			destinations.POST("", perm.RequirePermission("destination", "create"), handlers.Destination.Create)
			destinations.PUT("/:id", handlers.Destination.Update)
			destinations.DELETE("/:id", handlers.Destination.Delete)
			destinations.POST("/:id/restore", handlers.Destination.Restore)
		}

		tags := private.Group("/tags")
		{
			tags.POST("", perm.RequirePermission("tag", "create"), handlers.Tag.Create)
			tags.GET("", handlers.Tag.List)
			tags.GET("/:id", handlers.Tag.Get)
			tags.DELETE("/:id", handlers.Tag.Delete)
		}

		accommodations := private.Group("/accommodations")
		{
			accommodations.POST("", handlers.Accommodation.Create)
			accommodations.GET("", handlers.Accommodation.List)
			accommodations.GET("/:id", handlers.Accommodation.Get)
			accommodations.PUT("/:id", handlers.Accommodation.Update)
			accommodations.DELETE("/:id", handlers.Accommodation.Delete)
			accommodations.POST("/:id/restore", handlers.Accommodation.Restore)
			accommodations.PUT("/:id/tags", handlers.Accommodation.ReplaceTags)
			accommodations.GET("/:id/revenue", handlers.Booking.Revenue)
		}

		events := private.Group("/events")
		{
			events.POST("", perm.RequirePermission("event", "create"), handlers.Event.Create)
			events.GET("", handlers.Event.List)
			events.GET("/:id", handlers.Event.Get)
			events.DELETE("/:id", handlers.Event.Delete)
		}

		bookings := private.Group("/bookings")
		{
			bookings.POST("", handlers.Booking.Create)
			bookings.GET("", handlers.Booking.List)
			bookings.GET("/:id", handlers.Booking.Get)
			bookings.POST("/:id/confirm", handlers.Booking.Confirm)
			bookings.POST("/:id/complete", handlers.Booking.Complete)
			bookings.POST("/:id/cancel", handlers.Booking.Cancel)
			bookings.DELETE("/:id", handlers.Booking.Delete)
		}

		subscriptions := private.Group("/subscriptions")
		{
			subscriptions.POST("", handlers.Subscription.Create)
			subscriptions.GET("", handlers.Subscription.List)
			subscriptions.GET("/:id", handlers.Subscription.Get)
			subscriptions.PUT("/:id/status", handlers.Subscription.UpdateStatus)
			subscriptions.POST("/:id/cancel", handlers.Subscription.Cancel)
		}

		invoices := private.Group("/invoices")
		{
			invoices.POST("", perm.RequirePermission("invoice", "create"), handlers.Invoice.Create)
			invoices.GET("", handlers.Invoice.List)
			invoices.GET("/:id", handlers.Invoice.Get)
			invoices.POST("/:id/finalize", handlers.Invoice.Finalize)
			invoices.POST("/:id/void", handlers.Invoice.Void)
			invoices.POST("/:id/payments", handlers.Invoice.RecordPayment)
		}

		promotions := private.Group("/promotions")
		{
			promotions.POST("", perm.RequirePermission("promotion", "create"), handlers.Promotion.Create)
			promotions.GET("", handlers.Promotion.List)
			promotions.GET("/:id", handlers.Promotion.Get)
			promotions.POST("/redeem", handlers.Promotion.Redeem)
			promotions.DELETE("/:id", handlers.Promotion.Delete)
		}

		catalogs := private.Group("/catalogs")
		{
			catalogs.POST("", perm.RequirePermission("catalog", "create"), handlers.Catalog.Create)
			catalogs.GET("", handlers.Catalog.List)
			catalogs.GET("/:id", handlers.Catalog.Get)
			catalogs.POST("/price", handlers.Catalog.CalculatePrice)
			catalogs.DELETE("/:id", handlers.Catalog.Delete)
		}
	}

	return router
}
