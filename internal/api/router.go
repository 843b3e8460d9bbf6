package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/profinder/marketplace-api/internal/api/handler"
	"github.com/profinder/marketplace-api/internal/api/middleware"
	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
	"github.com/profinder/marketplace-api/pkg/logger"
)

// Deps carries everything the router needs. Services come in as ports so the
// router never sees concrete implementations.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client

	Users     ports.UserService
	Auth      ports.AuthService
	Profiles  ports.ProfileService
	Catalog   ports.CatalogService
	Bookings  ports.BookingService
	Messaging ports.MessagingService

	JWTSecret string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users, deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	messagingHandler := handler.NewMessagingHandler(deps.Messaging)

	auth := middleware.Auth(deps.JWTSecret)
	providerOnly := middleware.RBAC(string(domain.UserTypeProvider))
	clientOnly := middleware.RBAC(string(domain.UserTypeClient))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password-reset", authHandler.RequestPasswordReset)
	e.POST("/auth/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public catalog browsing ---
	e.GET("/v1/categories", catalogHandler.ListCategories)
	e.GET("/v1/services", catalogHandler.SearchServices)
	e.GET("/v1/services/:id", catalogHandler.GetService)
	e.GET("/v1/providers/:user_id/profile", profileHandler.Get)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", auth)

	v1.GET("/users/:id", userHandler.Get)
	v1.GET("/users", userHandler.List)
	v1.PUT("/users/me", userHandler.UpdateMe)
	v1.DELETE("/users/me", userHandler.DeleteMe)

	v1.POST("/categories", catalogHandler.CreateCategory)
	v1.PUT("/categories/:id", catalogHandler.UpdateCategory)
	v1.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	v1.POST("/providers/profile", profileHandler.Create, providerOnly)
	v1.PUT("/providers/profile", profileHandler.UpdateMe, providerOnly)

	v1.POST("/services", catalogHandler.CreateService, providerOnly)
	v1.PUT("/services/:id", catalogHandler.UpdateService, providerOnly)
	v1.PATCH("/services/:id/active", catalogHandler.SetServiceActive, providerOnly)
	v1.DELETE("/services/:id", catalogHandler.DeleteService, providerOnly)

	v1.POST("/bookings", bookingHandler.Create, clientOnly)
	v1.GET("/bookings", bookingHandler.List)
	v1.GET("/bookings/:id", bookingHandler.Get)
	v1.PATCH("/bookings/:id/status", bookingHandler.Transition)

	v1.POST("/messages", messagingHandler.Send)
	v1.GET("/messages", messagingHandler.Inbox)
	v1.POST("/notifications", messagingHandler.Notify)
	v1.GET("/notifications", messagingHandler.Notifications)
	v1.PATCH("/notifications/:id/read", messagingHandler.MarkRead)

	return e
}
