package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mangesh636/rbac-backend/internal/api/handler"
	"github.com/Mangesh636/rbac-backend/internal/api/middleware"
	"github.com/Mangesh636/rbac-backend/internal/core/domain"
	"github.com/Mangesh636/rbac-backend/internal/core/ports"
	"github.com/Mangesh636/rbac-backend/internal/core/service"
	healthhandlers "github.com/Mangesh636/rbac-backend/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The repository and signing secret are injected once here; nothing reaches
// into ambient globals mid-request.
func NewRouter(db *mongo.Database, repo ports.AuthRepository, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rbac"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(jwtSecret)
	authService := service.NewAuthService(repo, service.NewPasswordHasher(), tokenService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(log)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected tiered routes ---
	e.GET("/admin", userHandler.Admin,
		authMiddleware, middleware.RBAC(domain.RoleAdmin))
	e.GET("/manager", userHandler.Manager,
		authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	e.GET("/user", userHandler.User,
		authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleManager, domain.RoleUser))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if db != nil {
		healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)
		e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is Mongo up?
	}

	return e
}
