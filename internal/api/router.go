package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backoffice/user-management-api/internal/api/handler"
	"github.com/backoffice/user-management-api/internal/api/middleware"
	"github.com/backoffice/user-management-api/internal/core/domain"
	"github.com/backoffice/user-management-api/internal/core/ports"
	"github.com/backoffice/user-management-api/internal/core/service"
	mongodb "github.com/backoffice/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/backoffice/user-management-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the dependencies the router wires together. Catalog is
// loaded by the caller before the router is built.
type RouterConfig struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Catalog   ports.RoleCatalog
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(cfg.DB)
	userService := service.NewUserService(userRepo, cfg.Catalog, cfg.Logger)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(cfg.Catalog)

	authMW := middleware.Auth(cfg.JWTSecret, redisdb.NewTokenDenylist(cfg.Redis), cfg.Logger)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleReviewer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- User management routes (authorization precedes validation) ---
	users := e.Group("/users", authMW)
	users.GET("", userHandler.List, staffOnly)
	users.GET("/:id", userHandler.Get, staffOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.PATCH("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Authenticated-caller routes (no role restriction) ---
	e.GET("/user-authenticated", userHandler.Authenticated, authMW)
	e.GET("/get-roles", roleHandler.GetRoles, authMW)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
