package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercadito/catalog-service/internal/api/handler"
	"github.com/mercadito/catalog-service/internal/api/middleware"
	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/service"
	mongodb "github.com/mercadito/catalog-service/internal/infrastructure/db/mongo"
	redisdb "github.com/mercadito/catalog-service/internal/infrastructure/db/redis"
)

// Options carries the router's runtime settings.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(accountRepo, throttle, opts.JWTSecret, opts.TokenTTL, log)
	accountService := service.NewAccountService(accountRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, accountRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, accountRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	authenticated := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/login", authHandler.Login)

	// --- Categories ---
	categories := e.Group("/categoria", authenticated)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Remove, adminOnly)

	// --- Products ---
	products := e.Group("/producto", authenticated)
	products.GET("", productHandler.List)
	products.GET("/buscar/:termino", productHandler.Search)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Retire, adminOnly)

	// --- Accounts ---
	accounts := e.Group("/usuario", authenticated)
	accounts.GET("", accountHandler.List)
	accounts.POST("", accountHandler.Create, adminOnly)
	accounts.PUT("/:id", accountHandler.Update, adminOnly)
	accounts.DELETE("/:id", accountHandler.Retire, adminOnly)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
