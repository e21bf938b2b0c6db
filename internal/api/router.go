package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinetrack/favorites-api/internal/api/handler"
	"github.com/cinetrack/favorites-api/internal/api/middleware"
	"github.com/cinetrack/favorites-api/internal/core/service"
	"github.com/cinetrack/favorites-api/internal/infrastructure/catalog"
	"github.com/cinetrack/favorites-api/internal/infrastructure/config"
	mongodb "github.com/cinetrack/favorites-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cinetrack/favorites-api/internal/infrastructure/db/redis"
	"github.com/cinetrack/favorites-api/internal/infrastructure/http/handlers"
	"github.com/cinetrack/favorites-api/internal/pkg/password"
	"github.com/cinetrack/favorites-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cinetrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieCache := redisdb.NewMovieCache(rdb, cfg.Catalog.CacheTTL)
	catalogClient := catalog.NewCachedClient(
		catalog.NewClient(catalog.Config{
			BaseURL: cfg.Catalog.BaseURL,
			APIKey:  cfg.Catalog.APIKey,
			Timeout: cfg.Catalog.Timeout,
		}),
		movieCache,
		log,
	)

	codec := token.NewCodec(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, password.NewHasher(), codec, cfg.TokenTTL, log)
	favoritesService := service.NewFavoritesService(userRepo, catalogClient, log)

	authHandler := handler.NewAuthHandler(authService)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService)
	session := middleware.Session(codec)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, session)

	// --- Favourites routes (session-protected) ---
	e.GET("/favourites", favoritesHandler.List, session)
	e.POST("/favourites", favoritesHandler.Add, session)
	e.DELETE("/favourites/:itemId", favoritesHandler.Remove, session)

	// --- Operational surface (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
