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

	_ "github.com/internship/user-service/docs"
	"github.com/internship/user-service/internal/api/handler"
	"github.com/internship/user-service/internal/api/middleware"
	"github.com/internship/user-service/internal/core/service"
	mongorepo "github.com/internship/user-service/internal/infrastructure/db/mongo"
	rediscache "github.com/internship/user-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	cardRepo := mongorepo.NewCardRepository(db)
	cache := rediscache.NewCache(rdb, cacheTTL)

	userService := service.NewUserService(userRepo, cardRepo, cache, log)
	cardService := service.NewCardService(cardRepo, userRepo, cache, log)

	userHandler := handler.NewUserHandler(userService)
	cardHandler := handler.NewCardHandler(cardService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- User routes (bearer token required) ---
	users := e.Group("/api/users", authMiddleware)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.GetByIDs)
	users.GET("/all", userHandler.GetAll)
	users.GET("/by-email", userHandler.GetByEmail)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Card routes (bearer token required) ---
	cards := e.Group("/api/cards", authMiddleware)
	cards.POST("", cardHandler.Create)
	cards.GET("", cardHandler.GetByIDs)
	cards.GET("/by-user/:userId", cardHandler.GetByUser)
	cards.GET("/:id", cardHandler.GetByID)
	cards.PUT("/:id", cardHandler.Update)
	cards.DELETE("/:id", cardHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
