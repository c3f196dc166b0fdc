package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastebook/backend/config"
	"github.com/tastebook/backend/internal/api"
	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/router"
	"github.com/tastebook/backend/internal/service"
)

// DefaultRateLimit allows 120 mutating requests per user per minute.
var DefaultRateLimit = middleware.RateLimitConfig{
	Window:    time.Minute,
	Limit:     120,
	KeyPrefix: "ratelimit",
}

// Server represents the HTTP server
type Server struct {
	http *http.Server
}

// New wires the services, handlers and routes together.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3cfg *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Ingredient: api.NewIngredientHandler(service.NewIngredientService(db)),
		Recipe: api.NewRecipeHandler(
			service.NewRecipeService(db),
			service.NewMarkService(db),
			service.NewImageService(s3cfg),
		),
		Account: api.NewAccountHandler(service.NewAccountService(db)),
	}

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, DefaultRateLimit)
	}

	engine := router.SetupRouter(handlers, authService, rateLimiter)

	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
