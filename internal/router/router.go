package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tastebook/backend/internal/api"
	"github.com/tastebook/backend/internal/middleware"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth       *api.AuthHandler
	Ingredient *api.IngredientHandler
	Recipe     *api.RecipeHandler
	Account    *api.AccountHandler
}

// SetupRouter configures the application routes. rateLimiter may be nil
// when Redis is not available (tests).
func SetupRouter(h Handlers, validator middleware.TokenValidator, rateLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")

	// Public routes
	h.Auth.RegisterRoutes(v1)
	h.Recipe.RegisterPublicRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	if rateLimiter != nil {
		protected.Use(rateLimiter.Middleware())
	}
	h.Ingredient.RegisterRoutes(protected)
	h.Recipe.RegisterRoutes(protected)
	h.Account.RegisterRoutes(protected)

	return router
}
