package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/config"
	"github.com/octosolido/sales-api/internal/presentation/http/handler"
	"github.com/octosolido/sales-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Store    *handler.StoreHandler
	Order    *handler.OrderHandler
	Split    *handler.SplitHandler
	Postal   *handler.PostalHandler
	Document *handler.DocumentHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Per-client rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	v1.Use(rateLimiter.Middleware())

	registerStoreRoutes(v1, h)
	registerOrderRoutes(v1, h)
	registerPostalRoutes(v1, h)
	registerDocumentRoutes(v1, h)

	return router
}

func registerStoreRoutes(v1 *gin.RouterGroup, h *Handlers) {
	stores := v1.Group("/stores")
	{
		stores.GET("", h.Store.List)
		stores.GET("/:id", h.Store.Get)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.POST("/validate", h.Order.Validate)
		orders.POST("/preview", h.Order.Preview)
		orders.POST("/split", h.Split.Apply)
	}
}

func registerPostalRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/postal-codes/:code", h.Postal.Lookup)
}

func registerDocumentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	documents := v1.Group("/documents")
	{
		documents.POST("", h.Document.Create)
		documents.GET("/:id", h.Document.Get)
		documents.GET("/:id/download", h.Document.Download)
		documents.DELETE("/:id", h.Document.Delete)
	}
}
