package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/octosolido/sales-api/internal/application/service"
	"github.com/octosolido/sales-api/internal/config"
	"github.com/octosolido/sales-api/internal/domain/entity"
	"github.com/octosolido/sales-api/internal/infrastructure/repository"
	"github.com/octosolido/sales-api/internal/postal"
	"github.com/octosolido/sales-api/internal/presentation/http/handler"
	"github.com/octosolido/sales-api/internal/presentation/http/routes"
	"github.com/octosolido/sales-api/pkg/renderer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories
	storeRepo := repository.NewMemoryStoreRepository()

	// Initialize external collaborators
	postalClient := postal.NewClient(cfg.Postal.BaseURL, cfg.Postal.CacheTTL)

	documentRenderer, err := renderer.NewRendererFromConfig(cfg.Renderer.Type, cfg.Renderer.BaseURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize renderer: %v", err)
		documentRenderer = renderer.NewNullRenderer()
	}

	company := entity.Company{
		Name:      cfg.Company.Name,
		LegalName: cfg.Company.LegalName,
		TaxID:     cfg.Company.TaxID,
	}

	// Initialize services
	storeService := service.NewStoreService(storeRepo)
	orderService := service.NewOrderService(storeRepo, company)
	splitService := service.NewSplitService()
	renderService := service.NewRenderService(documentRenderer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Store:    handler.NewStoreHandler(storeService),
		Order:    handler.NewOrderHandler(orderService),
		Split:    handler.NewSplitHandler(splitService),
		Postal:   handler.NewPostalHandler(postalClient),
		Document: handler.NewDocumentHandler(orderService, renderService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
