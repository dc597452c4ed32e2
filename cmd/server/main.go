package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/clients"
	"storefront/internal/delivery"
	"storefront/internal/middleware"
	"storefront/internal/render"
	"storefront/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	bootLogger := logrus.New()
	bootLogger.SetFormatter(&logrus.JSONFormatter{})
	cfg := config.LoadConfig(bootLogger)

	logger := cfg.NewLogger()
	logger.Info("Starting Storefront...")
	logger.Infof("Catalog API target: %s", cfg.CatalogAPIURL)

	sortOpts, err := usecase.NewSortOptions(cfg.SortLocale, cfg.PriceSortParsing == config.PriceSortThousands)
	if err != nil {
		logger.Fatalf("FATAL: Invalid sort configuration: %v", err)
	}

	// --- Dependency Injection ---
	catalogClient := clients.NewCatalogHTTPClient(cfg.CatalogAPIURL, cfg.HTTPClientTimeout, logger)
	storefront := usecase.NewStorefrontUseCase(catalogClient, sortOpts, logger)

	renderer, err := render.New()
	if err != nil {
		logger.Fatalf("FATAL: Failed to load page templates: %v", err)
	}

	// A failed initial load leaves an empty catalog; the page still serves.
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.HTTPClientTimeout+time.Second)
	if err := storefront.LoadProducts(loadCtx); err != nil {
		logger.Warnf("Initial catalog load failed, serving empty storefront: %v", err)
	}
	cancel()

	storefrontHandler := delivery.NewStorefrontHandler(storefront, renderer, logger)
	apiHandler := delivery.NewAPIHandler(storefront, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "products": len(storefront.Products())})
	})
	storefrontHandler.RegisterRoutes(router)
	apiHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Storefront listening on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start Storefront: %v", err)
		os.Exit(1)
	}
}

