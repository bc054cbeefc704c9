package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Samhr4577/finance-sparkle-16/internal/auth"
	"github.com/Samhr4577/finance-sparkle-16/internal/config"
	"github.com/Samhr4577/finance-sparkle-16/internal/database"
	"github.com/Samhr4577/finance-sparkle-16/internal/handlers"
	"github.com/Samhr4577/finance-sparkle-16/internal/logger"
	"github.com/Samhr4577/finance-sparkle-16/internal/middleware"
	"github.com/Samhr4577/finance-sparkle-16/internal/notify"
	"github.com/Samhr4577/finance-sparkle-16/internal/persistence"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
	"github.com/Samhr4577/finance-sparkle-16/internal/validator"
)

// @title           Finance Sparkle API
// @version         1.0
// @description     Personal finance tracking backend: record transactions, organize them by category, and read aggregated dashboards and reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	adapter, err := buildAdapter(appConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	notifier := notify.NewLog(log)
	financeStore := store.New(adapter, notifier, store.WithPersistTimeout(appConfig.PersistTimeout))
	financeStore.LoadAll(context.Background())

	authService, err := auth.NewService(auth.Credential{
		User: auth.User{
			ID:    "1",
			Email: appConfig.DemoEmail,
			Name:  appConfig.DemoName,
		},
		Password: appConfig.DemoPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(financeStore)
	categoryHandler := handlers.NewCategoryHandler(financeStore)
	reportHandler := handlers.NewReportHandler(financeStore)
	adminHandler := handlers.NewAdminHandler(financeStore)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category registry routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:type", categoryHandler.GetCategoriesByType)
	categories.PUT("/:type/:name", categoryHandler.RenameCategory)
	categories.DELETE("/:type/:name", categoryHandler.DeleteCategory)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/recent", reportHandler.GetRecent)
	reports.GET("/category-totals", reportHandler.GetCategoryTotals)
	reports.GET("/range", reportHandler.GetRange)

	// Maintenance routes
	protected.POST("/admin/reset", adminHandler.Reset)

	log.Infof("Starting Finance Sparkle backend server on port %s", appConfig.Port)
	log.Infof("Persistence driver: %s", appConfig.PersistenceDriver)
	return router.Run(":" + appConfig.Port)
}

// buildAdapter constructs the persistence backend selected by configuration.
func buildAdapter(cfg *config.Config) (persistence.Adapter, error) {
	switch cfg.PersistenceDriver {
	case config.DriverSnapshot:
		return persistence.NewSnapshotAdapter(cfg.SnapshotPath), nil
	case config.DriverDatabase:
		manager, err := database.NewManager(database.NewConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := manager.RunMigrations(); err != nil {
			return nil, err
		}
		return persistence.NewDatabaseAdapter(manager.DB()), nil
	case config.DriverREST:
		if cfg.RESTBaseURL == "" {
			return nil, fmt.Errorf("REST_BASE_URL is required for the rest driver")
		}
		return persistence.NewRESTAdapter(cfg.RESTBaseURL, cfg.RESTAPIKey, cfg.PersistTimeout), nil
	default:
		return nil, fmt.Errorf("unknown persistence driver %q", cfg.PersistenceDriver)
	}
}
