package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Samhr4577/finance-sparkle-16/internal/auth"
	"github.com/Samhr4577/finance-sparkle-16/internal/handlers"
	"github.com/Samhr4577/finance-sparkle-16/internal/logger"
	"github.com/Samhr4577/finance-sparkle-16/internal/middleware"
	"github.com/Samhr4577/finance-sparkle-16/internal/notify"
	"github.com/Samhr4577/finance-sparkle-16/internal/persistence"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
	"github.com/Samhr4577/finance-sparkle-16/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store        *store.Store
	SnapshotPath string
	Router       *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by a snapshot file in a
// temporary directory.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppAt(t, filepath.Join(t.TempDir(), "finance-store.json"))
}

// setupAppAt builds the stack over a specific snapshot path, so tests can
// simulate a restart against existing data.
func setupAppAt(t *testing.T, snapshotPath string) *testApp {
	t.Helper()

	adapter := persistence.NewSnapshotAdapter(snapshotPath)

	financeStore := store.New(adapter, notify.NewLog(logger.Get()))
	financeStore.LoadAll(context.Background())

	authService, err := auth.NewService(auth.Credential{
		User:     auth.User{ID: "1", Email: "user@example.com", Name: "Demo User"},
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("failed to initialize auth: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(financeStore)
	categoryHandler := handlers.NewCategoryHandler(financeStore)
	reportHandler := handlers.NewReportHandler(financeStore)
	adminHandler := handlers.NewAdminHandler(financeStore)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:type", categoryHandler.GetCategoriesByType)
	categories.PUT("/:type/:name", categoryHandler.RenameCategory)
	categories.DELETE("/:type/:name", categoryHandler.DeleteCategory)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/recent", reportHandler.GetRecent)
	reports.GET("/category-totals", reportHandler.GetCategoryTotals)
	reports.GET("/range", reportHandler.GetRange)

	protected.POST("/admin/reset", adminHandler.Reset)

	return &testApp{Store: financeStore, SnapshotPath: snapshotPath, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// loginUser logs in the demo account and returns the token.
func (app *testApp) loginUser(t *testing.T) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"user@example.com","password":"password123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}
