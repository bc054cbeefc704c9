package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Samhr4577/finance-sparkle-16/internal/handlers"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
	"github.com/Samhr4577/finance-sparkle-16/internal/testutil"
	"github.com/Samhr4577/finance-sparkle-16/internal/validator"
)

// setupRouter wires the API routes over a fresh in-memory store, without
// the auth middleware so handlers can be exercised directly.
func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Register()

	s, _, _ := testutil.SetupTestStore(t)

	txnHandler := handlers.NewTransactionHandler(s)
	catHandler := handlers.NewCategoryHandler(s)
	reportHandler := handlers.NewReportHandler(s)
	adminHandler := handlers.NewAdminHandler(s)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/transactions", txnHandler.CreateTransaction)
		api.GET("/transactions", txnHandler.ListTransactions)
		api.GET("/transactions/:id", txnHandler.GetTransactionByID)
		api.PUT("/transactions/:id", txnHandler.UpdateTransaction)
		api.DELETE("/transactions/:id", txnHandler.DeleteTransaction)

		api.GET("/categories", catHandler.GetCategories)
		api.POST("/categories", catHandler.CreateCategory)
		api.GET("/categories/:type", catHandler.GetCategoriesByType)
		api.PUT("/categories/:type/:name", catHandler.RenameCategory)
		api.DELETE("/categories/:type/:name", catHandler.DeleteCategory)

		api.GET("/reports/summary", reportHandler.GetSummary)
		api.GET("/reports/recent", reportHandler.GetRecent)
		api.GET("/reports/category-totals", reportHandler.GetCategoryTotals)
		api.GET("/reports/range", reportHandler.GetRange)

		api.POST("/admin/reset", adminHandler.Reset)
	}
	return r, s
}

// performRequest runs one request through the router and returns the
// recorded response.
func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// newAuthedRequest builds a request carrying a bearer token.
func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// serve runs the request through the router.
func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// assertErrorCode checks the error payload shape and code.
func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Errorf("expected status %d, got %d: %s", wantStatus, w.Code, w.Body.String())
	}
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error.Code != wantCode {
		t.Errorf("expected error code %s, got %s", wantCode, resp.Error.Code)
	}
}
