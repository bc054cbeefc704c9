package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/testutil"
)

func TestCreateTransactionEndpoint(t *testing.T) {
	t.Run("valid_request", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPost, "/api/v1/transactions", map[string]interface{}{
			"amount":      42.50,
			"description": "Groceries",
			"category":    "Food",
			"date":        "2024-01-15",
			"type":        "expense",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Transaction models.Transaction `json:"transaction"`
		}
		decodeBody(t, w, &resp)
		if resp.Transaction.ID == "" {
			t.Error("expected server-assigned ID")
		}
		if resp.Transaction.Amount != 42.50 || resp.Transaction.Date != "2024-01-15" {
			t.Errorf("unexpected transaction %+v", resp.Transaction)
		}
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPost, "/api/v1/transactions", map[string]interface{}{
			"amount":      0,
			"description": "Groceries",
			"category":    "Food",
			"date":        "2024-01-15",
			"type":        "expense",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPost, "/api/v1/transactions", map[string]interface{}{
			"amount":      -5,
			"description": "Groceries",
			"category":    "Food",
			"date":        "2024-01-15",
			"type":        "expense",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPost, "/api/v1/transactions", map[string]interface{}{
			"amount":      10,
			"description": "Groceries",
			"category":    "Food",
			"date":        "2024-01-15",
			"type":        "transfer",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("rejects_malformed_date", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPost, "/api/v1/transactions", map[string]interface{}{
			"amount":      10,
			"description": "Groceries",
			"category":    "Food",
			"date":        "15/01/2024",
			"type":        "expense",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestListTransactionsEndpoint(t *testing.T) {
	type listResponse struct {
		Data     []models.Transaction `json:"data"`
		Page     int                  `json:"page"`
		PageSize int                  `json:"page_size"`
	}

	t.Run("unfiltered", func(t *testing.T) {
		r, s := setupRouter(t)
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")
		testutil.CreateTestTransaction(t, s, models.TransactionTypeDeposit, "Savings", 500, "2024-01-02")

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp listResponse
		decodeBody(t, w, &resp)
		if len(resp.Data) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(resp.Data))
		}
	})

	t.Run("filter_by_type", func(t *testing.T) {
		r, s := setupRouter(t)
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")
		testutil.CreateTestTransaction(t, s, models.TransactionTypeDeposit, "Savings", 500, "2024-01-02")

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions?type=deposit", nil)
		var resp listResponse
		decodeBody(t, w, &resp)
		if len(resp.Data) != 1 || resp.Data[0].Type != models.TransactionTypeDeposit {
			t.Errorf("expected only the deposit, got %v", resp.Data)
		}
	})

	t.Run("filter_by_range", func(t *testing.T) {
		r, s := setupRouter(t)
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 50, "2024-01-02")

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions?from=2024-01-01&to=2024-01-01", nil)
		var resp listResponse
		decodeBody(t, w, &resp)
		if len(resp.Data) != 1 || resp.Data[0].Amount != 100 {
			t.Errorf("expected only the 2024-01-01 record, got %v", resp.Data)
		}
	})

	t.Run("open_ended_range", func(t *testing.T) {
		r, s := setupRouter(t)
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")
		testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 50, "2024-06-01")

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions?from=2024-02-01", nil)
		var resp listResponse
		decodeBody(t, w, &resp)
		if len(resp.Data) != 1 || resp.Data[0].Amount != 50 {
			t.Errorf("expected only the later record, got %v", resp.Data)
		}
	})

	t.Run("pagination_window", func(t *testing.T) {
		r, s := setupRouter(t)
		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", float64(i+1), "2024-01-01")
		}

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions?page=2&page_size=2", nil)
		var resp listResponse
		decodeBody(t, w, &resp)
		if resp.Page != 2 || len(resp.Data) != 2 {
			t.Errorf("expected page 2 with 2 items, got page %d with %d", resp.Page, len(resp.Data))
		}
		if resp.Data[0].Amount != 3 {
			t.Errorf("expected page 2 to start at the third record, got %v", resp.Data)
		}
	})

	t.Run("invalid_type_query", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions?type=transfer", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetTransactionByIDEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, s := setupRouter(t)
		txn := testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions/"+txn.ID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Transaction models.Transaction `json:"transaction"`
		}
		decodeBody(t, w, &resp)
		if resp.Transaction.ID != txn.ID {
			t.Errorf("expected %s, got %s", txn.ID, resp.Transaction.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodGet, "/api/v1/transactions/missing", nil)
		assertErrorCode(t, w, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})
}

func TestUpdateTransactionEndpoint(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		r, s := setupRouter(t)
		txn := testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")

		w := performRequest(t, r, http.MethodPut, "/api/v1/transactions/"+txn.ID, map[string]interface{}{
			"amount": 75,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Transaction models.Transaction `json:"transaction"`
		}
		decodeBody(t, w, &resp)
		if resp.Transaction.Amount != 75 {
			t.Errorf("expected amount 75, got %f", resp.Transaction.Amount)
		}
		if resp.Transaction.Category != "Food" {
			t.Errorf("expected category untouched, got %s", resp.Transaction.Category)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodPut, "/api/v1/transactions/missing", map[string]interface{}{
			"amount": 75,
		})
		assertErrorCode(t, w, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})

	t.Run("rejects_invalid_amount", func(t *testing.T) {
		r, s := setupRouter(t)
		txn := testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")

		w := performRequest(t, r, http.MethodPut, "/api/v1/transactions/"+txn.ID, map[string]interface{}{
			"amount": -1,
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestDeleteTransactionEndpoint(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		r, s := setupRouter(t)
		txn := testutil.CreateTestTransaction(t, s, models.TransactionTypeExpense, "Food", 100, "2024-01-01")

		w := performRequest(t, r, http.MethodDelete, "/api/v1/transactions/"+txn.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if _, err := s.Get(txn.ID); err == nil {
			t.Error("expected record removed from the store")
		}
	})

	t.Run("missing_is_still_204", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := performRequest(t, r, http.MethodDelete, "/api/v1/transactions/missing", nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for a missing ID, got %d", w.Code)
		}
	})
}
