package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// RESTAdapter persists the store through a PostgREST-style HTTP backend
// (Supabase and compatible services). Rows are addressed with column
// filters: /transactions?id=eq.<id>.
type RESTAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTAdapter creates an adapter for the given backend base URL
// (including the /rest/v1 prefix for Supabase) and API key.
func NewRESTAdapter(baseURL, apiKey string, timeout time.Duration) *RESTAdapter {
	return &RESTAdapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// categoryRow is the wire form of one registry entry.
type categoryRow struct {
	Type models.TransactionType `json:"type"`
	Name string                 `json:"name"`
}

func (a *RESTAdapter) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out != nil {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (a *RESTAdapter) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := a.do(ctx, http.MethodGet, "/transactions?order=timestamp.asc", nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (a *RESTAdapter) LoadCategories(ctx context.Context) (models.CategoryMap, error) {
	var rows []categoryRow
	if err := a.do(ctx, http.MethodGet, "/categories", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no categories stored")
	}
	categories := models.CategoryMap{}
	for _, r := range rows {
		categories[r.Type] = append(categories[r.Type], r.Name)
	}
	return categories, nil
}

func (a *RESTAdapter) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	return a.do(ctx, http.MethodPost, "/transactions", txn, nil)
}

func (a *RESTAdapter) PatchTransaction(ctx context.Context, id string, txn models.Transaction) error {
	path := "/transactions?id=eq." + url.QueryEscape(id)
	return a.do(ctx, http.MethodPatch, path, txn, nil)
}

func (a *RESTAdapter) DeleteTransaction(ctx context.Context, id string) error {
	path := "/transactions?id=eq." + url.QueryEscape(id)
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *RESTAdapter) CreateCategory(ctx context.Context, t models.TransactionType, name string) error {
	return a.do(ctx, http.MethodPost, "/categories", categoryRow{Type: t, Name: name}, nil)
}

func (a *RESTAdapter) RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error {
	path := fmt.Sprintf("/categories?type=eq.%s&name=eq.%s", url.QueryEscape(string(t)), url.QueryEscape(oldName))
	if err := a.do(ctx, http.MethodPatch, path, map[string]string{"name": newName}, nil); err != nil {
		return err
	}
	// Cascade to stored transactions, matching the in-memory rename.
	path = fmt.Sprintf("/transactions?type=eq.%s&category=eq.%s", url.QueryEscape(string(t)), url.QueryEscape(oldName))
	return a.do(ctx, http.MethodPatch, path, map[string]string{"category": newName}, nil)
}

func (a *RESTAdapter) DeleteCategory(ctx context.Context, t models.TransactionType, name string) error {
	path := fmt.Sprintf("/categories?type=eq.%s&name=eq.%s", url.QueryEscape(string(t)), url.QueryEscape(name))
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *RESTAdapter) Reset(ctx context.Context, categories models.CategoryMap) error {
	if err := a.do(ctx, http.MethodDelete, "/transactions?id=not.is.null", nil, nil); err != nil {
		return err
	}
	if err := a.do(ctx, http.MethodDelete, "/categories?name=not.is.null", nil, nil); err != nil {
		return err
	}
	var rows []categoryRow
	for _, t := range models.AllTransactionTypes {
		for _, name := range categories[t] {
			rows = append(rows, categoryRow{Type: t, Name: name})
		}
	}
	return a.do(ctx, http.MethodPost, "/categories", rows, nil)
}
