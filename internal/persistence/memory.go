package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// MemoryAdapter is an in-process backend used by tests and ephemeral runs.
// Setting Fail makes every call return an error, which exercises the
// store's local-first fallback behavior.
type MemoryAdapter struct {
	mu           sync.Mutex
	Fail         bool
	Transactions []models.Transaction
	Categories   models.CategoryMap
}

// NewMemoryAdapter returns an empty in-memory backend.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{Categories: models.CategoryMap{}}
}

func (a *MemoryAdapter) failErr() error {
	if a.Fail {
		return fmt.Errorf("memory adapter: injected failure")
	}
	return nil
}

func (a *MemoryAdapter) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(a.Transactions))
	copy(out, a.Transactions)
	return out, nil
}

func (a *MemoryAdapter) LoadCategories(ctx context.Context) (models.CategoryMap, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return nil, err
	}
	if len(a.Categories) == 0 {
		return nil, fmt.Errorf("no categories stored")
	}
	return a.Categories.Clone(), nil
}

func (a *MemoryAdapter) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	a.Transactions = append(a.Transactions, txn)
	return nil
}

func (a *MemoryAdapter) PatchTransaction(ctx context.Context, id string, txn models.Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	for i := range a.Transactions {
		if a.Transactions[i].ID == id {
			a.Transactions[i] = txn
			return nil
		}
	}
	return fmt.Errorf("transaction %s not stored", id)
}

func (a *MemoryAdapter) DeleteTransaction(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	kept := a.Transactions[:0]
	for _, t := range a.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.Transactions = kept
	return nil
}

func (a *MemoryAdapter) CreateCategory(ctx context.Context, t models.TransactionType, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	a.Categories[t] = append(a.Categories[t], name)
	return nil
}

func (a *MemoryAdapter) RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	for i, name := range a.Categories[t] {
		if name == oldName {
			a.Categories[t][i] = newName
		}
	}
	for i := range a.Transactions {
		if a.Transactions[i].Type == t && a.Transactions[i].Category == oldName {
			a.Transactions[i].Category = newName
		}
	}
	return nil
}

func (a *MemoryAdapter) DeleteCategory(ctx context.Context, t models.TransactionType, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	kept := a.Categories[t][:0]
	for _, n := range a.Categories[t] {
		if n != name {
			kept = append(kept, n)
		}
	}
	a.Categories[t] = kept
	return nil
}

func (a *MemoryAdapter) Reset(ctx context.Context, categories models.CategoryMap) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failErr(); err != nil {
		return err
	}
	a.Transactions = nil
	a.Categories = categories.Clone()
	return nil
}
