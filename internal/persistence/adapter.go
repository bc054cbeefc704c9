// Package persistence defines the storage backends the finance store
// delegates durability to. Adapters are interchangeable and their failures
// are non-fatal: the in-memory store keeps operating on adapter errors.
package persistence

import (
	"context"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// Adapter is the contract every storage backend must satisfy. The store
// passes fully merged records on patch; adapters never apply business
// rules of their own.
type Adapter interface {
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	LoadCategories(ctx context.Context) (models.CategoryMap, error)

	CreateTransaction(ctx context.Context, txn models.Transaction) error
	PatchTransaction(ctx context.Context, id string, txn models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, t models.TransactionType, name string) error
	RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error
	DeleteCategory(ctx context.Context, t models.TransactionType, name string) error

	// Reset clears all stored data and reseeds the given categories.
	Reset(ctx context.Context, categories models.CategoryMap) error
}
