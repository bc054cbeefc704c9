// Package testutil provides test helpers for setting up stores and
// databases, creating fixtures, and making assertions.
package testutil

import (
	"context"
	"testing"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/notify"
	"github.com/Samhr4577/finance-sparkle-16/internal/persistence"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
)

// SetupTestStore creates a store over an in-memory backend, hydrated with
// the default category seed.
func SetupTestStore(t *testing.T) (*store.Store, *persistence.MemoryAdapter, *notify.Recorder) {
	t.Helper()

	adapter := persistence.NewMemoryAdapter()
	recorder := notify.NewRecorder()
	s := store.New(adapter, recorder)
	s.LoadAll(context.Background())
	return s, adapter, recorder
}

// CreateTestTransaction records a transaction through the store.
func CreateTestTransaction(t *testing.T, s *store.Store, typ models.TransactionType, category string, amount float64, date string) models.Transaction {
	t.Helper()

	txn, err := s.AddTransaction(context.Background(), models.TransactionInput{
		Amount:      amount,
		Description: "Test " + string(typ) + " " + category,
		Category:    category,
		Date:        date,
		Type:        typ,
	})
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}
