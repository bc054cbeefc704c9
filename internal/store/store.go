// Package store holds the session's financial state: the transaction
// collection, the category registry, and the derived queries over them.
// The store is the authority for the session; the persistence adapter is
// advisory, and its failures never roll back an in-memory commit.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
	"github.com/Samhr4577/finance-sparkle-16/internal/logger"
	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/notify"
	"github.com/Samhr4577/finance-sparkle-16/internal/persistence"
	"github.com/Samhr4577/finance-sparkle-16/internal/uuid"
)

const defaultPersistTimeout = 5 * time.Second

// Store is the process-wide state container. A single RWMutex guards both
// the transaction collection and the category registry so that cross-
// component mutations (the rename cascade) are atomic with respect to
// readers.
type Store struct {
	mu       sync.RWMutex
	adapter  persistence.Adapter
	log      *zap.SugaredLogger
	notifier notify.Notifier
	timeout  time.Duration

	transactions []models.Transaction
	categories   models.CategoryMap
}

// Option configures a Store.
type Option func(*Store)

// WithPersistTimeout overrides the deadline applied to adapter calls.
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// New creates a Store over the given persistence adapter. Call LoadAll
// before serving requests.
func New(adapter persistence.Adapter, notifier notify.Notifier, opts ...Option) *Store {
	s := &Store{
		adapter:    adapter,
		log:        logger.Get(),
		notifier:   notifier,
		timeout:    defaultPersistTimeout,
		categories: DefaultCategories.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll hydrates the store from the persistence adapter. Transactions
// and categories load concurrently. Adapter failure is non-fatal: the
// store falls back to an empty collection and the default category seed,
// and LoadAll never reports an error to the caller.
func (s *Store) LoadAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		txns []models.Transaction
		cats models.CategoryMap
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.adapter.LoadTransactions(ctx)
		if err != nil {
			s.log.Warnw("could not load transactions, starting empty", "error", err)
			return nil
		}
		txns = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := s.adapter.LoadCategories(ctx)
		if err != nil {
			s.log.Warnw("could not load categories, using defaults", "error", err)
			return nil
		}
		cats = loaded
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if txns != nil {
		s.transactions = txns
	} else {
		s.transactions = []models.Transaction{}
	}
	if cats != nil {
		s.categories = cats
	} else {
		s.categories = DefaultCategories.Clone()
		s.notifier.Warn("Storage backend unavailable, using default categories")
	}
}

// AddTransaction appends a new transaction. The input is validated
// structurally at the form boundary; the store assigns a fresh ID,
// normalizes the date, and stamps the creation timestamp.
func (s *Store) AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	date, err := models.NormalizeDate(input.Date)
	if err != nil {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if !input.Type.Valid() {
		return models.Transaction{}, apperrors.ErrInvalidTransactionType
	}

	txn := models.Transaction{
		ID:          uuid.New(),
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        date,
		Type:        input.Type,
		Notes:       input.Notes,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, txn)
	s.mu.Unlock()

	s.persist(ctx, "transaction create", func(ctx context.Context) error {
		return s.adapter.CreateTransaction(ctx, txn)
	})
	s.notifier.Success("Transaction added successfully")
	return txn, nil
}

// UpdateTransaction merges the patch onto an existing record. The ID is
// immutable; unset fields are untouched; the timestamp is refreshed.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error) {
	var date string
	if patch.Date != nil {
		normalized, err := models.NormalizeDate(*patch.Date)
		if err != nil {
			return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		date = normalized
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return models.Transaction{}, apperrors.ErrInvalidTransactionType
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}

	txn := s.transactions[idx]
	if patch.Amount != nil {
		txn.Amount = *patch.Amount
	}
	if patch.Description != nil {
		txn.Description = *patch.Description
	}
	if patch.Category != nil {
		txn.Category = *patch.Category
	}
	if patch.Date != nil {
		txn.Date = date
	}
	if patch.Type != nil {
		txn.Type = *patch.Type
	}
	if patch.Notes != nil {
		txn.Notes = *patch.Notes
	}
	txn.Timestamp = time.Now().UTC().Format(time.RFC3339)
	s.transactions[idx] = txn
	s.mu.Unlock()

	s.persist(ctx, "transaction update", func(ctx context.Context) error {
		return s.adapter.PatchTransaction(ctx, id, txn)
	})
	s.notifier.Success("Transaction updated successfully")
	return txn, nil
}

// RemoveTransaction deletes the record permanently. Removing an ID that
// does not exist is a silent no-op, which keeps deletion idempotent.
func (s *Store) RemoveTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)
	s.mu.Unlock()

	s.persist(ctx, "transaction delete", func(ctx context.Context) error {
		return s.adapter.DeleteTransaction(ctx, id)
	})
	s.notifier.Success("Transaction deleted successfully")
}

// Get returns the transaction with the given ID.
func (s *Store) Get(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.transactions[idx], nil
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// Reset drops all transactions and restores the default category seed,
// locally and in the persistence backend.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.transactions = []models.Transaction{}
	s.categories = DefaultCategories.Clone()
	s.mu.Unlock()

	s.persist(ctx, "reset", func(ctx context.Context) error {
		return s.adapter.Reset(ctx, DefaultCategories)
	})
	s.notifier.Success("Database reset successfully")
}

// indexOf returns the position of id, or -1. Callers must hold mu.
func (s *Store) indexOf(id string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// persist runs an adapter write with a deadline. Failures are logged and
// surfaced as a warning notice; the in-memory commit stands regardless.
func (s *Store) persist(ctx context.Context, op string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		s.log.Warnw("persistence unavailable", "op", op, "error", err)
		s.notifier.Warn("Storage backend unavailable, change kept locally")
	}
}
