package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// Snapshot is the on-disk layout of the local-only backend: the whole
// state in one named record, loaded whole at startup and rewritten whole
// on each mutation.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   models.CategoryMap   `json:"categories"`
}

// SnapshotAdapter persists the store as a single JSON file.
type SnapshotAdapter struct {
	mu     sync.Mutex
	path   string
	snap   Snapshot
	loaded bool
}

// NewSnapshotAdapter creates a file-backed adapter at the given path.
// The file is read lazily on first access.
func NewSnapshotAdapter(path string) *SnapshotAdapter {
	return &SnapshotAdapter{path: path}
}

// load reads the snapshot file into memory. Callers must hold mu.
func (a *SnapshotAdapter) load() error {
	if a.loaded {
		return nil
	}
	raw, err := os.ReadFile(a.path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	a.snap = snap
	a.loaded = true
	return nil
}

// write rewrites the snapshot file atomically. Callers must hold mu.
func (a *SnapshotAdapter) write() error {
	raw, err := json.MarshalIndent(a.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	a.loaded = true
	return nil
}

// ensureLoaded loads the file if present, starting empty when it does not
// exist yet. Callers must hold mu.
func (a *SnapshotAdapter) ensureLoaded() error {
	if a.loaded {
		return nil
	}
	if _, err := os.Stat(a.path); os.IsNotExist(err) {
		a.snap = Snapshot{Categories: models.CategoryMap{}}
		a.loaded = true
		return nil
	}
	return a.load()
}

func (a *SnapshotAdapter) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.load(); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(a.snap.Transactions))
	copy(out, a.snap.Transactions)
	return out, nil
}

func (a *SnapshotAdapter) LoadCategories(ctx context.Context) (models.CategoryMap, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.load(); err != nil {
		return nil, err
	}
	if len(a.snap.Categories) == 0 {
		return nil, fmt.Errorf("snapshot %s has no categories", filepath.Base(a.path))
	}
	return a.snap.Categories.Clone(), nil
}

func (a *SnapshotAdapter) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	a.snap.Transactions = append(a.snap.Transactions, txn)
	return a.write()
}

func (a *SnapshotAdapter) PatchTransaction(ctx context.Context, id string, txn models.Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	for i := range a.snap.Transactions {
		if a.snap.Transactions[i].ID == id {
			a.snap.Transactions[i] = txn
			return a.write()
		}
	}
	return fmt.Errorf("transaction %s not in snapshot", id)
}

func (a *SnapshotAdapter) DeleteTransaction(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	kept := a.snap.Transactions[:0]
	for _, t := range a.snap.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.snap.Transactions = kept
	return a.write()
}

func (a *SnapshotAdapter) CreateCategory(ctx context.Context, t models.TransactionType, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	if a.snap.Categories == nil {
		a.snap.Categories = models.CategoryMap{}
	}
	a.snap.Categories[t] = append(a.snap.Categories[t], name)
	return a.write()
}

func (a *SnapshotAdapter) RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	for i, name := range a.snap.Categories[t] {
		if name == oldName {
			a.snap.Categories[t][i] = newName
			break
		}
	}
	// Mirror the registry cascade on stored transactions.
	for i := range a.snap.Transactions {
		if a.snap.Transactions[i].Type == t && a.snap.Transactions[i].Category == oldName {
			a.snap.Transactions[i].Category = newName
		}
	}
	return a.write()
}

func (a *SnapshotAdapter) DeleteCategory(ctx context.Context, t models.TransactionType, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLoaded(); err != nil {
		return err
	}
	kept := a.snap.Categories[t][:0]
	for _, n := range a.snap.Categories[t] {
		if n != name {
			kept = append(kept, n)
		}
	}
	a.snap.Categories[t] = kept
	return a.write()
}

func (a *SnapshotAdapter) Reset(ctx context.Context, categories models.CategoryMap) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snap = Snapshot{Categories: categories.Clone()}
	return a.write()
}
