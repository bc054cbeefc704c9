package store

import (
	"context"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// AddCategory appends a category name to the end of its type's list.
func (s *Store) AddCategory(ctx context.Context, t models.TransactionType, name string) error {
	if !t.Valid() {
		return apperrors.ErrInvalidTransactionType
	}

	s.mu.Lock()
	if contains(s.categories[t], name) {
		s.mu.Unlock()
		return apperrors.ErrDuplicateCategory
	}
	s.categories[t] = append(s.categories[t], name)
	s.mu.Unlock()

	s.persist(ctx, "category create", func(ctx context.Context) error {
		return s.adapter.CreateCategory(ctx, t, name)
	})
	s.notifier.Success("Category added successfully")
	return nil
}

// RenameCategory replaces oldName with newName in place, preserving list
// order, and rewrites the category on every transaction of that type that
// still references oldName. Registry and transactions change under one
// lock, so no reader observes one updated without the other.
func (s *Store) RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error {
	if !t.Valid() {
		return apperrors.ErrInvalidTransactionType
	}

	s.mu.Lock()
	names := s.categories[t]
	idx := -1
	for i, n := range names {
		if n == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.ErrCategoryNotFound
	}
	if newName != oldName && contains(names, newName) {
		s.mu.Unlock()
		return apperrors.ErrDuplicateCategory
	}

	names[idx] = newName
	for i := range s.transactions {
		if s.transactions[i].Type == t && s.transactions[i].Category == oldName {
			s.transactions[i].Category = newName
		}
	}
	s.mu.Unlock()

	s.persist(ctx, "category rename", func(ctx context.Context) error {
		return s.adapter.RenameCategory(ctx, t, oldName, newName)
	})
	s.notifier.Success("Category updated successfully")
	return nil
}

// DeleteCategory removes the name from its type's list. Existing
// transactions keep the deleted category string; deletion deliberately
// does not cascade, unlike rename.
func (s *Store) DeleteCategory(ctx context.Context, t models.TransactionType, name string) error {
	if !t.Valid() {
		return apperrors.ErrInvalidTransactionType
	}

	s.mu.Lock()
	names := s.categories[t]
	idx := -1
	for i, n := range names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.ErrCategoryNotFound
	}
	s.categories[t] = append(names[:idx], names[idx+1:]...)
	s.mu.Unlock()

	s.persist(ctx, "category delete", func(ctx context.Context) error {
		return s.adapter.DeleteCategory(ctx, t, name)
	})
	s.notifier.Success("Category deleted successfully")
	return nil
}

// CategoriesFor returns the ordered category list for a type. Unknown
// types yield an empty list, never an error.
func (s *Store) CategoriesFor(t models.TransactionType) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := s.categories[t]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Categories returns a copy of the whole registry.
func (s *Store) Categories() models.CategoryMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.Clone()
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
