package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Samhr4577/finance-sparkle-16/internal/models"
)

// DatabaseAdapter persists the store in a relational database through GORM.
// The schema mirrors the snapshot layout: one transactions table and one
// categories table keyed by (type, name).
type DatabaseAdapter struct {
	db *gorm.DB
}

// NewDatabaseAdapter creates an adapter over an open GORM handle.
func NewDatabaseAdapter(db *gorm.DB) *DatabaseAdapter {
	return &DatabaseAdapter{db: db}
}

func (a *DatabaseAdapter) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := a.db.WithContext(ctx).Order("timestamp").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txns, nil
}

func (a *DatabaseAdapter) LoadCategories(ctx context.Context) (models.CategoryMap, error) {
	var records []models.CategoryRecord
	if err := a.db.WithContext(ctx).Order("type, position").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no categories stored")
	}
	categories := models.CategoryMap{}
	for _, r := range records {
		categories[r.Type] = append(categories[r.Type], r.Name)
	}
	return categories, nil
}

func (a *DatabaseAdapter) CreateTransaction(ctx context.Context, txn models.Transaction) error {
	if err := a.db.WithContext(ctx).Create(&txn).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (a *DatabaseAdapter) PatchTransaction(ctx context.Context, id string, txn models.Transaction) error {
	res := a.db.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount":      txn.Amount,
		"description": txn.Description,
		"category":    txn.Category,
		"date":        txn.Date,
		"type":        txn.Type,
		"notes":       txn.Notes,
		"timestamp":   txn.Timestamp,
	})
	if res.Error != nil {
		return fmt.Errorf("patch transaction: %w", res.Error)
	}
	return nil
}

func (a *DatabaseAdapter) DeleteTransaction(ctx context.Context, id string) error {
	if err := a.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (a *DatabaseAdapter) CreateCategory(ctx context.Context, t models.TransactionType, name string) error {
	var position int64
	if err := a.db.WithContext(ctx).Model(&models.CategoryRecord{}).Where("type = ?", t).Count(&position).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	record := models.CategoryRecord{Type: t, Name: name, Position: int(position)}
	if err := a.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (a *DatabaseAdapter) RenameCategory(ctx context.Context, t models.TransactionType, oldName, newName string) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CategoryRecord{}).
			Where("type = ? AND name = ?", t, oldName).
			Update("name", newName).Error; err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		// Cascade to stored transactions, matching the in-memory rename.
		if err := tx.Model(&models.Transaction{}).
			Where("type = ? AND category = ?", t, oldName).
			Update("category", newName).Error; err != nil {
			return fmt.Errorf("cascade rename: %w", err)
		}
		return nil
	})
}

func (a *DatabaseAdapter) DeleteCategory(ctx context.Context, t models.TransactionType, name string) error {
	if err := a.db.WithContext(ctx).Where("type = ? AND name = ?", t, name).Delete(&models.CategoryRecord{}).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (a *DatabaseAdapter) Reset(ctx context.Context, categories models.CategoryMap) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("clear transactions: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.CategoryRecord{}).Error; err != nil {
			return fmt.Errorf("clear categories: %w", err)
		}
		for _, t := range models.AllTransactionTypes {
			for i, name := range categories[t] {
				record := models.CategoryRecord{Type: t, Name: name, Position: i}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("seed category: %w", err)
				}
			}
		}
		return nil
	})
}
