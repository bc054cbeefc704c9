package store

import "github.com/Samhr4577/finance-sparkle-16/internal/models"

// DefaultCategories is the seed taxonomy used on first run and whenever
// the persistence backend cannot provide one.
var DefaultCategories = models.CategoryMap{
	models.TransactionTypeExpense: {
		"Food", "Transportation", "Housing", "Utilities", "Entertainment",
		"Health", "Education", "Shopping", "Travel", "Other",
	},
	models.TransactionTypeSalesIn: {
		"Salary", "Freelance", "Investments", "Gifts", "Refunds", "Other Income",
	},
	models.TransactionTypeSalesOut: {
		"Business Expenses", "Inventory", "Services", "Equipment", "Marketing", "Other Expenses",
	},
	models.TransactionTypeDeposit: {
		"Savings", "Investments", "Emergency Fund", "Retirement", "Education Fund", "Other",
	},
}
