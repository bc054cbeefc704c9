package models

import (
	"fmt"
	"time"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeSalesIn  TransactionType = "sales-in"
	TransactionTypeSalesOut TransactionType = "sales-out"
	TransactionTypeDeposit  TransactionType = "deposit"
)

// AllTransactionTypes lists every transaction type in display order.
var AllTransactionTypes = []TransactionType{
	TransactionTypeExpense,
	TransactionTypeSalesIn,
	TransactionTypeSalesOut,
	TransactionTypeDeposit,
}

// Valid reports whether t is one of the four known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeSalesIn, TransactionTypeSalesOut, TransactionTypeDeposit:
		return true
	}
	return false
}

// DateLayout is the canonical storage form for transaction dates.
// Dates carry no time-of-day significance, so they are stored as plain
// calendar-day strings to avoid timezone drift.
const DateLayout = "2006-01-02"

// NormalizeDate converts a date string to the canonical YYYY-MM-DD form.
// It accepts the canonical layout itself or an RFC 3339 instant.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(DateLayout), nil
	}
	return "", fmt.Errorf("invalid date %q: expected %s or RFC 3339", s, DateLayout)
}

// Transaction represents a single recorded financial event.
// Dates are canonical YYYY-MM-DD strings; Timestamp is an RFC 3339 instant
// used only for audit display and tie-breaking, never for business logic.
type Transaction struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Date        string          `gorm:"not null" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Notes       string          `json:"notes,omitempty"`
	Timestamp   string          `gorm:"not null" json:"timestamp,omitempty"`
}

// TransactionInput carries the caller-supplied fields for a new transaction.
// The store assigns the ID, normalizes the date, and stamps the timestamp.
type TransactionInput struct {
	Amount      float64
	Description string
	Category    string
	Date        string
	Type        TransactionType
	Notes       string
}

// TransactionPatch carries optional field updates for an existing
// transaction. Nil fields are left untouched.
type TransactionPatch struct {
	Amount      *float64
	Description *string
	Category    *string
	Date        *string
	Type        *TransactionType
	Notes       *string
}
