package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Type        TransactionType `json:"type"`
	UserID      uuid.UUID       `json:"userId"`
}

// Normalize trims the description and moves the date to UTC.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Date = t.Date.In(time.UTC)
}

func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}

	if t.Description == "" {
		return invalid("description", "is required")
	}

	if t.Date.IsZero() {
		return invalid("date", "is required")
	}

	if t.CategoryID == uuid.Nil {
		return invalid("categoryId", "is required")
	}

	if !t.Type.Valid() {
		return invalid("type", "must be income or expense")
	}

	return nil
}
