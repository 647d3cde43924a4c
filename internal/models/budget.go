package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/types"
)

// Budget is the spending ceiling for one category in one month.
//
// Only one budget should exist per user, category, month and year. The
// repository does not enforce this, callers creating budgets need to check
// with FindByCategoryAndMonth first.
type Budget struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"` // Zero based, 0 is January
	Year       int             `json:"year"`
	CategoryID uuid.UUID       `json:"categoryId"`
	UserID     uuid.UUID       `json:"userId"`
}

// Period returns the month the budget applies to.
func (b Budget) Period() types.Month {
	return types.BudgetMonth(b.Year, b.Month)
}

func (b Budget) Validate() error {
	if !b.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}

	if b.Month < 0 || b.Month > 11 {
		return invalid("month", "must be between 0 and 11")
	}

	if b.Year < 1000 || b.Year > 9999 {
		return invalid("year", "must have four digits")
	}

	if b.CategoryID == uuid.Nil {
		return invalid("categoryId", "is required")
	}

	return nil
}
