// Package aggregate derives totals, budget usage and chart series from
// the collections of one user.
//
// Nothing in this package performs I/O or keeps state between calls, and
// no function returns an error. Category IDs that do not resolve are
// reported as models.UnknownCategoryName, divisions by zero yield zero.
package aggregate

import (
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
)

// Snapshot holds the transactions, categories and budgets of one user.
type Snapshot struct {
	userID       uuid.UUID
	transactions []models.Transaction
	categories   []models.Category
	budgets      []models.Budget
	byID         map[uuid.UUID]models.Category
}

// NewSnapshot returns the Snapshot for the user. Records owned by other
// users are dropped, the order of the remaining records is kept.
func NewSnapshot(userID uuid.UUID, transactions []models.Transaction, categories []models.Category, budgets []models.Budget) Snapshot {
	s := Snapshot{
		userID:       userID,
		transactions: []models.Transaction{},
		categories:   []models.Category{},
		budgets:      []models.Budget{},
		byID:         make(map[uuid.UUID]models.Category),
	}

	for _, t := range transactions {
		if t.UserID == userID {
			s.transactions = append(s.transactions, t)
		}
	}

	for _, c := range categories {
		if c.UserID == userID {
			s.categories = append(s.categories, c)
			s.byID[c.ID] = c
		}
	}

	for _, b := range budgets {
		if b.UserID == userID {
			s.budgets = append(s.budgets, b)
		}
	}

	return s
}

func (s Snapshot) UserID() uuid.UUID {
	return s.userID
}

func (s Snapshot) Transactions() []models.Transaction {
	return s.transactions
}

func (s Snapshot) Categories() []models.Category {
	return s.categories
}

func (s Snapshot) Budgets() []models.Budget {
	return s.budgets
}

// Category resolves a category ID.
func (s Snapshot) Category(id uuid.UUID) (models.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// CategoryName returns the name of the category or "Unknown".
func (s Snapshot) CategoryName(id uuid.UUID) string {
	if c, ok := s.byID[id]; ok {
		return c.Name
	}

	return models.UnknownCategoryName
}

// CategoryColor returns the color of the category or the neutral
// color used for unknown categories.
func (s Snapshot) CategoryColor(id uuid.UUID) string {
	if c, ok := s.byID[id]; ok {
		return c.Color
	}

	return models.UnknownCategoryColor
}

// groupKey returns the key a transaction is grouped under. All
// unresolvable categories share the Nil key.
func (s Snapshot) groupKey(id uuid.UUID) uuid.UUID {
	if _, ok := s.byID[id]; ok {
		return id
	}

	return uuid.Nil
}
