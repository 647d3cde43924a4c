// Package repository implements CRUD for users, categories, transactions
// and budgets on top of a storage.Storage.
//
// Every collection is one JSON array under one key. Lookups of IDs that do
// not exist return false, not an error. Uniqueness of budgets per category
// and month is not enforced here.
package repository

import (
	"github.com/smart-budget/backend/internal/storage"
)

// Storage keys
const (
	KeyUsers        = "smart-budget-users"
	KeyCategories   = "smart-budget-categories"
	KeyTransactions = "smart-budget-transactions"
	KeyBudgets      = "smart-budget-budgets"
	KeyTokens       = "smart-budget-tokens"
	KeyTheme        = "smart-budget-theme"
)

type Repository struct {
	Users        Users
	Categories   Categories
	Transactions Transactions
	Budgets      Budgets
	Tokens       Tokens
	Preferences  Preferences
}

// New returns a Repository reading from and writing to the store.
func New(store storage.Storage) *Repository {
	categories := newCategories(store)

	return &Repository{
		Users:        newUsers(store, categories),
		Categories:   categories,
		Transactions: newTransactions(store),
		Budgets:      newBudgets(store),
		Tokens:       Tokens{store: store},
		Preferences:  Preferences{store: store},
	}
}
