package repository

import (
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

type Transactions struct {
	c collection[models.Transaction]
}

func newTransactions(store storage.Storage) Transactions {
	return Transactions{
		c: collection[models.Transaction]{
			store: store,
			key:   KeyTransactions,
			id:    func(t models.Transaction) uuid.UUID { return t.ID },
			setID: func(t *models.Transaction, id uuid.UUID) { t.ID = id },
		},
	}
}

// List returns the transactions of the user in stored order.
func (r Transactions) List(userID uuid.UUID) ([]models.Transaction, error) {
	return r.c.filter(func(t models.Transaction) bool { return t.UserID == userID })
}

func (r Transactions) Find(id uuid.UUID) (models.Transaction, bool, error) {
	return r.c.find(id)
}

func (r Transactions) Create(transaction models.Transaction) (models.Transaction, error) {
	created, err := r.c.create(transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	return created[0], nil
}

func (r Transactions) Update(transaction models.Transaction) (models.Transaction, error) {
	return r.c.update(transaction)
}

func (r Transactions) Delete(id uuid.UUID) error {
	return r.c.delete(id)
}
