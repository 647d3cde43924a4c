package repository

import (
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

type Categories struct {
	c collection[models.Category]
}

func newCategories(store storage.Storage) Categories {
	return Categories{
		c: collection[models.Category]{
			store: store,
			key:   KeyCategories,
			id:    func(c models.Category) uuid.UUID { return c.ID },
			setID: func(c *models.Category, id uuid.UUID) { c.ID = id },
		},
	}
}

// List returns the categories of the user.
func (r Categories) List(userID uuid.UUID) ([]models.Category, error) {
	return r.c.filter(func(c models.Category) bool { return c.UserID == userID })
}

func (r Categories) Find(id uuid.UUID) (models.Category, bool, error) {
	return r.c.find(id)
}

func (r Categories) Create(category models.Category) (models.Category, error) {
	created, err := r.c.create(category)
	if err != nil {
		return models.Category{}, err
	}

	return created[0], nil
}

func (r Categories) Update(category models.Category) (models.Category, error) {
	return r.c.update(category)
}

// Delete removes the category. Transactions and budgets referencing it are kept.
func (r Categories) Delete(id uuid.UUID) error {
	return r.c.delete(id)
}
