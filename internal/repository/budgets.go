package repository

import (
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

type Budgets struct {
	c collection[models.Budget]
}

func newBudgets(store storage.Storage) Budgets {
	return Budgets{
		c: collection[models.Budget]{
			store: store,
			key:   KeyBudgets,
			id:    func(b models.Budget) uuid.UUID { return b.ID },
			setID: func(b *models.Budget, id uuid.UUID) { b.ID = id },
		},
	}
}

func (r Budgets) List(userID uuid.UUID) ([]models.Budget, error) {
	return r.c.filter(func(b models.Budget) bool { return b.UserID == userID })
}

func (r Budgets) Find(id uuid.UUID) (models.Budget, bool, error) {
	return r.c.find(id)
}

// FindByCategoryAndMonth returns the first budget of the user for the
// category in the month. month is zero based.
func (r Budgets) FindByCategoryAndMonth(userID, categoryID uuid.UUID, month, year int) (models.Budget, bool, error) {
	budgets, err := r.c.filter(func(b models.Budget) bool {
		return b.UserID == userID && b.CategoryID == categoryID && b.Month == month && b.Year == year
	})
	if err != nil || len(budgets) == 0 {
		return models.Budget{}, false, err
	}

	return budgets[0], true, nil
}

// Create stores the budget without checking for an existing budget
// for the same category and month.
func (r Budgets) Create(budget models.Budget) (models.Budget, error) {
	created, err := r.c.create(budget)
	if err != nil {
		return models.Budget{}, err
	}

	return created[0], nil
}

func (r Budgets) Update(budget models.Budget) (models.Budget, error) {
	return r.c.update(budget)
}

func (r Budgets) Delete(id uuid.UUID) error {
	return r.c.delete(id)
}
