package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

type Users struct {
	c          collection[models.User]
	categories Categories
}

func newUsers(store storage.Storage, categories Categories) Users {
	return Users{
		c: collection[models.User]{
			store: store,
			key:   KeyUsers,
			id:    func(u models.User) uuid.UUID { return u.ID },
			setID: func(u *models.User, id uuid.UUID) { u.ID = id },
		},
		categories: categories,
	}
}

func (r Users) List() ([]models.User, error) {
	return r.c.all()
}

func (r Users) Find(id uuid.UUID) (models.User, bool, error) {
	return r.c.find(id)
}

// FindByEmail looks up a user by email address, ignoring case.
func (r Users) FindByEmail(email string) (models.User, bool, error) {
	users, err := r.c.filter(func(u models.User) bool {
		return strings.EqualFold(u.Email, strings.TrimSpace(email))
	})
	if err != nil || len(users) == 0 {
		return models.User{}, false, err
	}

	return users[0], true, nil
}

// Create stores a new user and seeds the default categories for it.
//
// Email uniqueness is checked by the caller.
func (r Users) Create(user models.User) (models.User, error) {
	created, err := r.c.create(user)
	if err != nil {
		return models.User{}, err
	}
	user = created[0]

	_, err = r.categories.c.create(models.DefaultCategories(user.ID)...)
	if err != nil {
		return user, fmt.Errorf("seeding default categories: %w", err)
	}

	return user, nil
}

func (r Users) Update(user models.User) (models.User, error) {
	return r.c.update(user)
}

func (r Users) Delete(id uuid.UUID) error {
	return r.c.delete(id)
}
