// Package v1 implements the handlers of the v1 API.
package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/auth"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/report"
	"github.com/smart-budget/backend/internal/repository"
	"github.com/smart-budget/backend/internal/storage"
	"golang.org/x/sync/errgroup"
)

type Controller struct {
	Repo      *repository.Repository
	Auth      *auth.Service
	Formatter report.Formatter
	Store     storage.Pinger
	Now       func() time.Time // Clock for reports and default date ranges. Defaults to time.Now
}

const contextUser = "user"

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// Authenticate aborts the request with 401 unless it carries the current
// token of a user. The user is then available to the handlers.
func (co Controller) Authenticate(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		c.AbortWithStatusJSON(status(errMissingToken), httpError{
			Error: errMissingToken.Error(),
		})
		return
	}

	user, err := co.Auth.Authenticate(token)
	if err != nil {
		c.AbortWithStatusJSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// currentUser returns the user set by Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

// snapshot loads everything the calculations need for the user.
func (co Controller) snapshot(userID uuid.UUID) (aggregate.Snapshot, error) {
	var (
		transactions []models.Transaction
		categories   []models.Category
		budgets      []models.Budget
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		transactions, err = co.Repo.Transactions.List(userID)
		return
	})
	g.Go(func() (err error) {
		categories, err = co.Repo.Categories.List(userID)
		return
	})
	g.Go(func() (err error) {
		budgets, err = co.Repo.Budgets.List(userID)
		return
	})

	err := g.Wait()
	if err != nil {
		return aggregate.Snapshot{}, err
	}

	return aggregate.NewSnapshot(userID, transactions, categories, budgets), nil
}

// ownedCategory returns the category if it exists and belongs to the user.
func (co Controller) ownedCategory(userID, id uuid.UUID) (models.Category, error) {
	category, ok, err := co.Repo.Categories.Find(id)
	if err != nil {
		return models.Category{}, err
	}

	if !ok || category.UserID != userID {
		return models.Category{}, models.ErrNotFound
	}

	return category, nil
}

// referencedCategory returns the category a new or updated resource
// references. Unknown categories and those of other users fail validation.
func (co Controller) referencedCategory(userID, id uuid.UUID) (models.Category, error) {
	category, err := co.ownedCategory(userID, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.Category{}, models.ValidationError{Field: "categoryId", Message: "does not reference a category of the user"}
	}

	return category, err
}

func (co Controller) ownedTransaction(userID, id uuid.UUID) (models.Transaction, error) {
	transaction, ok, err := co.Repo.Transactions.Find(id)
	if err != nil {
		return models.Transaction{}, err
	}

	if !ok || transaction.UserID != userID {
		return models.Transaction{}, models.ErrNotFound
	}

	return transaction, nil
}

func (co Controller) ownedBudget(userID, id uuid.UUID) (models.Budget, error) {
	budget, ok, err := co.Repo.Budgets.Find(id)
	if err != nil {
		return models.Budget{}, err
	}

	if !ok || budget.UserID != userID {
		return models.Budget{}, models.ErrNotFound
	}

	return budget, nil
}

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz returns the health of the storage
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httpError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	err := co.Store.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
