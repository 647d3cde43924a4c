package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.OPTIONS("/:id/usage", co.OptionsBudgetUsage)
		r.GET("/:id/usage", co.GetBudgetUsage)
	}
}

// checkBudget returns an error if the budget cannot be stored.
//
// The category is only checked when checkCategory is true so that budgets
// of deleted categories can still be edited.
func (co Controller) checkBudget(budget models.Budget, checkCategory bool) error {
	err := budget.Validate()
	if err != nil {
		return err
	}

	if checkCategory {
		category, err := co.referencedCategory(budget.UserID, budget.CategoryID)
		if err != nil {
			return err
		}

		if category.IsIncome() {
			return models.ErrIncomeCategoryBudget
		}
	}

	existing, ok, err := co.Repo.Budgets.FindByCategoryAndMonth(budget.UserID, budget.CategoryID, budget.Month, budget.Year)
	if err != nil {
		return err
	}

	if ok && existing.ID != budget.ID {
		return models.ErrDuplicateBudget
	}

	return nil
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.ownedBudget(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// OptionsBudgetUsage returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/budgets/{id}/usage [options]
func (co Controller) OptionsBudgetUsage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.ownedBudget(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// CreateBudgets creates budgets
//
//	@Summary		Create budgets
//	@Description	Creates budgets for the authenticated user. Only one budget can exist per category and month, income categories cannot have budgets.
//	@Tags			Budgets
//	@Produce		json
//	@Success		201		{object}	BudgetCreateResponse
//	@Failure		400		{object}	BudgetCreateResponse
//	@Failure		409		{object}	BudgetCreateResponse
//	@Failure		500		{object}	BudgetCreateResponse
//	@Param			budgets	body		[]BudgetEditable	true	"Budgets"
//	@Security		Bearer
//	@Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model(user.ID)

		err = co.checkBudget(budget, true)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		budget, err = co.Repo.Budgets.Create(budget)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, s, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetBudgets returns the budgets of the user
//
//	@Summary		Get budgets
//	@Description	Returns a list of budgets of the authenticated user in the order they were created
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetListResponse
//	@Failure		400		{object}	BudgetListResponse
//	@Failure		500		{object}	BudgetListResponse
//	@Param			month	query		int		false	"Filter by month, 0 is January"
//	@Param			year	query		int		false	"Filter by year"
//	@Param			offset	query		uint	false	"The offset of the first Budget returned. Defaults to 0."
//	@Param			limit	query		int		false	"Maximum number of Budgets to return. Defaults to 50."
//	@Security		Bearer
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	budgets := slices.Clone(s.Budgets())
	budgets = slices.DeleteFunc(budgets, func(b models.Budget) bool {
		return !filter.match(b)
	})

	page, pagination := paginate(budgets, filter.Offset, filter.Limit)

	data := make([]Budget, 0, len(page))
	for _, budget := range page {
		data = append(data, newBudget(c, s, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// GetBudget returns a specific budget
//
//	@Summary		Get budget
//	@Description	Returns a specific budget
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	BudgetResponse
//	@Failure		404	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	budget, err := co.ownedBudget(user.ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, s, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// GetBudgetUsage returns allocated, spent and remaining amounts of a budget
//
//	@Summary		Get budget usage
//	@Description	Returns the budget with the expenses of its category in its month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetUsageResponse
//	@Failure		400	{object}	BudgetUsageResponse
//	@Failure		404	{object}	BudgetUsageResponse
//	@Failure		500	{object}	BudgetUsageResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/budgets/{id}/usage [get]
func (co Controller) GetBudgetUsage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	budget, err := co.ownedBudget(user.ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUsageResponse{
			Error: &e,
		})
		return
	}

	data := aggregate.BudgetStatus{
		Budget:       budget,
		CategoryName: s.CategoryName(budget.CategoryID),
		Usage:        s.BudgetUsage(budget),
	}
	c.JSON(http.StatusOK, BudgetUsageResponse{Data: &data})
}

// UpdateBudget updates a specific budget
//
//	@Summary		Update budget
//	@Description	Updates an existing budget. Only values to be updated need to be specified.
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		409		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Security		Bearer
//	@Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	budget, err := co.ownedBudget(user.ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	editable := BudgetEditable{
		Amount:     budget.Amount,
		Month:      budget.Month,
		Year:       budget.Year,
		CategoryID: budget.CategoryID,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	update := editable.model(user.ID)
	update.ID = budget.ID

	err = co.checkBudget(update, update.CategoryID != budget.CategoryID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget, err = co.Repo.Budgets.Update(update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, s, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// DeleteBudget deletes a specific budget
//
//	@Summary		Delete budget
//	@Description	Deletes a budget
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	budget, err := co.ownedBudget(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Repo.Budgets.Delete(budget.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
