package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.ownedCategory(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateCategories creates categories
//
//	@Summary		Create categories
//	@Description	Creates new categories for the authenticated user
//	@Tags			Categories
//	@Produce		json
//	@Success		201			{object}	CategoryCreateResponse
//	@Failure		400			{object}	CategoryCreateResponse
//	@Failure		500			{object}	CategoryCreateResponse
//	@Param			categories	body		[]CategoryEditable	true	"Categories"
//	@Security		Bearer
//	@Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}
	user := currentUser(c)

	for _, editable := range editables {
		category := editable.model(user.ID)

		err = category.Validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		category, err = co.Repo.Categories.Create(category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetCategories returns the categories of the user
//
//	@Summary		Get categories
//	@Description	Returns a list of categories of the authenticated user in the order they were created
//	@Tags			Categories
//	@Produce		json
//	@Success		200		{object}	CategoryListResponse
//	@Failure		400		{object}	CategoryListResponse
//	@Failure		500		{object}	CategoryListResponse
//	@Param			group	query		string	false	"Filter by group"
//	@Param			search	query		string	false	"Search for this glob pattern in name and group"
//	@Param			offset	query		uint	false	"The offset of the first Category returned. Defaults to 0."
//	@Param			limit	query		int		false	"Maximum number of Categories to return. Defaults to 50."
//	@Security		Bearer
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := co.Repo.Categories.List(currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories = slices.DeleteFunc(categories, func(category models.Category) bool {
		return !filter.match(category)
	})

	page, pagination := paginate(categories, filter.Offset, filter.Limit)

	data := make([]Category, 0, len(page))
	for _, category := range page {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// GetCategory returns a specific category
//
//	@Summary		Get category
//	@Description	Returns a specific category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	CategoryResponse
//	@Failure		404	{object}	CategoryResponse
//	@Failure		500	{object}	CategoryResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err := co.ownedCategory(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// UpdateCategory updates a specific category
//
//	@Summary		Update category
//	@Description	Update an existing category. Only values to be updated need to be specified.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	CategoryResponse
//	@Failure		404			{object}	CategoryResponse
//	@Failure		500			{object}	CategoryResponse
//	@Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Security		Bearer
//	@Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err := co.ownedCategory(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	editable := CategoryEditable{
		Name:  category.Name,
		Color: category.Color,
		Icon:  category.Icon,
		Group: category.Group,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	update := editable.model(category.UserID)
	update.ID = category.ID

	err = update.Validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err = co.Repo.Categories.Update(update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// DeleteCategory deletes a specific category
//
//	@Summary		Delete category
//	@Description	Deletes a category. Transactions and budgets referencing it are kept and show the category as "Unknown".
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	category, err := co.ownedCategory(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Repo.Categories.Delete(category.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
