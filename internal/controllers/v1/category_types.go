package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string `json:"name" example:"Groceries"`                // Name of the category
	Color string `json:"color" example:"#84CC16"`                 // Color as hex value
	Icon  string `json:"icon" example:"shopping-cart"`            // Name of the icon
	Group string `json:"group" example:"Food & Drink" default:""` // Group of the category. Categories in the "Income" group are income categories.
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	category := models.Category{
		Name:   editable.Name,
		Color:  editable.Color,
		Icon:   editable.Icon,
		Group:  editable.Group,
		UserID: userID,
	}
	category.Normalize()

	return category
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`

	// This field is computed
	Income bool `json:"income" example:"false"` // Is this an income category?
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(httputil.ContextURL)

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
		Income: model.IsIncome(),
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Group  string `form:"group"`            // By group
	Search string `form:"search"`           // By glob pattern on name or group
	Offset uint   `form:"offset"`           // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit,default=50"` // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) match(category models.Category) bool {
	if f.Group != "" && category.Group != f.Group {
		return false
	}

	return matchSearch(f.Search, category.Name, category.Group)
}
