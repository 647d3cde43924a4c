package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"200"`                 // The spending ceiling for the month
	Month      int             `json:"month" example:"0" minimum:"0" maximum:"11"`                // The month, 0 is January
	Year       int             `json:"year" example:"2024"`                                       // The year
	CategoryID uuid.UUID       `json:"categoryId" example:"8a1d2bd3-4d7a-4d79-8c3e-2b0e3e4a2f10"` // ID of the category, must not be an income category
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		Amount:     editable.Amount,
		Month:      editable.Month,
		Year:       editable.Year,
		CategoryID: editable.CategoryID,
		UserID:     userID,
	}
}

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The budget itself
	Usage string `json:"usage" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/usage"` // The usage of the budget
	Month string `json:"month" example:"https://example.com/api/v1/months/2024-01"`                                     // The month overview for the month of the budget
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`

	// This field is computed
	CategoryName string `json:"categoryName" example:"Groceries"` // Name of the category, "Unknown" if it does not exist anymore
}

func newBudget(c *gin.Context, s aggregate.Snapshot, model models.Budget) Budget {
	url := c.GetString(httputil.ContextURL)

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:  fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Usage: fmt.Sprintf("%s/v1/budgets/%s/usage", url, model.ID),
			Month: fmt.Sprintf("%s/v1/months/%s", url, model.Period()),
		},
		CategoryName: s.CategoryName(model.CategoryID),
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                                // Data for the budget
	Error *string `json:"error" example:"a budget for this category and month already exists"` // The error, if any occurred
}

type BudgetUsageResponse struct {
	Data  *aggregate.BudgetStatus `json:"data"`                                              // The budget with its usage
	Error *string                 `json:"error" example:"there is no resource with this ID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Month  int  `form:"month,default=-1"` // By month, 0 is January
	Year   int  `form:"year"`             // By year
	Offset uint `form:"offset"`           // The offset of the first Budget returned. Defaults to 0.
	Limit  int  `form:"limit,default=50"` // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) match(budget models.Budget) bool {
	if f.Month >= 0 && budget.Month != f.Month {
		return false
	}

	return f.Year == 0 || budget.Year == f.Year
}
