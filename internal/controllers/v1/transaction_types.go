package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/types"
	ez_uuid "github.com/smart-budget/backend/internal/uuid"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string" example:"14.03"`               // The amount, always positive
	Description string                 `json:"description" example:"Weekly shopping"`                     // What the transaction was for
	Date        time.Time              `json:"date" example:"2024-01-05T00:00:00Z"`                       // Date of the transaction
	CategoryID  uuid.UUID              `json:"categoryId" example:"8a1d2bd3-4d7a-4d79-8c3e-2b0e3e4a2f10"` // ID of the category
	Type        models.TransactionType `json:"type" example:"expense"`                                    // income or expense
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	transaction := models.Transaction{
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		UserID:      userID,
	}
	transaction.Normalize()

	return transaction
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/3b1ea324-d438-4419-882a-2fc91d71772f"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/8a1d2bd3-4d7a-4d79-8c3e-2b0e3e4a2f10"` // The category of the transaction
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`

	// This field is computed
	CategoryName string `json:"categoryName" example:"Groceries"` // Name of the category, "Unknown" if it does not exist anymore
}

func newTransaction(c *gin.Context, s aggregate.Snapshot, model models.Transaction) Transaction {
	url := c.GetString(httputil.ContextURL)

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
		CategoryName: s.CategoryName(model.CategoryID),
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred for this transaction
}

type TransactionQueryFilter struct {
	Start      time.Time              `form:"start" time_format:"2006-01-02" time_utc:"1"` // Transactions on or after this day, YYYY-MM-DD
	End        time.Time              `form:"end" time_format:"2006-01-02" time_utc:"1"`   // Transactions on or before this day, YYYY-MM-DD
	Type       models.TransactionType `form:"type"`                                        // income or expense
	CategoryID ez_uuid.UUID           `form:"category"`                                    // By ID of the category
	Search     string                 `form:"search"`                                      // By glob pattern on the description or category name
	Offset     uint                   `form:"offset"`                                      // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                    `form:"limit,default=50"`                            // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return errTransactionTypeInvalid
	}

	return nil
}

func (f TransactionQueryFilter) match(s aggregate.Snapshot, transaction models.Transaction) bool {
	if !f.Start.IsZero() && transaction.Date.Before(types.StartOfDay(f.Start)) {
		return false
	}

	if !f.End.IsZero() && transaction.Date.After(types.EndOfDay(f.End)) {
		return false
	}

	if f.Type != "" && transaction.Type != f.Type {
		return false
	}

	if !f.CategoryID.IsNil() && transaction.CategoryID != f.CategoryID.UUID {
		return false
	}

	return matchSearch(f.Search, transaction.Description, s.CategoryName(transaction.CategoryID))
}
