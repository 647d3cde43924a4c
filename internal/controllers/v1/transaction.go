package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smart-budget/backend/internal/httputil"
	"github.com/smart-budget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Security		Bearer
//	@Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.ownedTransaction(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateTransactions creates transactions
//
//	@Summary		Create transactions
//	@Description	Creates transactions for the authenticated user. The category must belong to the user.
//	@Tags			Transactions
//	@Produce		json
//	@Success		201				{object}	TransactionCreateResponse
//	@Failure		400				{object}	TransactionCreateResponse
//	@Failure		500				{object}	TransactionCreateResponse
//	@Param			transactions	body		[]TransactionEditable	true	"Transactions"
//	@Security		Bearer
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model(user.ID)

		err = transaction.Validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		_, err = co.referencedCategory(user.ID, transaction.CategoryID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		transaction, err = co.Repo.Transactions.Create(transaction)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, s, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetTransactions returns the transactions of the user
//
//	@Summary		Get transactions
//	@Description	Returns a list of transactions of the authenticated user, newest first
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	TransactionListResponse
//	@Failure		400			{object}	TransactionListResponse
//	@Failure		500			{object}	TransactionListResponse
//	@Param			start		query		string	false	"Transactions on or after this day, YYYY-MM-DD"
//	@Param			end			query		string	false	"Transactions on or before this day, YYYY-MM-DD"
//	@Param			type		query		string	false	"Filter by type, income or expense"
//	@Param			category	query		string	false	"Filter by category ID"
//	@Param			search		query		string	false	"Search for this glob pattern in the description and category name"
//	@Param			offset		query		uint	false	"The offset of the first Transaction returned. Defaults to 0."
//	@Param			limit		query		int		false	"Maximum number of Transactions to return. Defaults to 50."
//	@Security		Bearer
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	err = filter.validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions := slices.Clone(s.Transactions())
	transactions = slices.DeleteFunc(transactions, func(t models.Transaction) bool {
		return !filter.match(s, t)
	})
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	page, pagination := paginate(transactions, filter.Offset, filter.Limit)

	data := make([]Transaction, 0, len(page))
	for _, transaction := range page {
		data = append(data, newTransaction(c, s, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	TransactionResponse
//	@Failure		404	{object}	TransactionResponse
//	@Failure		500	{object}	TransactionResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	transaction, err := co.ownedTransaction(user.ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, s, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// UpdateTransaction updates a specific transaction
//
//	@Summary		Update transaction
//	@Description	Updates an existing transaction. Only values to be updated need to be specified.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	TransactionResponse
//	@Failure		400			{object}	TransactionResponse
//	@Failure		404			{object}	TransactionResponse
//	@Failure		500			{object}	TransactionResponse
//	@Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			transaction	body		TransactionEditable	true	"Transaction"
//	@Security		Bearer
//	@Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	transaction, err := co.ownedTransaction(user.ID, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	// Fields missing in the body keep their current value
	editable := TransactionEditable{
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
		CategoryID:  transaction.CategoryID,
		Type:        transaction.Type,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	update := editable.model(user.ID)
	update.ID = transaction.ID

	err = update.Validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	// A category that has been deleted in the meantime may be kept
	if update.CategoryID != transaction.CategoryID {
		_, err = co.referencedCategory(user.ID, update.CategoryID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &s,
			})
			return
		}
	}

	transaction, err = co.Repo.Transactions.Update(update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	s, err := co.snapshot(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, s, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// DeleteTransaction deletes a specific transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction
//	@Tags			Transactions
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Security		Bearer
//	@Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction, err := co.ownedTransaction(currentUser(c).ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Repo.Transactions.Delete(transaction.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
