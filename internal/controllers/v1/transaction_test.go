package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries")

	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{
		Amount:      decimal.RequireFromString("14.03"),
		Description: "  Weekly shopping ",
		CategoryID:  groceries.ID,
	})
	require.NotNil(suite.T(), t.Data)

	assertDecimal(suite.T(), "14.03", t.Data.Amount)
	assert.Equal(suite.T(), "Weekly shopping", t.Data.Description)
	assert.Equal(suite.T(), "Groceries", t.Data.CategoryName)
	assert.Equal(suite.T(), models.TransactionTypeExpense, t.Data.Type)
	assert.True(suite.T(), now.Equal(t.Data.Date))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", t.Data.ID), t.Data.Links.Self)
	assert.Equal(suite.T(), groceries.Links.Self, t.Data.Links.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID

	otherAuth := suite.token("other@example.com")
	foreign := suite.defaultCategory(suite.T(), otherAuth, "Groceries").ID

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
	}{
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromInt(-5), CategoryID: groceries}},
		{"Invalid type", v1.TransactionEditable{Type: "transfer", CategoryID: groceries}},
		{"No category", v1.TransactionEditable{}},
		{"Unknown category", v1.TransactionEditable{CategoryID: uuid.New()}},
		{"Category of another user", v1.TransactionEditable{CategoryID: foreign}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createTestTransaction(t, auth, tt.transaction, http.StatusBadRequest)
			assert.Nil(t, r.Data)
			assert.NotNil(t, r.Error)
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "10", "date": "yesterday" }]`, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "10", "description": "   " }]`, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	auth := suite.token("jo@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{CategoryID: suite.defaultCategory(suite.T(), auth, "Groceries").ID})

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, t.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.controller, suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries")
	salary := suite.defaultCategory(suite.T(), auth, "Salary")
	dining := suite.defaultCategory(suite.T(), auth, "Dining Out / Coffee")

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(100),
		Description: "Weekly shopping",
		Date:        time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC),
		CategoryID:  groceries.ID,
	})

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(2500),
		Description: "January salary",
		Date:        time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		CategoryID:  salary.ID,
		Type:        models.TransactionTypeIncome,
	})

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{
		Amount:      decimal.RequireFromString("4.5"),
		Description: "Coffee with friends",
		Date:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		CategoryID:  dining.ID,
	})

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(50),
		Description: "February shopping",
		Date:        time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		CategoryID:  groceries.ID,
	})

	// Transactions of other users are never listed
	otherAuth := suite.token("other@example.com")
	_ = suite.createTestTransaction(suite.T(), otherAuth, v1.TransactionEditable{
		Description: "Weekly shopping",
		CategoryID:  suite.defaultCategory(suite.T(), otherAuth, "Groceries").ID,
	})

	tests := []struct {
		name      string
		query     string
		len       int
		checkFunc func(t *testing.T, transactions []v1.Transaction)
	}{
		{"All, newest first", "", 4, func(t *testing.T, transactions []v1.Transaction) {
			assert.Equal(t, "February shopping", transactions[0].Description)
			assert.Equal(t, "January salary", transactions[3].Description)
		}},
		{"Start", "start=2024-01-05", 3, nil},
		{"End includes the whole day", "end=2024-01-05", 2, nil},
		{"Start and end", "start=2024-01-02&end=2024-01-31", 2, nil},
		{"Income", "type=income", 1, func(t *testing.T, transactions []v1.Transaction) {
			assert.Equal(t, "Salary", transactions[0].CategoryName)
		}},
		{"Expense", "type=expense", 3, nil},
		{"Category", fmt.Sprintf("category=%s", groceries.ID), 2, nil},
		{"Category not existing", fmt.Sprintf("category=%s", uuid.New()), 0, nil},
		{"Search description", "search=shopping", 2, nil},
		{"Search category name", "search=dining", 1, nil},
		{"Search both", "search=COFFEE", 1, nil},
		{"Search glob", "search=*shopping", 2, nil},
		{"Search no match", "search=rent", 0, nil},
		{"Offset and limit", "offset=1&limit=1", 1, func(t *testing.T, transactions []v1.Transaction) {
			assert.Equal(t, "Coffee with friends", transactions[0].Description)
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, tt.len)

			if tt.checkFunc != nil {
				tt.checkFunc(t, response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidQuery() {
	auth := suite.token("jo@example.com")

	for _, query := range []string{"type=transfer", "category=NotAUUID", "start=yesterday", "end=2024-13-01", "offset=-1"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries")
	shopping := suite.defaultCategory(suite.T(), auth, "Shopping")
	foreign := suite.defaultCategory(suite.T(), suite.token("other@example.com"), "Groceries")

	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Description: "Weekly shopping", CategoryID: groceries.ID})
	path := t.Data.Links.Self

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]any{"amount": "20"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assertDecimal(suite.T(), "20", updated.Data.Amount)
	assert.Equal(suite.T(), "Weekly shopping", updated.Data.Description, "omitted fields stay unchanged")

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]any{"categoryId": shopping.ID}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Shopping", updated.Data.CategoryName)

	tests := []struct {
		name string
		body any
	}{
		{"Category of another user", map[string]any{"categoryId": foreign.ID}},
		{"Unknown category", map[string]any{"categoryId": uuid.New()}},
		{"Invalid type", map[string]any{"type": "transfer"}},
		{"Zero amount", map[string]any{"amount": "0"}},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPatch, path, tt.body, auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateDeletedCategory() {
	auth := suite.token("jo@example.com")
	c := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{})
	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{CategoryID: c.Data.ID})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, c.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The category is only checked when it changes
	r = test.Request(suite.controller, suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{"description": "Still editable"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries")
	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{CategoryID: groceries.ID})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, t.Data.Links.Self, "", suite.token("other@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, t.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, t.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, t.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
