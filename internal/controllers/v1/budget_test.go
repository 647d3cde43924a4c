package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/aggregate"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries")

	b := suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries.ID})
	require.NotNil(suite.T(), b.Data)

	assertDecimal(suite.T(), "200", b.Data.Amount)
	assert.Equal(suite.T(), 0, b.Data.Month)
	assert.Equal(suite.T(), 2024, b.Data.Year)
	assert.Equal(suite.T(), "Groceries", b.Data.CategoryName)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/budgets/%s", b.Data.ID), b.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/budgets/%s/usage", b.Data.ID), b.Data.Links.Usage)
	assert.Equal(suite.T(), "http://example.com/v1/months/2024-01", b.Data.Links.Month)

	// Same category in another month is fine
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries.ID, Month: 1, Year: 2024})
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	salary := suite.defaultCategory(suite.T(), auth, "Salary").ID
	foreign := suite.defaultCategory(suite.T(), suite.token("other@example.com"), "Groceries").ID

	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries})

	tests := []struct {
		name   string
		budget v1.BudgetEditable
		status int
	}{
		{"Duplicate", v1.BudgetEditable{CategoryID: groceries}, http.StatusConflict},
		{"Income category", v1.BudgetEditable{CategoryID: salary}, http.StatusBadRequest},
		{"Negative amount", v1.BudgetEditable{CategoryID: groceries, Amount: decimal.NewFromInt(-1), Month: 3, Year: 2024}, http.StatusBadRequest},
		{"Month too large", v1.BudgetEditable{CategoryID: groceries, Month: 12, Year: 2024}, http.StatusBadRequest},
		{"Month negative", v1.BudgetEditable{CategoryID: groceries, Month: -1, Year: 2024}, http.StatusBadRequest},
		{"Two digit year", v1.BudgetEditable{CategoryID: groceries, Month: 3, Year: 24}, http.StatusBadRequest},
		{"No category", v1.BudgetEditable{}, http.StatusBadRequest},
		{"Unknown category", v1.BudgetEditable{CategoryID: uuid.New()}, http.StatusBadRequest},
		{"Category of another user", v1.BudgetEditable{CategoryID: foreign}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createTestBudget(t, auth, tt.budget, tt.status)
			assert.Nil(t, r.Data)
			assert.NotNil(t, r.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateBatch() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	salary := suite.defaultCategory(suite.T(), auth, "Salary").ID

	body := []v1.BudgetEditable{
		{Amount: decimal.NewFromInt(100), Month: 5, Year: 2024, CategoryID: groceries},
		{Amount: decimal.NewFromInt(150), Month: 5, Year: 2024, CategoryID: groceries},
		{Amount: decimal.NewFromInt(150), Month: 5, Year: 2024, CategoryID: salary},
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/budgets", body, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error, "the second budget duplicates the first")
	assert.NotNil(suite.T(), response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	auth := suite.token("jo@example.com")
	b := suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: suite.defaultCategory(suite.T(), auth, "Groceries").ID})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", b.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Usage", b.Data.Links.Usage, http.StatusNoContent, "OPTIONS, GET"},
		{"Detail not existing", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), http.StatusNotFound, ""},
		{"Usage not existing", fmt.Sprintf("http://example.com/v1/budgets/%s/usage", uuid.New()), http.StatusNotFound, ""},
		{"Detail invalid ID", "http://example.com/v1/budgets/NotAUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, tt.path, "", auth)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	shopping := suite.defaultCategory(suite.T(), auth, "Shopping").ID

	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries, Month: 0, Year: 2024})
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: shopping, Month: 0, Year: 2024})
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries, Month: 1, Year: 2024})
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries, Month: 0, Year: 2025})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"January", "month=0", 3},
		{"February", "month=1", 1},
		{"2024", "year=2024", 3},
		{"January 2024", "month=0&year=2024", 2},
		{"December 2023", "month=11&year=2023", 0},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=january", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUsage() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	shopping := suite.defaultCategory(suite.T(), auth, "Shopping").ID

	b := suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries, Amount: decimal.NewFromInt(200)})

	usage := func(t *testing.T) aggregate.BudgetUsage {
		r := test.Request(suite.controller, t, http.MethodGet, b.Data.Links.Usage, "", auth)
		test.AssertHTTPStatus(t, &r, http.StatusOK)

		var response v1.BudgetUsageResponse
		test.DecodeResponse(t, &r, &response)
		assert.Equal(t, "Groceries", response.Data.CategoryName)
		return response.Data.Usage
	}

	u := usage(suite.T())
	assertDecimal(suite.T(), "0", u.Spent)
	assertDecimal(suite.T(), "200", u.Remaining)
	assert.Equal(suite.T(), aggregate.UsageLow, u.Level)

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(150), CategoryID: groceries})

	// Not counted: other category, other month, income
	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(1000), CategoryID: shopping})
	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(1000), CategoryID: groceries, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(1000), CategoryID: groceries, Type: "income"})

	u = usage(suite.T())
	assertDecimal(suite.T(), "150", u.Spent)
	assertDecimal(suite.T(), "50", u.Remaining)
	assertDecimal(suite.T(), "75", u.Percentage)
	assert.Equal(suite.T(), aggregate.UsageHigh, u.Level)

	_ = suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{Amount: decimal.NewFromInt(100), CategoryID: groceries, Date: time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)})

	u = usage(suite.T())
	assertDecimal(suite.T(), "250", u.Spent)
	assertDecimal(suite.T(), "0", u.Remaining)
	assertDecimal(suite.T(), "100", u.Percentage)
	assert.Equal(suite.T(), aggregate.UsageCritical, u.Level)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	shopping := suite.defaultCategory(suite.T(), auth, "Shopping").ID
	salary := suite.defaultCategory(suite.T(), auth, "Salary").ID

	b := suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries})
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: shopping})
	path := b.Data.Links.Self

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]any{"amount": "300"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assertDecimal(suite.T(), "300", updated.Data.Amount)
	assert.Equal(suite.T(), groceries, updated.Data.CategoryID, "omitted fields stay unchanged")

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]any{"month": 6}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "http://example.com/v1/months/2024-07", updated.Data.Links.Month)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Collides with another budget", map[string]any{"month": 0, "categoryId": shopping}, http.StatusConflict},
		{"Income category", map[string]any{"categoryId": salary}, http.StatusBadRequest},
		{"Invalid month", map[string]any{"month": 12}, http.StatusBadRequest},
		{"Broken body", `{ "month": "June" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPatch, path, tt.body, auth)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), map[string]any{"amount": "1"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	auth := suite.token("jo@example.com")
	groceries := suite.defaultCategory(suite.T(), auth, "Groceries").ID
	b := suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, b.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, b.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The slot is free again
	_ = suite.createTestBudget(suite.T(), auth, v1.BudgetEditable{CategoryID: groceries})
}
