package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// register creates a user with the email address and returns the session.
func (suite *TestSuiteStandard) register(email string) v1.SessionResponse {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/auth/register", map[string]string{
		"name":  "Jo Doe",
		"email": email,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var session v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &session)
	require.NotNil(suite.T(), session.Data)
	return session
}

// token registers a user and returns its Authorization header.
func (suite *TestSuiteStandard) token(email string) map[string]string {
	return test.Bearer(suite.register(email).Data.Token)
}

// defaultCategory returns the seeded category with the name.
func (suite *TestSuiteStandard) defaultCategory(t *testing.T, auth map[string]string, name string) v1.Category {
	r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/categories?limit=-1", "", auth)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(t, &r, &categories)

	for _, c := range categories.Data {
		if c.Name == name {
			return c
		}
	}

	require.FailNow(t, "category not found", name)
	return v1.Category{}
}

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, auth map[string]string, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = "Testing"
	}

	if c.Color == "" {
		c.Color = "#123ABC"
	}

	if c.Icon == "" {
		c.Icon = "test-tube"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{c}, auth)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)
	require.Len(t, category.Data, 1)

	return category.Data[0]
}

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, auth map[string]string, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(10.5)
	}

	if c.Description == "" {
		c.Description = "Test transaction"
	}

	if c.Date.IsZero() {
		c.Date = now
	}

	if c.Type == "" {
		c.Type = models.TransactionTypeExpense
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{c}, auth)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)
	require.Len(t, transaction.Data, 1)

	return transaction.Data[0]
}

func (suite *TestSuiteStandard) createTestBudget(t *testing.T, auth map[string]string, c v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromInt(200)
	}

	if c.Year == 0 {
		c.Year = now.Year()
		c.Month = int(now.Month()) - 1
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{c}, auth)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var budget v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &budget)
	require.Len(t, budget.Data, 1)

	return budget.Data[0]
}

// assertDecimal compares decimals by value, "10.50" equals "10.5".
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
