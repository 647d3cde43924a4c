package v1_test

import (
	"net/http"
	"testing"

	"github.com/smart-budget/backend/internal/aggregate"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonth() {
	auth := suite.token("jo@example.com")
	suite.seedJanuary(auth)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/months/2024-01", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	month := response.Data
	assert.Equal(suite.T(), "2024-01", month.Month.String())
	assertDecimal(suite.T(), "2500", month.Income)

	require.Len(suite.T(), month.Budgets, 2)
	assert.Equal(suite.T(), "Groceries", month.Budgets[0].CategoryName)
	assertDecimal(suite.T(), "100", month.Budgets[0].Usage.Spent)
	assertDecimal(suite.T(), "50", month.Budgets[0].Usage.Percentage)
	assert.Equal(suite.T(), "Shopping", month.Budgets[1].CategoryName)
	assertDecimal(suite.T(), "70", month.Budgets[1].Usage.Remaining)

	// Expenses without a budget count towards the overall usage
	assertDecimal(suite.T(), "300", month.Usage.Allocated)
	assertDecimal(suite.T(), "150", month.Usage.Spent)
	assertDecimal(suite.T(), "50", month.Usage.Percentage)
	assert.Equal(suite.T(), aggregate.UsageLow, month.Usage.Level)
}

func (suite *TestSuiteStandard) TestMonthWithoutBudgets() {
	auth := suite.token("jo@example.com")
	suite.seedJanuary(auth)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/months/2023-12", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Budgets, 0)
	assertDecimal(suite.T(), "50", response.Data.Usage.Spent)
	assertDecimal(suite.T(), "0", response.Data.Usage.Percentage)
	assertDecimal(suite.T(), "0", response.Data.Usage.Remaining)
}

func (suite *TestSuiteStandard) TestMonthFails() {
	auth := suite.token("jo@example.com")

	for _, month := range []string{"2024-13", "January", "2024-1-1", "2024"} {
		suite.T().Run(month, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/months/"+month, "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.MonthResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/months/2024-01", "", suite.token("jo@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
