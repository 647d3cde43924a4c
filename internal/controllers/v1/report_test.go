package v1_test

import (
	"encoding/csv"
	"net/http"
	"testing"

	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReportJSON() {
	auth := suite.token("jo@example.com")
	suite.seedJanuary(auth)

	for _, path := range []string{"http://example.com/v1/reports/2024-01", "http://example.com/v1/reports/2024-01?format=json"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, path, "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			report := response.Data
			assert.Equal(t, "Monthly Finance Report - January 2024", report.Title)
			assert.Equal(t, "Jo Doe", report.Recipient)
			assert.Equal(t, "January 20, 2024", report.GeneratedOn)
			assert.Equal(t, "USD", report.Currency)
			assert.Equal(t, "USD 2,350.00", report.Totals.Balance)

			require.Len(t, report.Rows, 4)
			assert.Equal(t, "Coffee", report.Rows[0].Description)
			assert.Equal(t, "-USD 20.00", report.Rows[0].Amount)
			assert.Equal(t, "+USD 2,500.00", report.Rows[3].Amount)

			require.Len(t, report.TopCategories, 3)
			assert.Equal(t, "Groceries", report.TopCategories[0].Name)
			assert.Equal(t, "Shopping", report.TopCategories[1].Name)

			assertDecimal(t, "2500", report.Comparison.Income[0])
			assertDecimal(t, "150", report.Comparison.Expense[0])
			assertDecimal(t, "0", report.Comparison.Expense[1])
		})
	}
}

func (suite *TestSuiteStandard) TestReportCSV() {
	auth := suite.token("jo@example.com")
	suite.seedJanuary(auth)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/reports/2024-01?format=csv", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="smart-budget-report-2024-1.csv"`, r.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(r.Body).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 5)
	assert.Equal(suite.T(), []string{"Date", "Category", "Description", "Amount"}, records[0])
	assert.Equal(suite.T(), []string{"January 20, 2024", "Dining Out / Coffee", "Coffee", "-USD 20.00"}, records[1])
}

func (suite *TestSuiteStandard) TestReportFails() {
	auth := suite.token("jo@example.com")

	tests := []struct {
		name string
		path string
	}{
		{"Invalid month", "http://example.com/v1/reports/2024-00"},
		{"Unknown format", "http://example.com/v1/reports/2024-01?format=pdf"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, tt.path, "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestReportOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/reports/2024-01", "", suite.token("jo@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
