package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	auth := suite.token("jo@example.com")

	c := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "  Pets ", Group: "Personal"})
	require.NotNil(suite.T(), c.Data)
	assert.Equal(suite.T(), "Pets", c.Data.Name)
	assert.False(suite.T(), c.Data.Income)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID), c.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?category=%s", c.Data.ID), c.Data.Links.Transactions)

	income := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "Rental Income", Group: models.IncomeGroup})
	assert.True(suite.T(), income.Data.Income)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	auth := suite.token("jo@example.com")

	tests := []struct {
		name     string
		body     any
		status   int
		expected []bool // For each created item, is it expected to be an error?
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, nil},
		{"Not a list", `{ "name": "Pets" }`, http.StatusBadRequest, nil},
		{"Invalid color", `[{ "name": "Pets", "color": "red", "icon": "paw" }]`, http.StatusBadRequest, []bool{true}},
		{"No icon", `[{ "name": "Pets", "color": "#123456" }]`, http.StatusBadRequest, []bool{true}},
		{
			"One good, one bad",
			`[{ "name": "Pets", "color": "#123456", "icon": "paw" }, { "name": "", "color": "#123456", "icon": "paw" }]`,
			http.StatusBadRequest,
			[]bool{false, true},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/categories", tt.body, auth)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.expected == nil {
				assert.NotNil(t, response.Error)
				return
			}

			require.Len(t, response.Data, len(tt.expected))
			for i, isError := range tt.expected {
				assert.Equal(t, isError, response.Data[i].Error != nil)
				assert.Equal(t, isError, response.Data[i].Data == nil)
			}
		})
	}
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	auth := suite.token("jo@example.com")
	other := suite.token("other@example.com")

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category of another user", suite.createTestCategory(suite.T(), other, v1.CategoryEditable{}).Data.ID.String(), http.StatusNotFound},
		{"Category exists", suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "", auth)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	auth := suite.token("jo@example.com")
	c := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{})
	foreign := suite.createTestCategory(suite.T(), suite.token("other@example.com"), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), `{ "name": "Changed" }`, auth)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	auth := suite.token("jo@example.com")
	_ = suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "Pet Food", Group: "Pets"})
	_ = suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "Vet", Group: "Pets"})

	// Categories of other users are never listed
	_ = suite.createTestCategory(suite.T(), suite.token("other@example.com"), v1.CategoryEditable{Name: "Vet", Group: "Pets"})

	tests := []struct {
		name  string
		query string
		len   int
		total int
	}{
		{"Group Income", "group=Income", 6, 6},
		{"Group Pets", "group=Pets", 2, 2},
		{"Group not existing", "group=Nope", 0, 0},
		{"Search 'coffee'", "search=coffee", 1, 1},
		{"Search 'PET'", "search=PET", 2, 2},
		{"Search glob", "search=*insurance", 2, 2},
		{"Search and group", "search=vet&group=Pets", 1, 1},
		{"Default limit", "", 33, 33},
		{"Limit 2", "limit=2", 2, 33},
		{"Offset 30", "offset=30", 3, 33},
		{"Offset 40", "offset=40", 0, 33},
		{"Limit 0", "limit=0", 0, 33},
		{"Limit -1", "limit=-1", 33, 33},
		{"Maximum offset", "offset=18446744073709551615", 0, 33},
		{"Maximum limit", "offset=1&limit=9223372036854775807", 32, 33},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetInvalidQuery() {
	auth := suite.token("jo@example.com")

	for _, query := range []string{"offset=-1", "limit=many"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", query), "", auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	auth := suite.token("jo@example.com")
	c := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "Pets", Group: "Personal"})
	path := fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID)

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]string{"color": "#000000"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "#000000", updated.Data.Color)
	assert.Equal(suite.T(), "Pets", updated.Data.Name, "omitted fields stay unchanged")
	assert.Equal(suite.T(), "Personal", updated.Data.Group)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]string{"group": "Income"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Income)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, path, map[string]string{"color": "red"}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, path, `{ "name": 2 }`, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	auth := suite.token("jo@example.com")
	c := suite.createTestCategory(suite.T(), auth, v1.CategoryEditable{Name: "Pets"})
	t := suite.createTestTransaction(suite.T(), auth, v1.TransactionEditable{CategoryID: c.Data.ID})
	path := fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID)

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, path, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, path, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, t.Data.Links.Self, "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	assert.Equal(suite.T(), models.UnknownCategoryName, transaction.Data.CategoryName, "transactions are kept and show an unknown category")
}
