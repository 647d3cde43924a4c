package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	session := suite.register("  Jo@Example.com ")

	assert.Equal(suite.T(), "jo@example.com", session.Data.User.Email)
	assert.NotEmpty(suite.T(), session.Data.Token)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/categories?limit=-1", "", test.Bearer(session.Data.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	assert.Equal(suite.T(), 31, categories.Pagination.Total, "default categories are seeded")
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	_ = suite.register("taken@example.com")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "name": 2`, http.StatusBadRequest},
		{"No name", map[string]string{"email": "new@example.com"}, http.StatusBadRequest},
		{"Invalid email", map[string]string{"name": "Jo", "email": "not-an-email"}, http.StatusBadRequest},
		{"Duplicate email", map[string]string{"name": "Jo", "email": "TAKEN@example.com"}, http.StatusConflict},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var session v1.SessionResponse
			test.DecodeResponse(t, &r, &session)
			assert.Nil(t, session.Data)
			assert.NotNil(t, session.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	registered := suite.register("jo@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginInput{Email: "jo@example.com"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var session v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &session)
	assert.Equal(suite.T(), registered.Data.User.ID, session.Data.User.ID)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", test.Bearer(session.Data.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginInput{Email: "nobody@example.com"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLogout() {
	auth := suite.token("jo@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/auth/logout", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/auth/logout", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	_ = suite.register("jo@example.com")

	tests := []struct {
		name    string
		headers []map[string]string
	}{
		{"No header", nil},
		{"Empty bearer", []map[string]string{{"Authorization": "Bearer "}}},
		{"Basic auth", []map[string]string{{"Authorization": "Basic am86"}}},
		{"Garbage token", []map[string]string{test.Bearer("not.a.token")}},
	}

	paths := []string{"/v1/users/me", "/v1/categories", "/v1/transactions", "/v1/budgets", "/v1/dashboard", "/v1/months/2024-01", "/v1/reports/2024-01", "/v1/preferences/theme"}

	for _, tt := range tests {
		for _, path := range paths {
			suite.T().Run(tt.name+" "+path, func(t *testing.T) {
				r := test.Request(suite.controller, t, http.MethodGet, "http://example.com"+path, "", tt.headers...)
				test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
				assert.NotEmpty(t, r.Body.String())
			})
		}
	}
}
