package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTheme() {
	auth := suite.token("jo@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/preferences/theme", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ThemeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ThemeLight, response.Data.Theme, "light is the default")

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/preferences/theme", v1.ThemeObject{Theme: models.ThemeDark}, auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/preferences/theme", "", auth)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ThemeDark, response.Data.Theme)
}

func (suite *TestSuiteStandard) TestThemeFails() {
	auth := suite.token("jo@example.com")

	tests := []struct {
		name string
		body any
	}{
		{"Unknown theme", v1.ThemeObject{Theme: "blue"}},
		{"No theme", map[string]string{}},
		{"Empty body", ""},
		{"Wrong type", `{ "theme": true }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPut, "http://example.com/v1/preferences/theme", tt.body, auth)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestThemeOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/preferences/theme", "", suite.token("jo@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", r.Header().Get("allow"))
}
