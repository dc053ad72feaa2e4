package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/centime-app/backend/internal/controllers/v1"
	"github.com/centime-app/backend/internal/test"
)

func (suite *TestSuiteStandard) TestSettingsDefault() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Nil(response.Data.BudgetStartDate)
	suite.Assert().False(response.Data.StartsBeforeMonth)
}

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"budgetStartDate":   "2026-01-25T00:00:00Z",
		"startsBeforeMonth": true,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if suite.Assert().NotNil(response.Data.BudgetStartDate) {
		suite.Assert().Equal(time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), response.Data.BudgetStartDate.UTC())
	}
	suite.Assert().True(response.Data.StartsBeforeMonth)
}

// TestSettingsShiftPeriod verifies that the configured start date moves the
// date interval of a budget month.
func (suite *TestSuiteStandard) TestSettingsShiftPeriod() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"budgetStartDate":   "2026-01-25T00:00:00Z",
		"startsBeforeMonth": true,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget/3/2026", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetDataResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The budget month of March runs from February 25th to March 25th
	suite.Assert().Equal(time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), response.Data.Period.Start)
	suite.Assert().Equal(time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), response.Data.Period.End)
}
