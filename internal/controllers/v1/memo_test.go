package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centime-app/backend/internal/controllers/v1"
	"github.com/centime-app/backend/internal/models"
	"github.com/centime-app/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestMemoItem(t *testing.T, c models.MemoItemCreate) v1.MemoItemResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/memos", c)
	test.AssertHTTPStatus(t, http.StatusCreated, &r)

	var m v1.MemoItemResponse
	test.DecodeResponse(t, &r, &m)

	return m
}

func (suite *TestSuiteStandard) TestMemoItemCreate() {
	memo := createTestMemoItem(suite.T(), models.MemoItemCreate{
		MonthNumber: 12,
		Description: "  Car insurance renewal  ",
		Amount:      decimal.NewFromFloat(420.50),
	})

	suite.Assert().Equal(12, memo.Data.MonthNumber)
	suite.Assert().Equal("Car insurance renewal", memo.Data.Description)
	suite.Assert().False(memo.Data.IsPaid)
}

func (suite *TestSuiteStandard) TestMemoItemCreateInvalidMonth() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/memos", models.MemoItemCreate{
		MonthNumber: 0,
		Description: "No month",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestMemoItemsFilter() {
	_ = createTestMemoItem(suite.T(), models.MemoItemCreate{MonthNumber: 3, Description: "Road tax"})
	_ = createTestMemoItem(suite.T(), models.MemoItemCreate{MonthNumber: 12, Description: "Car insurance renewal"})
	_ = createTestMemoItem(suite.T(), models.MemoItemCreate{MonthNumber: 12, Description: "Dentist", IsPaid: true})

	tests := []struct {
		query string
		count int
	}{
		{"month=12", 2},
		{"month=3", 1},
		{"isPaid=true", 1},
		{"isPaid=false", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/memos?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.MemoItemListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestMemoItemMarkPaid verifies that marking a memo item as paid does not
// need the month number in the request.
func (suite *TestSuiteStandard) TestMemoItemMarkPaid() {
	memo := createTestMemoItem(suite.T(), models.MemoItemCreate{MonthNumber: 12, Description: "Car insurance renewal"})

	r := test.Request(suite.T(), http.MethodPatch, memo.Data.Links.Self, map[string]any{
		"isPaid": true,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.MemoItemResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().True(updated.Data.IsPaid)
	suite.Assert().Equal(12, updated.Data.MonthNumber)
}

func (suite *TestSuiteStandard) TestMemoItemDelete() {
	memo := createTestMemoItem(suite.T(), models.MemoItemCreate{MonthNumber: 6, Description: "Doomed"})

	r := test.Request(suite.T(), http.MethodDelete, memo.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, memo.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
