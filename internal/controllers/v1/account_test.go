package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/centime-app/backend/internal/controllers/v1"
	"github.com/centime-app/backend/internal/models"
	"github.com/centime-app/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsEmptyList() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// An empty list must be returned, not null
	suite.Assert().NotNil(response.Data)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestAccountCreate() {
	account := createTestAccount(suite.T(), models.AccountCreate{
		Name:           "Checking",
		Note:           "The daily driver",
		InitialBalance: decimal.NewFromFloat(720.34),
		IsMainAccount:  true,
	})

	suite.Assert().Equal("Checking", account.Data.Name)
	suite.Assert().Equal("The daily driver", account.Data.Note)
	suite.Assert().True(account.Data.IsMainAccount)
	suite.Assert().False(account.Data.IsSavingsAccount)
	suite.Assert().LessOrEqual(time.Since(account.Data.CreatedAt), test.TOLERANCE)

	if !account.Data.InitialBalance.Equal(decimal.NewFromFloat(720.34)) {
		suite.Assert().Fail("Initial balance is wrong", account.Data.InitialBalance)
	}
}

func (suite *TestSuiteStandard) TestAccountCreateDuplicateName() {
	_ = createTestAccount(suite.T(), models.AccountCreate{Name: "Unique Account"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", models.AccountCreate{Name: "Unique Account"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrAccountNameNotUnique.Error(), response.Error)
}

func (suite *TestSuiteStandard) TestAccountCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", `{ broken json`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

// TestAccountBalances verifies that the three computed balances are part of
// every account in API responses.
func (suite *TestSuiteStandard) TestAccountBalances() {
	checking := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking", InitialBalance: decimal.NewFromFloat(1000)})
	external := createTestAccount(suite.T(), models.AccountCreate{Name: "External"})

	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})

	// A cleared expense of 200 and a scheduled expense of 50
	_ = createTestTransaction(suite.T(), models.TransactionCreate{
		Date:                 time.Now(),
		Amount:               decimal.NewFromFloat(200),
		Type:                 models.TransactionTypeExpense,
		CategoryID:           &category.Data.ID,
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: external.Data.ID,
		Processed:            true,
	})
	_ = createTestTransaction(suite.T(), models.TransactionCreate{
		Date:                 time.Now(),
		Amount:               decimal.NewFromFloat(50),
		Type:                 models.TransactionTypeExpense,
		CategoryID:           &category.Data.ID,
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: external.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, checking.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Real.Equal(decimal.NewFromFloat(800)), "Real is %s, expected 800", response.Data.Real)
	assert.True(suite.T(), response.Data.Upcoming.Equal(decimal.NewFromFloat(750)), "Upcoming is %s, expected 750", response.Data.Upcoming)
	assert.True(suite.T(), response.Data.Pending.Equal(decimal.NewFromFloat(-50)), "Pending is %s, expected -50", response.Data.Pending)
}

func (suite *TestSuiteStandard) TestAccountGetFilter() {
	_ = createTestAccount(suite.T(), models.AccountCreate{Name: "Checking", IsMainAccount: true})
	_ = createTestAccount(suite.T(), models.AccountCreate{Name: "Savings", IsSavingsAccount: true})
	_ = createTestAccount(suite.T(), models.AccountCreate{Name: "Old", Archived: true})

	tests := []struct {
		query string
		count int
	}{
		{"name=Checking", 1},
		{"isSavingsAccount=true", 1},
		{"isMainAccount=true", 1},
		{"archived=true", 1},
		{"archived=false", 2},
		{"name=DoesNotExist", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts?archived=maybe", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestAccountNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestAccountInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking", Note: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"note": "After",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal("After", updated.Data.Note)

	// Fields that were not part of the request are unchanged
	suite.Assert().Equal("Checking", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := createTestAccount(suite.T(), models.AccountCreate{Name: "Doomed"})

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	account := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking"})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAccountDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
