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

func (suite *TestSuiteStandard) TestTransactionCreate() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})

	transaction := createTestTransaction(suite.T(), models.TransactionCreate{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(54.21),
		Type:       models.TransactionTypeExpense,
		Note:       "Weekly groceries",
		CategoryID: &category.Data.ID,
	})

	suite.Assert().Equal("Weekly groceries", transaction.Data.Note)
	suite.Assert().Equal(models.TransactionTypeExpense, transaction.Data.Type)
	suite.Assert().False(transaction.Data.Processed)

	if !transaction.Data.Amount.Equal(decimal.NewFromFloat(54.21)) {
		suite.Assert().Fail("Amount is wrong", transaction.Data.Amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateUnknownAccount() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})
	account := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", models.TransactionCreate{
		Date:                 time.Now(),
		Amount:               decimal.NewFromFloat(10),
		Type:                 models.TransactionTypeExpense,
		CategoryID:           &category.Data.ID,
		SourceAccountID:      account.Data.ID,
		DestinationAccountID: uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionCreateNegativeAmount() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})
	source := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking"})
	destination := createTestAccount(suite.T(), models.AccountCreate{Name: "External"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", models.TransactionCreate{
		Date:                 time.Now(),
		Amount:               decimal.NewFromFloat(-10),
		Type:                 models.TransactionTypeExpense,
		CategoryID:           &category.Data.ID,
		SourceAccountID:      source.Data.ID,
		DestinationAccountID: destination.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrTransactionAmountNotPositive.Error(), response.Error)
}

// TestTransactionFilters verifies the single-column filters and the
// filters that expand to more complex conditions.
func (suite *TestSuiteStandard) TestTransactionFilters() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})
	salary := createTestCategory(suite.T(), models.CategoryCreate{Name: "Salary", Type: models.CategoryTypeRevenue})

	checking := createTestAccount(suite.T(), models.AccountCreate{Name: "Checking"})
	savings := createTestAccount(suite.T(), models.AccountCreate{Name: "Savings"})
	external := createTestAccount(suite.T(), models.AccountCreate{Name: "External"})

	_ = createTestTransaction(suite.T(), models.TransactionCreate{
		Date:                 time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromFloat(2100),
		Type:                 models.TransactionTypeRevenue,
		CategoryID:           &salary.Data.ID,
		SourceAccountID:      external.Data.ID,
		DestinationAccountID: checking.Data.ID,
		Processed:            true,
	})
	_ = createTestTransaction(suite.T(), models.TransactionCreate{
		Date:                 time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromFloat(54.21),
		Type:                 models.TransactionTypeExpense,
		CategoryID:           &category.Data.ID,
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: external.Data.ID,
	})
	_ = createTestTransaction(suite.T(), models.TransactionCreate{
		Date:                 time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromFloat(300),
		Type:                 models.TransactionTypeTransfer,
		SourceAccountID:      checking.Data.ID,
		DestinationAccountID: savings.Data.ID,
	})

	tests := []struct {
		query string
		count int
	}{
		{"type=revenue", 1},
		{"type=transfer", 1},
		{"processed=true", 1},
		{"processed=false", 2},
		{fmt.Sprintf("category=%s", category.Data.ID), 1},
		{fmt.Sprintf("source=%s", external.Data.ID), 1},
		{fmt.Sprintf("destination=%s", savings.Data.ID), 1},
		{fmt.Sprintf("account=%s", checking.Data.ID), 3},
		{fmt.Sprintf("account=%s", savings.Data.ID), 1},
		{"month=2026-03", 2},
		{"month=2026-04", 1},
		{"month=2026-05", 0},
		{"fromDate=2026-03-10T00:00:00Z", 2},
		{"untilDate=2026-03-10T00:00:00Z", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionInvalidMonthFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=March", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

// TestTransactionUpdatePartial verifies that fields that are not part of a
// PATCH request keep their values.
func (suite *TestSuiteStandard) TestTransactionUpdatePartial() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})

	transaction := createTestTransaction(suite.T(), models.TransactionCreate{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(54.21),
		Type:       models.TransactionTypeExpense,
		Note:       "Before",
		CategoryID: &category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"note": "After",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal("After", updated.Data.Note)
	suite.Assert().Equal(models.TransactionTypeExpense, updated.Data.Type)
	suite.Assert().NotNil(updated.Data.CategoryID)

	if !updated.Data.Amount.Equal(decimal.NewFromFloat(54.21)) {
		suite.Assert().Fail("Amount changed on partial update", updated.Data.Amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionToggleProcessed() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})

	transaction := createTestTransaction(suite.T(), models.TransactionCreate{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(54.21),
		Type:       models.TransactionTypeExpense,
		CategoryID: &category.Data.ID,
	})
	suite.Assert().False(transaction.Data.Processed)

	url := transaction.Data.Links.Self + "/processed"

	r := test.Request(suite.T(), http.MethodPatch, url, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var toggled v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &toggled)
	suite.Assert().True(toggled.Data.Processed)

	// Toggling again clears the flag
	r = test.Request(suite.T(), http.MethodPatch, url, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &toggled)
	suite.Assert().False(toggled.Data.Processed)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense})

	transaction := createTestTransaction(suite.T(), models.TransactionCreate{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(54.21),
		Type:       models.TransactionTypeExpense,
		CategoryID: &category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionInvalidID() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/transactions/NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
