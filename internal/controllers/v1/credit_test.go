package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centime-app/backend/internal/controllers/v1"
	"github.com/centime-app/backend/internal/models"
	"github.com/centime-app/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func createTestCreditDetail(t *testing.T, c models.CreditDetailCreate) v1.CreditDetailResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/credit-details", c)
	test.AssertHTTPStatus(t, http.StatusCreated, &r)

	var d v1.CreditDetailResponse
	test.DecodeResponse(t, &r, &d)

	return d
}

func (suite *TestSuiteStandard) TestCreditDetailCreate() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Car Loan", Type: models.CategoryTypeBill, IsCredit: true})

	detail := createTestCreditDetail(suite.T(), models.CreditDetailCreate{
		CategoryID:     category.Data.ID,
		BorrowedAmount: decimal.NewFromFloat(12000),
		InterestAmount: decimal.NewFromFloat(780),
		InterestRate:   decimal.NewFromFloat(3.25),
		MonthlyPayment: decimal.NewFromFloat(213),
		AlreadyRepaid:  decimal.NewFromFloat(2556),
		DurationMonths: 60,
	})

	suite.Assert().Equal(category.Data.ID, detail.Data.CategoryID)
	suite.Assert().Equal(60, detail.Data.DurationMonths)

	// 12000 borrowed + 780 interest - 2556 repaid
	if !detail.Data.RemainingAmount.Equal(decimal.NewFromFloat(10224)) {
		suite.Assert().Fail("Remaining amount is wrong", detail.Data.RemainingAmount)
	}
}

func (suite *TestSuiteStandard) TestCreditDetailUniquePerCategory() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Car Loan", Type: models.CategoryTypeBill, IsCredit: true})
	_ = createTestCreditDetail(suite.T(), models.CreditDetailCreate{CategoryID: category.Data.ID, BorrowedAmount: decimal.NewFromFloat(12000)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/credit-details", models.CreditDetailCreate{
		CategoryID:     category.Data.ID,
		BorrowedAmount: decimal.NewFromFloat(9000),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrCreditDetailNotUnique.Error(), response.Error)
}

func (suite *TestSuiteStandard) TestCreditDetailUnknownCategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/credit-details", models.CreditDetailCreate{
		CategoryID:     uuid.New(),
		BorrowedAmount: decimal.NewFromFloat(12000),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

// TestCreditDetailUpdateRecomputes verifies that the derived remaining
// amount follows updates to the repaid amount.
func (suite *TestSuiteStandard) TestCreditDetailUpdateRecomputes() {
	category := createTestCategory(suite.T(), models.CategoryCreate{Name: "Car Loan", Type: models.CategoryTypeBill, IsCredit: true})
	detail := createTestCreditDetail(suite.T(), models.CreditDetailCreate{
		CategoryID:     category.Data.ID,
		BorrowedAmount: decimal.NewFromFloat(12000),
		InterestAmount: decimal.NewFromFloat(780),
	})

	r := test.Request(suite.T(), http.MethodPatch, detail.Data.Links.Self, map[string]any{
		"alreadyRepaid": 5000,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.CreditDetailResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	if !updated.Data.RemainingAmount.Equal(decimal.NewFromFloat(7780)) {
		suite.Assert().Fail("Remaining amount is wrong", updated.Data.RemainingAmount)
	}
}
