package models_test

import (
	"github.com/centime-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestForecastMonthInvalid() {
	category := suite.createTestCategory(models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Rent", Type: models.CategoryTypeBill},
	})

	for _, month := range []int{0, 13, -1} {
		err := models.DB.Create(&models.BudgetForecast{
			BudgetForecastCreate: models.BudgetForecastCreate{CategoryID: category.ID, MonthNumber: month},
		}).Error

		suite.Assert().ErrorIs(err, models.ErrMonthNumberInvalid, "month %d must be rejected", month)
	}
}

func (suite *TestSuiteStandard) TestForecastMonthNotUnique() {
	category := suite.createTestCategory(models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Rent", Type: models.CategoryTypeBill},
	})

	err := models.DB.Create(&models.BudgetForecast{
		BudgetForecastCreate: models.BudgetForecastCreate{CategoryID: category.ID, MonthNumber: 3, Amount: decimal.NewFromInt(800)},
	}).Error
	suite.Assert().Nil(err)

	err = models.DB.Create(&models.BudgetForecast{
		BudgetForecastCreate: models.BudgetForecastCreate{CategoryID: category.ID, MonthNumber: 3, Amount: decimal.NewFromInt(900)},
	}).Error
	suite.Assert().ErrorIs(err, models.ErrForecastMonthNotUnique)

	// A different month is allowed
	err = models.DB.Create(&models.BudgetForecast{
		BudgetForecastCreate: models.BudgetForecastCreate{CategoryID: category.ID, MonthNumber: 4, Amount: decimal.NewFromInt(800)},
	}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestForecastCategoryMustExist() {
	err := models.DB.Create(&models.BudgetForecast{
		BudgetForecastCreate: models.BudgetForecastCreate{CategoryID: uuid.New(), MonthNumber: 3},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
