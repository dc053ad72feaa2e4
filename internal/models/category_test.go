package models_test

import (
	"github.com/centime-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		CategoryCreate: models.CategoryCreate{Name: " Groceries  ", Note: " Supermarket ", Type: models.CategoryTypeExpense},
	})

	suite.Assert().Equal("Groceries", category.Name)
	suite.Assert().Equal("Supermarket", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryTypeInvalid() {
	err := models.DB.Create(&models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Lottery", Type: "gambling"},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	_ = suite.createTestCategory(models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense},
	})

	err := models.DB.Create(&models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeBill},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryTypeImmutable() {
	category := suite.createTestCategory(models.Category{
		CategoryCreate: models.CategoryCreate{Name: "Groceries", Type: models.CategoryTypeExpense},
	})

	data := models.Category{CategoryCreate: category.CategoryCreate}
	data.Type = models.CategoryTypeBill

	err := models.DB.Model(&category).Select("", "Type").Updates(data).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTypeImmutable)
}

func (suite *TestSuiteStandard) TestCategoryTypes() {
	suite.Assert().Len(models.CategoryTypes(), 4)

	for _, categoryType := range models.CategoryTypes() {
		suite.Assert().True(categoryType.Valid())
	}

	suite.Assert().False(models.CategoryType("gambling").Valid())
}
