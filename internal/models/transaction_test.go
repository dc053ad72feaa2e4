package models_test

import (
	"time"

	"github.com/centime-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	_, _, _, transaction := suite.defaultLedger()

	transaction = suite.createTestTransaction(transaction)
	suite.Assert().True(transaction.Date.After(time.Time{}), "date is not set on create")
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	_, _, _, transaction := suite.defaultLedger()
	transaction.Amount = decimal.NewFromInt(-10)

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)

	transaction.Amount = decimal.Zero
	err = models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	_, _, _, transaction := suite.defaultLedger()
	transaction.Type = "donation"

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionSourceEqualsDestination() {
	_, source, _, transaction := suite.defaultLedger()
	transaction.DestinationAccountID = source.ID

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrSourceEqualsDestination)
}

func (suite *TestSuiteStandard) TestTransactionRequiresCategory() {
	_, _, _, transaction := suite.defaultLedger()
	transaction.CategoryID = nil

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionNoCategory)
}

func (suite *TestSuiteStandard) TestTransferMustNotHaveCategory() {
	_, _, _, transaction := suite.defaultLedger()
	transaction.Type = models.TransactionTypeTransfer

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransferHasCategory)

	transaction.CategoryID = nil
	_ = suite.createTestTransaction(transaction)
}

func (suite *TestSuiteStandard) TestTransactionCategoryTypeMismatch() {
	_, _, _, transaction := suite.defaultLedger()
	transaction.Type = models.TransactionTypeRevenue

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionCategoryTypeMismatch)
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Assert().Nil(err)

	_, _, _, transaction := suite.defaultLedger()
	transaction.Date = time.Date(2026, 3, 14, 12, 0, 0, 0, berlin)

	transaction = suite.createTestTransaction(transaction)
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}
