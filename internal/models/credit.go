package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCreditDetailNotUnique = errors.New("there are already credit details for this category")

// CreditDetail holds the loan details for a credit-backed category.
type CreditDetail struct {
	DefaultModel
	CreditDetailCreate
	Category Category `json:"-"`
}

type CreditDetailCreate struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-580b58acbbba" gorm:"uniqueIndex"`
	BorrowedAmount decimal.Decimal `json:"borrowedAmount" example:"12000" default:"0" gorm:"type:DECIMAL(20,8)"`
	InterestAmount decimal.Decimal `json:"interestAmount" example:"780" default:"0" gorm:"type:DECIMAL(20,8)"`
	InterestRate   decimal.Decimal `json:"interestRate" example:"3.25" default:"0" gorm:"type:DECIMAL(20,8)"` // Percent
	MonthlyPayment decimal.Decimal `json:"monthlyPayment" example:"213" default:"0" gorm:"type:DECIMAL(20,8)"`
	AlreadyRepaid  decimal.Decimal `json:"alreadyRepaid" example:"2556" default:"0" gorm:"type:DECIMAL(20,8)"`
	DurationMonths int             `json:"durationMonths" example:"60" default:"0"`
}

func (c *CreditDetail) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)
	return tx.First(&Category{}, "id = ?", c.CategoryID).Error
}

// RemainingAmount returns the amount of the loan that is still to be repaid.
func (c CreditDetail) RemainingAmount() decimal.Decimal {
	return c.BorrowedAmount.Add(c.InterestAmount).Sub(c.AlreadyRepaid)
}
