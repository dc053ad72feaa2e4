package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrSavingsGoalNotUnique = errors.New("there is already a savings goal for this category")

// SavingsGoal is the target amount to save up for a savings category.
type SavingsGoal struct {
	DefaultModel
	SavingsGoalCreate
	Category Category `json:"-"`
}

type SavingsGoalCreate struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-580b58acbbba" gorm:"uniqueIndex"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" default:"0" gorm:"type:DECIMAL(20,8)"`
}

// SavingsAllocation records how much of a savings category is parked on
// which account.
type SavingsAllocation struct {
	DefaultModel
	SavingsAllocationCreate
	Category Category `json:"-"`
	Account  Account  `json:"-"`
}

type SavingsAllocationCreate struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-580b58acbbba"`
	AccountID  uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Amount     decimal.Decimal `json:"amount" example:"1200" default:"0" gorm:"type:DECIMAL(20,8)"`
}

func (s *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)
	return tx.First(&Category{}, "id = ?", s.CategoryID).Error
}

func (s *SavingsAllocation) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	err := tx.First(&Category{}, "id = ?", s.CategoryID).Error
	if err != nil {
		return err
	}

	return tx.First(&Account{}, "id = ?", s.AccountID).Error
}
