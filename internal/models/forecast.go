package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetForecast is the planned amount for a category in a month of the year.
//
// Forecasts are year independent: the forecast for month 3 applies to March
// of every year, representing an annually recurring plan.
type BudgetForecast struct {
	DefaultModel
	BudgetForecastCreate
	Category Category `json:"-"`
}

type BudgetForecastCreate struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-580b58acbbba" gorm:"uniqueIndex:forecast_category_id_month_number"`
	MonthNumber int             `json:"monthNumber" example:"3" gorm:"uniqueIndex:forecast_category_id_month_number"` // 1-12
	Amount      decimal.Decimal `json:"amount" example:"250" default:"0" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrForecastMonthNotUnique = errors.New("you can not create multiple forecasts for the same category and month")
	ErrMonthNumberInvalid     = errors.New("the month number must be between 1 and 12")
)

// BeforeSave verifies the month number.
func (f *BudgetForecast) BeforeSave(_ *gorm.DB) error {
	if f.MonthNumber < 1 || f.MonthNumber > 12 {
		return fmt.Errorf("%w, got %d", ErrMonthNumberInvalid, f.MonthNumber)
	}

	return nil
}

func (f *BudgetForecast) BeforeCreate(tx *gorm.DB) error {
	_ = f.DefaultModel.BeforeCreate(tx)

	// The category must exist
	return tx.First(&Category{}, "id = ?", f.CategoryID).Error
}
