package models

import (
	"time"

	"gorm.io/gorm"
)

// Settings is the single-row budgeting configuration.
//
// BudgetStartDate and StartsBeforeMonth control how a (month, year)
// selection maps to the date interval of a budget month. With an unset
// start date the budget month is the calendar month. With a start date,
// its day of month is the first day of the budget month; with
// StartsBeforeMonth the budget month begins on that day in the preceding
// calendar month (for budgets running e.g. from the 25th to the 24th).
type Settings struct {
	Timestamps
	ID uint `json:"-" gorm:"primaryKey"`
	SettingsCreate
}

type SettingsCreate struct {
	BudgetStartDate   *time.Time `json:"budgetStartDate" example:"2023-01-25T00:00:00Z"`
	StartsBeforeMonth bool       `json:"startsBeforeMonth" example:"true" default:"false"`
}

// GetSettings returns the configuration, creating the row on first use.
func GetSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.FirstOrCreate(&settings, Settings{ID: 1}).Error
	return settings, err
}
