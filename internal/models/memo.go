package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MemoItem is a note-to-self for a month of the year, e.g. an annual bill
// that is expected but not yet entered as a transaction.
type MemoItem struct {
	DefaultModel
	MemoItemCreate
}

type MemoItemCreate struct {
	MonthNumber int             `json:"monthNumber" example:"12"` // 1-12
	Description string          `json:"description" example:"Car insurance renewal" default:""`
	Amount      decimal.Decimal `json:"amount" example:"420.50" default:"0" gorm:"type:DECIMAL(20,8)"`
	IsPaid      bool            `json:"isPaid" example:"false" default:"false"`
}

// BeforeSave verifies the month number and trims the description.
func (m *MemoItem) BeforeSave(_ *gorm.DB) error {
	m.Description = strings.TrimSpace(m.Description)

	if m.MonthNumber < 1 || m.MonthNumber > 12 {
		return fmt.Errorf("%w, got %d", ErrMonthNumberInvalid, m.MonthNumber)
	}

	return nil
}
