package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CategoryType groups categories by the direction money flows in them.
type CategoryType string

const (
	CategoryTypeRevenue CategoryType = "revenue"
	CategoryTypeBill    CategoryType = "bill"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeSavings CategoryType = "savings"
)

// CategoryTypes returns all valid category types.
func CategoryTypes() []CategoryType {
	return []CategoryType{CategoryTypeRevenue, CategoryTypeBill, CategoryTypeExpense, CategoryTypeSavings}
}

// Valid reports whether the category type is one of the defined types.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeRevenue, CategoryTypeBill, CategoryTypeExpense, CategoryTypeSavings:
		return true
	}

	return false
}

// Category represents a budgeting category, e.g. "Groceries".
type Category struct {
	DefaultModel
	CategoryCreate
}

type CategoryCreate struct {
	Name      string       `json:"name" example:"Groceries" default:"" gorm:"uniqueIndex"`
	Type      CategoryType `json:"type" example:"expense" gorm:"type:VARCHAR(16)"`
	Note      string       `json:"note" example:"Supermarket and market stalls" default:""`
	IsCredit  bool         `json:"isCredit" example:"false" default:"false"` // Marks categories backed by a loan or credit instrument
	SortOrder int          `json:"sortOrder" example:"3" default:"0"`
}

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryTypeInvalid   = errors.New("the specified category type is invalid")
	ErrCategoryTypeImmutable = errors.New("the category type cannot be changed after creation")
)

// BeforeSave trims whitespace from all strings and verifies the type.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if !c.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrCategoryTypeInvalid, c.Type)
	}

	return nil
}

// BeforeUpdate rejects changes to the category type. Forecasts and
// transactions reference the type transitively, changing it would
// invalidate historical data.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Type") {
		return ErrCategoryTypeImmutable
	}

	return nil
}
