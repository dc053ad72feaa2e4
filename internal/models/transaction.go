package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the type of money movement a transaction records.
//
// For every type except transfer it matches the type of the category the
// transaction is booked against.
type TransactionType string

const (
	TransactionTypeRevenue  TransactionType = "revenue"
	TransactionTypeBill     TransactionType = "bill"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeSavings  TransactionType = "savings"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Valid reports whether the transaction type is one of the defined types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeRevenue, TransactionTypeBill, TransactionTypeExpense, TransactionTypeSavings, TransactionTypeTransfer:
		return true
	}

	return false
}

// IsTransfer reports whether the type is a transfer between two accounts.
func (t TransactionType) IsTransfer() bool {
	return t == TransactionTypeTransfer
}

// CategoryType returns the category type matching the transaction type.
// Transfers have no category, the second return value is false for them.
func (t TransactionType) CategoryType() (CategoryType, bool) {
	if t.IsTransfer() {
		return "", false
	}

	return CategoryType(t), true
}

// Transaction represents a money movement between two accounts.
//
// The amount is always a positive magnitude. The direction is given by the
// source and destination accounts: the amount leaves the source account and
// arrives at the destination account.
type Transaction struct {
	DefaultModel
	TransactionCreate
	Category           *Category `json:"-"`
	SourceAccount      Account   `json:"-"`
	DestinationAccount Account   `json:"-"`
}

type TransactionCreate struct {
	Date                 time.Time       `json:"date" example:"2026-02-24T00:00:00Z"`
	Amount               decimal.Decimal `json:"amount" example:"14.03" default:"0" gorm:"type:DECIMAL(20,8)"`
	Type                 TransactionType `json:"type" example:"expense" gorm:"type:VARCHAR(16)"`
	Note                 string          `json:"note" example:"Weekly groceries" default:""`
	CategoryID           *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-580b58acbbba" gorm:"index"` // Must be nil exactly for transfers
	SourceAccountID      uuid.UUID       `json:"sourceAccountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45" gorm:"check:source_destination_different,source_account_id != destination_account_id"`
	DestinationAccountID uuid.UUID       `json:"destinationAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	Processed            bool            `json:"processed" example:"false" default:"false"` // Whether the transaction is confirmed as cleared
}

var (
	ErrTransactionAmountNotPositive    = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid          = errors.New("the specified transaction type is invalid")
	ErrTransactionNoCategory           = errors.New("a category is required for transactions that are not transfers")
	ErrTransferHasCategory             = errors.New("a transfer cannot reference a category")
	ErrTransactionCategoryTypeMismatch = errors.New("the category type does not match the transaction type")
	ErrSourceEqualsDestination         = errors.New("source and destination accounts must be different")
)

// BeforeSave validates the transaction and sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if !t.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrTransactionTypeInvalid, t.Type)
	}

	if t.SourceAccountID == t.DestinationAccountID {
		return ErrSourceEqualsDestination
	}

	if t.Type.IsTransfer() {
		if t.CategoryID != nil {
			return ErrTransferHasCategory
		}
	} else if t.CategoryID == nil {
		return ErrTransactionNoCategory
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)
	return t.checkIntegrity(tx)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID", "Type") {
		toSave := tx.Statement.Dest.(Transaction)
		return toSave.checkIntegrity(tx)
	}

	return nil
}

// checkIntegrity verifies that the category reference is consistent with the
// transaction type. Account references are enforced by foreign keys.
func (t Transaction) checkIntegrity(tx *gorm.DB) error {
	if t.CategoryID == nil {
		return nil
	}

	var category Category
	err := tx.First(&category, "id = ?", *t.CategoryID).Error
	if err != nil {
		return err
	}

	want, ok := t.Type.CategoryType()
	if ok && category.Type != want {
		return fmt.Errorf("%w: transaction is %s, category %s is %s", ErrTransactionCategoryTypeMismatch, t.Type, category.Name, category.Type)
	}

	return nil
}
