package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a money account, e.g. a bank account.
//
// Its current balance is always derived from the initial balance and the
// transaction history, it is never stored.
type Account struct {
	DefaultModel
	AccountCreate
}

type AccountCreate struct {
	Name             string          `json:"name" example:"Checking" default:"" gorm:"uniqueIndex"`
	Note             string          `json:"note" example:"Joint account at the local bank" default:""`
	InitialBalance   decimal.Decimal `json:"initialBalance" example:"173.12" default:"0" gorm:"type:DECIMAL(20,8)"`
	IsSavingsAccount bool            `json:"isSavingsAccount" example:"false" default:"false"`
	IsMainAccount    bool            `json:"isMainAccount" example:"true" default:"false"` // The account treated as the primary spending account
	Archived         bool            `json:"archived" example:"false" default:"false"`
}

var ErrAccountNameNotUnique = errors.New("the account name must be unique")

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	// Get all transactions where the account is either the source or the destination
	db.Where(
		Transaction{TransactionCreate: TransactionCreate{SourceAccountID: a.ID}},
	).Or(
		Transaction{TransactionCreate: TransactionCreate{DestinationAccountID: a.ID}},
	).Find(&transactions)
	return transactions
}
