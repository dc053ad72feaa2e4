// Package budget implements the budget aggregation and balance projection
// engine.
//
// The engine is a pure computation over an immutable snapshot of the ledger
// that the caller supplies per request. It performs no I/O and holds no
// state, so concurrent computations on separate snapshots are independent.
package budget

import (
	"errors"

	"github.com/centime-app/backend/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrInvalidPeriod is returned for a month or year selection that can
	// not be resolved to a budget month.
	ErrInvalidPeriod = errors.New("the requested period is invalid")

	// ErrDataIntegrity is returned when the snapshot references resources
	// that it does not contain. This indicates a storage bug which must
	// not be masked by guessing.
	ErrDataIntegrity = errors.New("the ledger data is inconsistent")
)

// Snapshot is a read-only view of all ledger data needed for a computation.
type Snapshot struct {
	Accounts     []models.Account
	Categories   []models.Category
	Transactions []models.Transaction
	Forecasts    []models.BudgetForecast
}

// lookups are id-indexed tables over a snapshot. They are built once per
// computation so that aggregation stays linear in the transaction count.
type lookups struct {
	accounts   map[uuid.UUID]models.Account
	categories map[uuid.UUID]models.Category
}

func (s Snapshot) lookups() lookups {
	l := lookups{
		accounts:   make(map[uuid.UUID]models.Account, len(s.Accounts)),
		categories: make(map[uuid.UUID]models.Category, len(s.Categories)),
	}

	for _, account := range s.Accounts {
		l.accounts[account.ID] = account
	}

	for _, category := range s.Categories {
		l.categories[category.ID] = category
	}

	return l
}

// malformed reports whether a transaction violates the write-path invariants.
//
// The write path rejects such records, so seeing one here means the snapshot
// is stale or was written around the validation. The engine skips these
// records and reports them in the Skipped count instead of crashing on them.
func malformed(t models.Transaction) bool {
	if t.SourceAccountID == t.DestinationAccountID {
		return true
	}

	if !t.Amount.IsPositive() {
		return true
	}

	if t.Type.IsTransfer() {
		return t.CategoryID != nil
	}

	return t.CategoryID == nil
}
