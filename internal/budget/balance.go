package budget

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountBalance is the three balance projections for one account.
//
// Real only includes transactions that are confirmed as cleared. Upcoming
// additionally includes every scheduled transaction, it is the balance once
// everything currently entered has cleared. Pending is Upcoming - Real, the
// net effect of the transactions that have not cleared yet; it is derived
// from the other two figures so the reconciliation always holds exactly.
type AccountBalance struct {
	AccountID        uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Name             string          `json:"name" example:"Checking"`
	IsSavingsAccount bool            `json:"isSavingsAccount" example:"false"`
	IsMainAccount    bool            `json:"isMainAccount" example:"true"`
	Real             decimal.Decimal `json:"real" example:"800"`
	Upcoming         decimal.Decimal `json:"upcoming" example:"750"`
	Pending          decimal.Decimal `json:"pending" example:"-50"`
}

// Balances is the balance projection for all accounts of a snapshot.
type Balances struct {
	Accounts []AccountBalance `json:"accounts"`
	Skipped  int              `json:"skipped" example:"0"` // Number of malformed ledger records skipped
}

// ProjectBalances folds the full transaction history into the three balance
// figures for every account.
//
// Balances are point-in-time, not period-bound, so no date filter applies.
// Every transaction moves its amount out of the source account and into the
// destination account, transfers and category transactions alike.
func ProjectBalances(s Snapshot) (Balances, error) {
	tables := s.lookups()

	real := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))
	upcoming := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))

	for _, account := range s.Accounts {
		real[account.ID] = account.InitialBalance
		upcoming[account.ID] = account.InitialBalance
	}

	skipped := 0
	for _, t := range s.Transactions {
		if malformed(t) {
			skipped++
			continue
		}

		if _, ok := tables.accounts[t.SourceAccountID]; !ok {
			return Balances{}, fmt.Errorf("%w: transaction %s references unknown source account %s", ErrDataIntegrity, t.ID, t.SourceAccountID)
		}

		if _, ok := tables.accounts[t.DestinationAccountID]; !ok {
			return Balances{}, fmt.Errorf("%w: transaction %s references unknown destination account %s", ErrDataIntegrity, t.ID, t.DestinationAccountID)
		}

		upcoming[t.SourceAccountID] = upcoming[t.SourceAccountID].Sub(t.Amount)
		upcoming[t.DestinationAccountID] = upcoming[t.DestinationAccountID].Add(t.Amount)

		if t.Processed {
			real[t.SourceAccountID] = real[t.SourceAccountID].Sub(t.Amount)
			real[t.DestinationAccountID] = real[t.DestinationAccountID].Add(t.Amount)
		}
	}

	balances := Balances{
		Accounts: make([]AccountBalance, 0, len(s.Accounts)),
		Skipped:  skipped,
	}

	for _, account := range s.Accounts {
		balances.Accounts = append(balances.Accounts, AccountBalance{
			AccountID:        account.ID,
			Name:             account.Name,
			IsSavingsAccount: account.IsSavingsAccount,
			IsMainAccount:    account.IsMainAccount,
			Real:             real[account.ID],
			Upcoming:         upcoming[account.ID],
			Pending:          upcoming[account.ID].Sub(real[account.ID]),
		})
	}

	// Fixed result order to keep recomputation deterministic
	sort.SliceStable(balances.Accounts, func(i, j int) bool {
		a, b := balances.Accounts[i], balances.Accounts[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}

		return a.AccountID.String() < b.AccountID.String()
	})

	return balances, nil
}

// Balance returns the projection for a single account by its ID.
func (b Balances) Balance(id uuid.UUID) (AccountBalance, bool) {
	for _, account := range b.Accounts {
		if account.AccountID == id {
			return account, true
		}
	}

	return AccountBalance{}, false
}
