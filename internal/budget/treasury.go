package budget

import (
	"github.com/shopspring/decimal"
)

// Treasury is the global roll-up of the three balance projections over all
// accounts.
type Treasury struct {
	TotalReal     decimal.Decimal `json:"totalReal" example:"1000"`
	TotalUpcoming decimal.Decimal `json:"totalUpcoming" example:"950"`
	TotalPending  decimal.Decimal `json:"totalPending" example:"-50"`
}

// Summarize sums the per-account balance projections into global totals.
//
// TotalPending is derived as TotalUpcoming - TotalReal, which equals the sum
// of the per-account pending figures because each of those is derived the
// same way.
func Summarize(b Balances) Treasury {
	var t Treasury

	for _, account := range b.Accounts {
		t.TotalReal = t.TotalReal.Add(account.Real)
		t.TotalUpcoming = t.TotalUpcoming.Add(account.Upcoming)
	}

	t.TotalPending = t.TotalUpcoming.Sub(t.TotalReal)

	return t
}
