package budget

import (
	"fmt"
	"sort"

	"github.com/centime-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBudget is the forecast-vs-actual comparison for one category in
// one period.
//
// Real is the plain sum of transaction magnitudes booked against the
// category within the period, it is never netted against other categories.
// Variance is oriented so that a positive value is always favorable: for
// revenue categories it is Real - Forecasted (earning more than planned is
// good), for bill, expense and savings categories it is Forecasted - Real
// (spending less than planned is good).
type CategoryBudget struct {
	CategoryID      uuid.UUID           `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`
	CategoryName    string              `json:"categoryName" example:"Groceries"`
	CategoryType    models.CategoryType `json:"categoryType" example:"expense"`
	IsCredit        bool                `json:"isCredit" example:"false"`
	Forecasted      decimal.Decimal     `json:"forecasted" example:"250"`
	Real            decimal.Decimal     `json:"real" example:"200"`
	Variance        decimal.Decimal     `json:"variance" example:"50"`
	VariancePercent decimal.Decimal     `json:"variancePercent" example:"20"` // 0 when nothing is forecasted
}

// TypeSummary is the roll-up of all categories of one type.
type TypeSummary struct {
	Forecasted decimal.Decimal `json:"forecasted" example:"2100"`
	Real       decimal.Decimal `json:"real" example:"1950.63"`
	Variance   decimal.Decimal `json:"variance" example:"149.37"`
}

// Summary rolls the per-category figures up into the four category types.
type Summary struct {
	Revenue  TypeSummary `json:"revenue"`
	Bills    TypeSummary `json:"bills"`
	Expenses TypeSummary `json:"expenses"`
	Savings  TypeSummary `json:"savings"`
}

// Data is the full budget comparison for one period.
type Data struct {
	Period     Period           `json:"period"`
	Categories []CategoryBudget `json:"categories"`
	Summary    Summary          `json:"summary"`
	Skipped    int              `json:"skipped" example:"0"` // Number of malformed ledger records skipped
}

// Aggregate computes the forecast-vs-actual comparison for all categories in
// the given period.
//
// Transfers move money between accounts without touching a category, they
// never contribute. Every category of the snapshot appears in the result,
// with Real zero when it had no activity in the period. Re-running Aggregate
// over an unchanged snapshot yields an identical result.
func Aggregate(s Snapshot, p Period) (Data, error) {
	tables := s.lookups()

	real := make(map[uuid.UUID]decimal.Decimal, len(s.Categories))
	skipped := 0

	for _, t := range s.Transactions {
		if malformed(t) {
			skipped++
			continue
		}

		if t.Type.IsTransfer() {
			continue
		}

		if !p.Contains(t.Date) {
			continue
		}

		category, ok := tables.categories[*t.CategoryID]
		if !ok {
			return Data{}, fmt.Errorf("%w: transaction %s references unknown category %s", ErrDataIntegrity, t.ID, *t.CategoryID)
		}

		real[category.ID] = real[category.ID].Add(t.Amount)
	}

	forecasted := make(map[uuid.UUID]decimal.Decimal, len(s.Forecasts))
	for _, f := range s.Forecasts {
		if f.MonthNumber != p.Month {
			continue
		}

		if _, ok := tables.categories[f.CategoryID]; !ok {
			return Data{}, fmt.Errorf("%w: forecast %s references unknown category %s", ErrDataIntegrity, f.ID, f.CategoryID)
		}

		forecasted[f.CategoryID] = f.Amount
	}

	data := Data{
		Period:     p,
		Categories: make([]CategoryBudget, 0, len(s.Categories)),
		Skipped:    skipped,
	}

	for _, category := range s.Categories {
		entry, err := compare(category, forecasted[category.ID], real[category.ID])
		if err != nil {
			return Data{}, err
		}

		data.Categories = append(data.Categories, entry)

		summary := data.Summary.of(category.Type)
		summary.Forecasted = summary.Forecasted.Add(entry.Forecasted)
		summary.Real = summary.Real.Add(entry.Real)
		summary.Variance = summary.Variance.Add(entry.Variance)
	}

	// Fixed result order to keep recomputation deterministic
	sort.SliceStable(data.Categories, func(i, j int) bool {
		a, b := data.Categories[i], data.Categories[j]
		ca, cb := tables.categories[a.CategoryID], tables.categories[b.CategoryID]

		if ca.SortOrder != cb.SortOrder {
			return ca.SortOrder < cb.SortOrder
		}

		if ca.Name != cb.Name {
			return ca.Name < cb.Name
		}

		return ca.ID.String() < cb.ID.String()
	})

	return data, nil
}

var hundred = decimal.NewFromInt(100)

// compare builds the comparison for a single category.
func compare(category models.Category, forecasted, real decimal.Decimal) (CategoryBudget, error) {
	var variance decimal.Decimal

	switch category.Type {
	case models.CategoryTypeRevenue:
		variance = real.Sub(forecasted)
	case models.CategoryTypeBill, models.CategoryTypeExpense, models.CategoryTypeSavings:
		variance = forecasted.Sub(real)
	default:
		return CategoryBudget{}, fmt.Errorf("%w: category %s has unknown type %q", ErrDataIntegrity, category.Name, category.Type)
	}

	// A variance against a zero forecast is defined as 0%, not an error
	percent := decimal.Zero
	if !forecasted.IsZero() {
		percent = variance.Div(forecasted).Mul(hundred)
	}

	return CategoryBudget{
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		CategoryType:    category.Type,
		IsCredit:        category.IsCredit,
		Forecasted:      forecasted,
		Real:            real,
		Variance:        variance,
		VariancePercent: percent,
	}, nil
}

// of returns the summary bucket for a category type.
func (s *Summary) of(t models.CategoryType) *TypeSummary {
	switch t {
	case models.CategoryTypeRevenue:
		return &s.Revenue
	case models.CategoryTypeBill:
		return &s.Bills
	case models.CategoryTypeSavings:
		return &s.Savings
	default:
		return &s.Expenses
	}
}
