package budget

import (
	"fmt"
	"time"
)

// Period is one budget month as a half-open date interval [Start, End).
//
// Successive periods tile the calendar: the End of one period is exactly the
// Start of the next, so every transaction date falls into exactly one period.
type Period struct {
	Month int       `json:"month" example:"3"`   // The selected month, 1-12
	Year  int       `json:"year" example:"2024"` // The selected year
	Start time.Time `json:"startDate"`           // First instant of the period
	End   time.Time `json:"endDate"`             // First instant after the period
}

// Contains reports whether a time falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// ResolvePeriod maps a (month, year) selection to the date interval of the
// budget month.
//
// Without a configured start date the period is the calendar month. With a
// start date, the period begins on that date's day of month in the selected
// month, or in the preceding month when startsBeforeMonth is set. A start
// day that does not exist in a month is clamped to the last day of that
// month, so a budget configured to start on the 31st starts on February 28th
// (or 29th) in February.
func ResolvePeriod(month, year int, startDate *time.Time, startsBeforeMonth bool) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidPeriod, month)
	}

	if year < 1 {
		return Period{}, fmt.Errorf("%w: year must be positive, got %d", ErrInvalidPeriod, year)
	}

	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	if startDate == nil {
		return Period{
			Month: month,
			Year:  year,
			Start: anchor,
			End:   anchor.AddDate(0, 1, 0),
		}, nil
	}

	if startsBeforeMonth {
		anchor = anchor.AddDate(0, -1, 0)
	}

	day := startDate.Day()

	return Period{
		Month: month,
		Year:  year,
		Start: dayInMonth(anchor, day),
		End:   dayInMonth(anchor.AddDate(0, 1, 0), day),
	}, nil
}

// dayInMonth returns the given day in the month of the anchor, clamped to
// the last day of that month.
func dayInMonth(anchor time.Time, day int) time.Time {
	// Day zero of the next month is the last day of this month
	last := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}

	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}
