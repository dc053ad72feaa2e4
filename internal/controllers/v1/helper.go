// Package v1 implements the v1 API.
package v1

import (
	"github.com/centime-app/backend/internal/budget"
	"gorm.io/gorm"
)

// loadSnapshot reads all ledger data into an immutable snapshot for the
// budget engine. The engine itself never touches the database.
func loadSnapshot(db *gorm.DB) (budget.Snapshot, error) {
	var s budget.Snapshot

	if err := db.Find(&s.Accounts).Error; err != nil {
		return budget.Snapshot{}, err
	}

	if err := db.Find(&s.Categories).Error; err != nil {
		return budget.Snapshot{}, err
	}

	if err := db.Find(&s.Transactions).Error; err != nil {
		return budget.Snapshot{}, err
	}

	if err := db.Find(&s.Forecasts).Error; err != nil {
		return budget.Snapshot{}, err
	}

	return s, nil
}
