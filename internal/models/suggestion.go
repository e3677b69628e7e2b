package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxStoredTitleLength       = 120
	MaxStoredDescriptionLength = 600
)

// MaxStoredAmount is the exclusive upper bound of a NUMERIC(12, 2) column.
var MaxStoredAmount = decimal.New(1, 10)

// AmountFits reports whether d can be stored as a cost or capital once the
// column rounds it to cents.
func AmountFits(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Round(2).LessThan(MaxStoredAmount)
}

type BudgetItem struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Suggestion is immutable once persisted. ContentHash is unique per profile.
type Suggestion struct {
	ID               uuid.UUID         `db:"id"`
	ProfileID        uuid.UUID         `db:"profile_id"`
	Title            string            `db:"title"`
	Description      string            `db:"description"`
	Category         *SpendingCategory `db:"category"`
	PriceBand        *PriceBand        `db:"price_band"`
	EstimatedCost    *decimal.Decimal  `db:"estimated_cost"`
	SourcePromptHash string            `db:"source_prompt_hash"`
	ContentHash      string            `db:"content_hash"`
	BudgetBreakdown  []BudgetItem      `db:"budget_breakdown_json"`
	CreatedAt        time.Time         `db:"created_at"`
}

// BudgetTotal sums the breakdown. It is not required to match EstimatedCost.
func (s *Suggestion) BudgetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.BudgetBreakdown {
		total = total.Add(item.Amount)
	}
	return total
}
