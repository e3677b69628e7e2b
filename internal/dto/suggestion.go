package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetItemResponse struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SuggestionResponse is the projection of a persisted suggestion.
type SuggestionResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Category        *string              `json:"category,omitempty"`
	PriceBand       *string              `json:"priceBand,omitempty"`
	EstimatedCost   *decimal.Decimal     `json:"estimatedCost,omitempty"`
	BudgetBreakdown []BudgetItemResponse `json:"budgetBreakdown"`
}

type RejectedSuggestionResponse struct {
	SuggestionResponse
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejectedAt"`
}

type GenerateSuggestionsRequest struct {
	ProfileID string `json:"profileId" validate:"required,uuid"`
	Category  string `json:"category" validate:"required"`
	Mode      string `json:"mode" validate:"required,oneofci=PROVEN CREATIVE"`
	Count     int    `json:"count" validate:"required,min=1,max=10"`
}

// RefillRequest carries an optional batch size; zero means the default.
type RefillRequest struct {
	ProfileID string `json:"profileId" validate:"required,uuid"`
	Category  string `json:"category" validate:"required"`
	Mode      string `json:"mode" validate:"required,oneofci=PROVEN CREATIVE"`
	BatchSize int    `json:"batchSize"`
}

type FeedbackRequest struct {
	ProfileID    string `json:"profileId" validate:"required,uuid"`
	SuggestionID string `json:"suggestionId" validate:"required,uuid"`
	Verdict      string `json:"verdict" validate:"required,oneofci=ACCEPT REJECT"`
	Reason       string `json:"reason" validate:"max=1000"`
}

type FeedbackResponse struct {
	Recorded bool `json:"recorded"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type RejectedSuggestionListResponse struct {
	Suggestions []RejectedSuggestionResponse `json:"suggestions"`
}
