package dto

import "github.com/shopspring/decimal"

type CreateSessionRequest struct {
	PersonDescription string `json:"personDescription" validate:"required,max=4000"`
}

type CreateSessionResponse struct {
	SessionID         string `json:"sessionId"`
	PersonDescription string `json:"personDescription"`
}

type LineItemResponse struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type PriceBreakdownResponse struct {
	LineItems []LineItemResponse `json:"lineItems"`
	Currency  string             `json:"currency"`
	TotalCost decimal.Decimal    `json:"totalCost"`
}

type SessionSuggestionResponse struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Category         string                 `json:"category"`
	PriceBreakdown   PriceBreakdownResponse `json:"priceBreakdown"`
	RejectionReasons []string               `json:"rejectionReasons"`
}

type SessionSuggestionsResponse struct {
	Suggestions []SessionSuggestionResponse `json:"suggestions"`
}

type AcceptSuggestionRequest struct {
	SessionID    string `json:"sessionId" validate:"required"`
	SuggestionID string `json:"suggestionId" validate:"required"`
}

type RejectSuggestionRequest struct {
	SessionID    string `json:"sessionId" validate:"required"`
	SuggestionID string `json:"suggestionId" validate:"required"`
	Reason       string `json:"reason" validate:"max=1000"`
	CustomReason bool   `json:"customReason"`
}

type RegenerateRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}
