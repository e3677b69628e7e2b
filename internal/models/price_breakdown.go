package models

import "github.com/shopspring/decimal"

type LineItem struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type PriceBreakdown struct {
	LineItems []LineItem `json:"lineItems"`
	Currency  string     `json:"currency"`
}

// TotalCost is always recomputed from the line items.
func (p PriceBreakdown) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, li := range p.LineItems {
		total = total.Add(li.Price)
	}
	return total
}
