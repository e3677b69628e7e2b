package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CoooPi/bucketlist-poc/internal/metrics"
	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var errNoJSONArray = errors.New("no JSON array in response")

// Candidate is a validated suggestion parsed from LLM output, not yet persisted.
type Candidate struct {
	Title           string
	Description     string
	Category        models.SpendingCategory
	PriceBand       models.PriceBand
	EstimatedCost   *decimal.Decimal
	BudgetBreakdown []models.BudgetItem
	LineItems       []models.LineItem
	Currency        string
	ContentHash     string
}

type rawSuggestion struct {
	Title           json.RawMessage `json:"title"`
	Description     json.RawMessage `json:"description"`
	Category        json.RawMessage `json:"category"`
	PriceBand       json.RawMessage `json:"priceBand"`
	EstimatedCost   json.RawMessage `json:"estimatedCost"`
	BudgetBreakdown json.RawMessage `json:"budgetBreakdown"`
	PriceBreakdown  json.RawMessage `json:"priceBreakdown"`
}

type rawPriceBreakdown struct {
	LineItems json.RawMessage `json:"lineItems"`
	Currency  json.RawMessage `json:"currency"`
}

// ContentHash is the dedup key: SHA-256 hex of the trimmed, lower-cased title.
func ContentHash(title string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(title))))
	return hex.EncodeToString(sum[:])
}

// ExtractJSONArray strips markdown fences and returns the outermost array.
func ExtractJSONArray(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseSuggestionCandidates turns a raw LLM response into candidates. Only a
// response without a readable top-level array is an error; bad items are
// skipped and logged.
func ParseSuggestionCandidates(text string, fallback models.SpendingCategory, logger *zap.Logger) ([]Candidate, error) {
	arrayText, ok := ExtractJSONArray(text)
	if !ok {
		return nil, errNoJSONArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(arrayText), &items); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion array: %w", err)
	}

	candidates := make([]Candidate, 0, len(items))
	for i, item := range items {
		candidate, err := parseCandidate(item, fallback)
		if err != nil {
			metrics.SuggestionsSkipped.Inc()
			logger.Warn("Skipping malformed suggestion",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func parseCandidate(item json.RawMessage, fallback models.SpendingCategory) (Candidate, error) {
	var raw rawSuggestion
	if err := json.Unmarshal(item, &raw); err != nil {
		return Candidate{}, fmt.Errorf("item is not an object: %w", err)
	}

	title, ok := rawString(raw.Title)
	if !ok || strings.TrimSpace(title) == "" {
		return Candidate{}, errors.New("missing title")
	}
	description, ok := rawString(raw.Description)
	if !ok || strings.TrimSpace(description) == "" {
		return Candidate{}, errors.New("missing description")
	}

	title = truncateRunes(strings.TrimSpace(sanitizeUTF8(title)), models.MaxStoredTitleLength)
	description = truncateRunes(strings.TrimSpace(sanitizeUTF8(description)), models.MaxStoredDescriptionLength)

	category, _ := rawString(raw.Category)
	priceBand, _ := rawString(raw.PriceBand)

	candidate := Candidate{
		Title:           title,
		Description:     description,
		Category:        MatchCategory(category, fallback),
		PriceBand:       ParsePriceBand(priceBand),
		BudgetBreakdown: ParseBudgetBreakdown(raw.BudgetBreakdown),
		ContentHash:     ContentHash(title),
	}
	if cost, ok := parseAmount(raw.EstimatedCost); ok && models.AmountFits(cost) {
		candidate.EstimatedCost = &cost
	}
	candidate.LineItems, candidate.Currency = parsePriceBreakdown(raw.PriceBreakdown)

	return candidate, nil
}

// ParsePriceBand never fails; anything unrecognised is MEDIUM.
func ParsePriceBand(s string) models.PriceBand {
	switch band := models.PriceBand(strings.ToUpper(strings.TrimSpace(s))); band {
	case models.PriceBandLow, models.PriceBandMedium, models.PriceBandHigh:
		return band
	default:
		return models.PriceBandMedium
	}
}

// MatchCategory resolves free text to a category: exact match on key or
// display name, then containment, then fallback.
func MatchCategory(s string, fallback models.SpendingCategory) models.SpendingCategory {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	for _, c := range models.SpendingCategories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.DisplayName()) {
			return c
		}
	}

	lower := strings.ToLower(s)
	for _, c := range models.SpendingCategories {
		display := strings.ToLower(c.DisplayName())
		if strings.Contains(lower, display) {
			return c
		}
		// short fragments like "a" would match almost anything
		if utf8.RuneCountInString(lower) >= 3 && strings.Contains(display, lower) {
			return c
		}
	}

	return fallback
}

// ParseBudgetBreakdown reads [{category, description, amount}]. Malformed
// input yields an empty breakdown and items without an amount are dropped.
func ParseBudgetBreakdown(raw []byte) []models.BudgetItem {
	items := []models.BudgetItem{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return items
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return items
	}

	for _, entry := range entries {
		amount, ok := parseAmount(entry["amount"])
		if !ok {
			continue
		}
		category, _ := rawString(entry["category"])
		description, _ := rawString(entry["description"])
		items = append(items, models.BudgetItem{
			Category:    sanitizeUTF8(category),
			Description: sanitizeUTF8(description),
			Amount:      amount,
		})
	}
	return items
}

func parsePriceBreakdown(raw json.RawMessage) ([]models.LineItem, string) {
	lineItems := []models.LineItem{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return lineItems, ""
	}

	var breakdown rawPriceBreakdown
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		return lineItems, ""
	}
	currency, _ := rawString(breakdown.Currency)

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(breakdown.LineItems, &entries); err != nil {
		return lineItems, currency
	}

	for _, entry := range entries {
		price, ok := parseAmount(entry["price"])
		if !ok {
			continue
		}
		name, _ := rawString(entry["name"])
		description, _ := rawString(entry["description"])
		lineItems = append(lineItems, models.LineItem{
			Name:        sanitizeUTF8(name),
			Price:       price,
			Description: sanitizeUTF8(description),
		})
	}
	return lineItems, strings.TrimSpace(currency)
}

// parseAmount accepts JSON numbers and numeric strings.
func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Decimal{}, false
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Decimal{}, false
		}
		text = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
