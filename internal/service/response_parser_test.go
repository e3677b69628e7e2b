package service

import (
	"strings"
	"testing"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentHashNormalizes(t *testing.T) {
	base := ContentHash("Northern Lights Safari")

	assert.Equal(t, base, ContentHash("  northern lights safari\n"))
	assert.Equal(t, base, ContentHash("NORTHERN LIGHTS SAFARI"))
	assert.NotEqual(t, base, ContentHash("Northern Lights Safari 2"))
	assert.Len(t, base, 64)
	// sha256("")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash("   "))
}

func TestExtractJSONArray(t *testing.T) {
	got, ok := ExtractJSONArray("```json\n[{\"title\":\"a\"}]\n```")
	require.True(t, ok)
	assert.Equal(t, `[{"title":"a"}]`, got)

	got, ok = ExtractJSONArray("Here you go: [1, 2] hope it helps")
	require.True(t, ok)
	assert.Equal(t, "[1, 2]", got)

	_, ok = ExtractJSONArray("I cannot help with that")
	assert.False(t, ok)
}

func TestParseSuggestionCandidates(t *testing.T) {
	text := `[
	  {"title": "Japan cultural tour", "description": "Two weeks in Kyoto", "priceBand": "high", "estimatedCost": "45000",
	   "budgetBreakdown": [{"category": "Transport", "description": "Flights", "amount": 12000}]},
	  {"description": "no title here"},
	  "not an object",
	  {"title": "   ", "description": "blank title"},
	  {"title": "Iceland volcano tour", "description": "Hike Fagradalsfjall", "priceBand": "EXPENSIVE", "category": 7}
	]`

	candidates, err := ParseSuggestionCandidates(text, models.CategoryTravelVacation, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "Japan cultural tour", first.Title)
	assert.Equal(t, models.PriceBandHigh, first.PriceBand)
	assert.Equal(t, models.CategoryTravelVacation, first.Category)
	require.NotNil(t, first.EstimatedCost)
	assert.True(t, first.EstimatedCost.Equal(decimal.NewFromInt(45000)))
	require.Len(t, first.BudgetBreakdown, 1)
	assert.Equal(t, ContentHash("Japan cultural tour"), first.ContentHash)

	second := candidates[1]
	assert.Equal(t, models.PriceBandMedium, second.PriceBand)
	assert.Equal(t, models.CategoryTravelVacation, second.Category)
	assert.Nil(t, second.EstimatedCost)
	assert.Empty(t, second.BudgetBreakdown)
}

func TestParseSuggestionCandidatesWholeResponseInvalid(t *testing.T) {
	_, err := ParseSuggestionCandidates("Sorry, I can't do that.", models.CategoryTravelVacation, zap.NewNop())
	assert.Error(t, err)

	_, err = ParseSuggestionCandidates("[{\"title\": \"broken\",]", models.CategoryTravelVacation, zap.NewNop())
	assert.Error(t, err)
}

func TestParseSuggestionCandidatesEmptyArray(t *testing.T) {
	candidates, err := ParseSuggestionCandidates("[]", models.CategoryTravelVacation, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseSuggestionCandidatesTruncates(t *testing.T) {
	long := strings.Repeat("å", 200)
	text := `[{"title": "` + long + `", "description": "` + strings.Repeat("x", 700) + `"}]`

	candidates, err := ParseSuggestionCandidates(text, models.CategorySmallLuxury, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, models.MaxStoredTitleLength, len([]rune(candidates[0].Title)))
	assert.Equal(t, models.MaxStoredDescriptionLength, len([]rune(candidates[0].Description)))
}

func TestParseSuggestionCandidatesDropsUnstorableCost(t *testing.T) {
	text := `[
	  {"title": "Boat", "description": "Sail", "estimatedCost": 25000000000},
	  {"title": "Debt", "description": "Odd", "estimatedCost": -5},
	  {"title": "Cabin", "description": "Woods", "estimatedCost": "9999999999.99"},
	  {"title": "Yacht", "description": "Rounds up", "estimatedCost": 9999999999.995}
	]`

	candidates, err := ParseSuggestionCandidates(text, models.CategorySmallLuxury, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, candidates, 4)
	assert.Nil(t, candidates[3].EstimatedCost)
	assert.Nil(t, candidates[0].EstimatedCost)
	assert.Nil(t, candidates[1].EstimatedCost)
	require.NotNil(t, candidates[2].EstimatedCost)
	assert.True(t, candidates[2].EstimatedCost.Equal(decimal.RequireFromString("9999999999.99")))
}

func TestParseSuggestionCandidatesPriceBreakdown(t *testing.T) {
	text := `[{"title": "Spa weekend", "description": "Relax", "category": "Health & Wellness",
	  "priceBreakdown": {"currency": "SEK", "lineItems": [
	    {"name": "Hotel", "price": 4000, "description": "2 nights"},
	    {"name": "Treatments", "price": "1500.50", "description": "Massage"},
	    {"name": "Mystery", "description": "no price"}
	  ]}}]`

	candidates, err := ParseSuggestionCandidates(text, models.CategoryOptionalAddons, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, models.CategoryHealthWellness, c.Category)
	assert.Equal(t, "SEK", c.Currency)
	require.Len(t, c.LineItems, 2)
	assert.True(t, c.LineItems[1].Price.Equal(decimal.RequireFromString("1500.50")))
}

func TestParsePriceBand(t *testing.T) {
	assert.Equal(t, models.PriceBandLow, ParsePriceBand("low"))
	assert.Equal(t, models.PriceBandHigh, ParsePriceBand(" HIGH "))
	assert.Equal(t, models.PriceBandMedium, ParsePriceBand("MEDIUM"))
	assert.Equal(t, models.PriceBandMedium, ParsePriceBand(""))
	assert.Equal(t, models.PriceBandMedium, ParsePriceBand("cheap"))
}

func TestMatchCategory(t *testing.T) {
	fallback := models.CategoryOptionalAddons

	tests := []struct {
		in   string
		want models.SpendingCategory
	}{
		{"Travel & Vacation", models.CategoryTravelVacation},
		{"travel & vacation", models.CategoryTravelVacation},
		{"HEALTH_WELLNESS", models.CategoryHealthWellness},
		{"small_luxury", models.CategorySmallLuxury},
		{"Luxury", models.CategoryLuxuryThings},
		{"Category: Freedom & Comfort", models.CategoryFreedomComfort},
		{"luxury treats", models.CategorySmallLuxury},
		{"Mental", models.CategoryMentalEmotional},
		{"", fallback},
		{"ab", fallback},
		{"Gardening", fallback},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchCategory(tt.in, fallback), "input %q", tt.in)
	}
}

func TestParseBudgetBreakdown(t *testing.T) {
	items := ParseBudgetBreakdown([]byte(`[
	  {"category": "Transport", "description": "Flights", "amount": 8000},
	  {"category": "Hotel", "description": "4 nights", "amount": "12000.5"},
	  {"category": "Food", "description": "Meals"},
	  {"category": "Tips", "description": "Guides", "amount": "lots"}
	]`))

	require.Len(t, items, 2)
	assert.Equal(t, "Transport", items[0].Category)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(8000)))
	assert.True(t, items[1].Amount.Equal(decimal.RequireFromString("12000.5")))
}

func TestParseBudgetBreakdownMalformed(t *testing.T) {
	assert.Empty(t, ParseBudgetBreakdown(nil))
	assert.Empty(t, ParseBudgetBreakdown([]byte(`{"not": "an array"}`)))
	assert.NotNil(t, ParseBudgetBreakdown([]byte(`garbage`)))
}
