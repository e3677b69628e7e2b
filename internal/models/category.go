package models

import "strings"

type SpendingCategory string

const (
	CategoryTravelVacation  SpendingCategory = "TRAVEL_VACATION"
	CategoryLuxuryThings    SpendingCategory = "LUXURY_THINGS"
	CategoryHealthWellness  SpendingCategory = "HEALTH_WELLNESS"
	CategorySocialLifestyle SpendingCategory = "SOCIAL_LIFESTYLE"
	CategoryMentalEmotional SpendingCategory = "MENTAL_EMOTIONAL"
	CategorySmallLuxury     SpendingCategory = "SMALL_LUXURY"
	CategoryFreedomComfort  SpendingCategory = "FREEDOM_COMFORT"
	CategoryOptionalAddons  SpendingCategory = "OPTIONAL_ADDONS"
)

// SpendingCategories lists every category in declaration order.
// Matching routines iterate this slice so results stay deterministic.
var SpendingCategories = []SpendingCategory{
	CategoryTravelVacation,
	CategoryLuxuryThings,
	CategoryHealthWellness,
	CategorySocialLifestyle,
	CategoryMentalEmotional,
	CategorySmallLuxury,
	CategoryFreedomComfort,
	CategoryOptionalAddons,
}

var categoryDisplayNames = map[SpendingCategory]string{
	CategoryTravelVacation:  "Travel & Vacation",
	CategoryLuxuryThings:    "Luxury Things",
	CategoryHealthWellness:  "Health & Wellness",
	CategorySocialLifestyle: "Social & Lifestyle",
	CategoryMentalEmotional: "Mental & Emotional Wellbeing",
	CategorySmallLuxury:     "Small Luxury Treats",
	CategoryFreedomComfort:  "Freedom & Comfort",
	CategoryOptionalAddons:  "Optional Add-ons",
}

func (c SpendingCategory) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c SpendingCategory) IsValid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// ParseSpendingCategory accepts the enum key in any case.
func ParseSpendingCategory(s string) (SpendingCategory, bool) {
	c := SpendingCategory(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

type SuggestionMode string

const (
	ModeProven   SuggestionMode = "PROVEN"
	ModeCreative SuggestionMode = "CREATIVE"
)

func (m SuggestionMode) DisplayName() string {
	switch m {
	case ModeProven:
		return "Proven Ideas"
	case ModeCreative:
		return "Creative Suggestions"
	default:
		return string(m)
	}
}

func ParseSuggestionMode(s string) (SuggestionMode, bool) {
	m := SuggestionMode(strings.ToUpper(strings.TrimSpace(s)))
	return m, m == ModeProven || m == ModeCreative
}

type Verdict string

const (
	VerdictAccept Verdict = "ACCEPT"
	VerdictReject Verdict = "REJECT"
)

func ParseVerdict(s string) (Verdict, bool) {
	v := Verdict(strings.ToUpper(strings.TrimSpace(s)))
	return v, v == VerdictAccept || v == VerdictReject
}

type PriceBand string

const (
	PriceBandLow    PriceBand = "LOW"
	PriceBandMedium PriceBand = "MEDIUM"
	PriceBandHigh   PriceBand = "HIGH"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)
