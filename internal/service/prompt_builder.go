package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/shopspring/decimal"
)

const (
	maxAcceptedInPrompt = 5
	maxRejectedInPrompt = 10
	sessionBatchSize    = 5
)

type BudgetTier string

const (
	BudgetTierLow       BudgetTier = "LOW"
	BudgetTierMedium    BudgetTier = "MEDIUM"
	BudgetTierHigh      BudgetTier = "HIGH"
	BudgetTierUltraHigh BudgetTier = "ULTRA_HIGH"
)

var (
	mediumTierFloor    = decimal.NewFromInt(50000)
	highTierFloor      = decimal.NewFromInt(200000)
	ultraHighTierFloor = decimal.NewFromInt(500000)

	lowBandRatio        = decimal.NewFromFloat(0.10)
	mediumHighBandRatio = decimal.NewFromFloat(0.40)
)

// BudgetTierFor buckets capital. Each floor belongs to the tier above it.
func BudgetTierFor(capital decimal.Decimal) BudgetTier {
	switch {
	case capital.LessThan(mediumTierFloor):
		return BudgetTierLow
	case capital.LessThan(highTierFloor):
		return BudgetTierMedium
	case capital.LessThan(ultraHighTierFloor):
		return BudgetTierHigh
	default:
		return BudgetTierUltraHigh
	}
}

// PriceBandThresholds returns the LOW/MEDIUM and MEDIUM/HIGH boundaries for capital.
func PriceBandThresholds(capital decimal.Decimal) (low, mediumHigh decimal.Decimal) {
	return capital.Mul(lowBandRatio), capital.Mul(mediumHighBandRatio)
}

// ClassifyPrice places price relative to capital. It only feeds prompt text.
func ClassifyPrice(capital, price decimal.Decimal) models.PriceBand {
	low, mediumHigh := PriceBandThresholds(capital)
	switch {
	case price.LessThan(low):
		return models.PriceBandLow
	case price.LessThan(mediumHigh):
		return models.PriceBandMedium
	default:
		return models.PriceBandHigh
	}
}

// PromptHash identifies the prompt a suggestion was generated from.
func PromptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func BuildBudgetGuidance(capital decimal.Decimal, currency string) string {
	amount := capital.String() + " " + currency

	switch BudgetTierFor(capital) {
	case BudgetTierLow:
		return fmt.Sprintf(`BUDGET SCALING GUIDANCE (Low Budget: %s):
- Focus on LOCAL and REGIONAL experiences primarily (80%% of suggestions)
- Occasional national experiences (20%% of suggestions)
- Base cost range: 1,000-15,000 %s per suggestion
- Mix: 40%% low cost (1k-5k), 40%% moderate (5k-10k), 20%% higher (10k-15k)
- Examples: Weekend trips, local courses, equipment purchases, regional adventures
- Avoid international travel unless budget-friendly (hostels, low-cost airlines)
`, amount, currency)
	case BudgetTierMedium:
		return fmt.Sprintf(`BUDGET SCALING GUIDANCE (Medium Budget: %s):
- Mix of local (40%%), national (40%%), and international (20%%) experiences
- Base cost range: 5,000-60,000 %s per suggestion
- Mix: 30%% moderate (5k-20k), 50%% higher (20k-40k), 20%% premium (40k-60k)
- Include some premium experiences to match budget capacity
- Examples: European trips, quality courses/certifications, premium equipment, week-long adventures
- Sprinkle in occasional luxury touches (business class, 4-star hotels)
`, amount, currency)
	case BudgetTierHigh:
		return fmt.Sprintf(`BUDGET SCALING GUIDANCE (High Budget: %s):
- Premium and luxury experiences should be the norm (60%% of suggestions)
- Global travel opportunities with quality accommodations
- Base cost range: 15,000-150,000 %s per suggestion
- Mix: 20%% moderate (15k-40k), 50%% premium (40k-80k), 30%% luxury (80k-150k)
- Include exclusive experiences: private tours, luxury accommodations, first-class travel
- Examples: Luxury safaris, private yacht charters, exclusive resorts, high-end courses with celebrity instructors
- Don't be afraid to suggest expensive experiences - the user has the budget for them
`, amount, currency)
	default:
		return fmt.Sprintf(`BUDGET SCALING GUIDANCE (Ultra-High Budget: %s):
- Ultra-luxury and exclusive experiences should dominate (70%% of suggestions)
- Once-in-a-lifetime opportunities that money can barely buy
- Base cost range: 50,000-500,000+ %s per suggestion
- Mix: 30%% premium (50k-100k), 40%% luxury (100k-200k), 30%% ultra-luxury (200k+)
- Think: Private islands, space tourism, custom superyacht experiences, private jets
- Examples: Antarctic expedition with private guide, custom Michelin-starred dining experiences,
  exclusive access to historical sites, private concerts with famous artists
- The sky is the limit - suggest truly extraordinary experiences that justify the budget
`, amount, currency)
	}
}

func buildPriceBandGuidance(capital decimal.Decimal, currency string) string {
	low, mediumHigh := PriceBandThresholds(capital)
	return fmt.Sprintf(`PRICE BAND GUIDANCE:
- LOW: total cost below %s %s
- MEDIUM: total cost from %s up to %s %s
- HIGH: total cost of %s %s or more
`, low.StringFixed(0), currency, low.StringFixed(0), mediumHigh.StringFixed(0), currency, mediumHigh.StringFixed(0), currency)
}

const noFeedbackContext = "PREVIOUS FEEDBACK CONTEXT: No previous suggestions available for learning."

const learningInstructions = `LEARNING INSTRUCTIONS:
- Carefully avoid suggesting similar items to rejected suggestions
- Pay special attention to specific rejection reasons and avoid those patterns
- Focus on themes and characteristics from accepted suggestions
- If user rejected expensive suggestions due to cost, consider suggesting more lower price band options
- If user rejected specific activities, locations, or types of experiences, avoid similar ones
- If user provided positive feedback on accepted suggestions, incorporate those themes
- Learn from the patterns - what the user likes and dislikes
`

// BuildFeedbackContext renders feedback history, expected most recent first.
func BuildFeedbackContext(history []models.FeedbackContext) string {
	if len(history) == 0 {
		return noFeedbackContext
	}

	var accepted, rejected []models.FeedbackContext
	for _, f := range history {
		switch f.Verdict {
		case models.VerdictAccept:
			accepted = append(accepted, f)
		case models.VerdictReject:
			rejected = append(rejected, f)
		}
	}

	var b strings.Builder
	b.WriteString("PREVIOUS FEEDBACK CONTEXT:\n")

	if len(accepted) > 0 {
		b.WriteString("User has previously ACCEPTED these suggestions:\n")
		for i, f := range accepted {
			if i == maxAcceptedInPrompt {
				break
			}
			fmt.Fprintf(&b, "- %q: %s", f.Title, f.Description)
			if reason := strings.TrimSpace(f.Reason); reason != "" {
				b.WriteString(" - Positive feedback: " + reason)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(rejected) > 0 {
		b.WriteString("User has previously REJECTED these suggestions:\n")
		for i, f := range rejected {
			if i == maxRejectedInPrompt {
				break
			}
			fmt.Fprintf(&b, "- %q: %s", f.Title, f.Description)
			if reason := strings.TrimSpace(f.Reason); reason != "" {
				b.WriteString(" - Rejection reason: " + reason)
			} else {
				b.WriteString(" - No specific reason provided")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(learningInstructions)
	return b.String()
}

func BuildModeInstructions(mode models.SuggestionMode) string {
	if mode == models.ModeCreative {
		return `Generate UNIQUE and UNCOMMON bucket list items that people generally wouldn't think of on their own.
Focus on surprising, creative, and imaginative experiences that stand out from typical bucket lists.
Examples: Sleep in unusual accommodations, try obscure skills, create custom experiences.
Be bold and creative - suggest things that would make people say "I never thought of that!".`
	}
	return `Generate POPULAR and WELL-KNOWN bucket list items that most people would enjoy and find appealing.
Focus on tried-and-true experiences that have broad appeal and are commonly desired.
Examples: Visit famous landmarks, take popular courses, try well-known adventures.
Avoid overly unique or niche suggestions - stick to crowd-pleasers and classic experiences.`
}

var categoryFocus = map[models.SpendingCategory]string{
	models.CategoryTravelVacation: `Focus EXCLUSIVELY on travel destinations, vacation experiences, accommodations, transportation, and tourism activities.

MUST INCLUDE examples like:
- International destinations: Japan cultural tour, African safari, European city breaks, Maldives resort stay
- Domestic travel: Swedish Lapland northern lights, Gothenburg archipelago island hopping, Skåne countryside retreat
- Adventure travel: Patagonia hiking expedition, Iceland volcano tour, Nepal mountain trekking
- Luxury travel: Orient Express journey, private island resort, luxury cruise experiences
- Cultural travel: Art tours in Italy, wine regions of France, historical sites in Egypt

DO NOT include: Shopping, permanent purchases, courses unrelated to travel, local activities that aren't vacation-focused.
EMPHASIZE: Transportation, accommodations, guided tours, vacation activities, cultural immersion.`,

	models.CategoryLuxuryThings: `Focus EXCLUSIVELY on high-end products, luxury goods, premium services, and exclusive material possessions.

MUST INCLUDE examples like:
- Luxury vehicles: Ferrari sports car, custom yacht, private jet shares, vintage classic car
- High-end jewelry: Rolex watch, diamond jewelry, custom-made pieces, designer collections
- Premium fashion: Hermès handbags, bespoke suits, designer shoe collections, luxury wardrobe
- Exclusive services: Private chef, personal stylist, luxury concierge membership, VIP access passes
- Art & collectibles: Original artwork, rare collectibles, custom furniture, luxury home items

DO NOT include: Experiences, travel, services without tangible luxury goods.
EMPHASIZE: Quality, exclusivity, craftsmanship, status symbols, permanent acquisitions.`,

	models.CategoryHealthWellness: `Focus EXCLUSIVELY on physical health, mental wellbeing, fitness, medical care, and body/mind optimization.

MUST INCLUDE examples like:
- Medical & dental: Advanced health screenings, cosmetic procedures, dental implants, preventive treatments
- Fitness & training: Personal trainer sessions, specialized equipment, gym memberships, sports coaching
- Spa & wellness: Luxury spa retreats, massage therapy programs, wellness resort stays, meditation retreats
- Nutrition & diet: Nutritionist consultations, organic meal plans, supplement programs, cooking classes
- Mental health: Therapy sessions, life coaching, stress management programs, mindfulness training

DO NOT include: General lifestyle improvements, travel (unless specifically wellness-focused), luxury goods.
EMPHASIZE: Physical improvement, mental clarity, professional healthcare, wellness optimization.`,

	models.CategorySocialLifestyle: `Focus EXCLUSIVELY on social activities, entertainment, networking, and lifestyle enhancements involving others.

MUST INCLUDE examples like:
- Social events: Private party hosting, exclusive club memberships, networking events, social gatherings
- Entertainment: Concert VIP packages, theater season tickets, exclusive event access, entertainment subscriptions
- Hobbies & clubs: Golf club membership, wine tasting societies, book clubs, hobby group participation
- Community activities: Charity event organization, community involvement, local group leadership
- Lifestyle upgrades: Home entertainment systems, social space improvements, hosting capabilities

DO NOT include: Solo activities, pure travel, health services, individual luxury purchases.
EMPHASIZE: Social interaction, community building, shared experiences, entertainment, networking.`,

	models.CategoryMentalEmotional: `Focus EXCLUSIVELY on mental health, emotional development, personal growth, and psychological wellbeing.

MUST INCLUDE examples like:
- Therapy & counseling: Individual therapy, couples counseling, family therapy, specialized treatment programs
- Personal development: Life coaching, leadership training, confidence building, communication skills
- Mindfulness & meditation: Meditation retreats, mindfulness courses, spiritual guidance, contemplative practices
- Emotional healing: Grief counseling, trauma therapy, emotional intelligence training, stress management
- Self-discovery: Personality assessments, self-reflection retreats, journaling programs, personal insight work

DO NOT include: Physical health, material purchases, travel (unless specifically mental health focused).
EMPHASIZE: Inner growth, emotional intelligence, mental clarity, psychological healing, self-awareness.`,

	models.CategorySmallLuxury: `Focus EXCLUSIVELY on affordable luxury treats, premium everyday items, and accessible indulgences.

MUST INCLUDE examples like:
- Premium food & drink: Fine wine collections, artisanal coffee subscriptions, gourmet ingredient sets, premium tea
- Comfort upgrades: High-quality bedding, luxury bath products, premium skincare, comfort accessories
- Small luxury items: Quality leather goods, premium stationery, artisanal crafts, boutique purchases
- Daily indulgences: Premium chocolate subscriptions, spa day packages, massage sessions, beauty treatments
- Quality upgrades: Better versions of everyday items, premium brands, enhanced daily experiences

DO NOT include: Major purchases, expensive travel, large luxury goods, significant investments.
EMPHASIZE: Daily pleasures, quality over quantity, accessible luxury, everyday improvements.`,

	models.CategoryFreedomComfort: `Focus EXCLUSIVELY on purchases and services that increase personal freedom, reduce obligations, and enhance comfort.

MUST INCLUDE examples like:
- Time-saving services: House cleaning, meal delivery, personal assistant, maintenance services
- Comfort improvements: Ergonomic furniture, climate control, comfort technology, relaxation equipment
- Freedom purchases: Debt elimination, financial planning, automated systems, convenience solutions
- Stress reduction: Organization services, simplification consulting, workflow optimization, peace-of-mind services
- Convenience upgrades: Smart home technology, transportation solutions, efficiency improvements

DO NOT include: Entertainment, social activities, luxury goods for status, travel experiences.
EMPHASIZE: Time freedom, reduced stress, increased convenience, personal comfort, life simplification.`,

	models.CategoryOptionalAddons: `Focus EXCLUSIVELY on upgrades, enhancements, add-on services, and premium versions of existing experiences.

MUST INCLUDE examples like:
- Service upgrades: First-class flights, premium hotel rooms, VIP experiences, enhanced memberships
- Product enhancements: Extended warranties, premium features, upgrade packages, additional accessories
- Experience add-ons: Private guides for trips, exclusive access, behind-the-scenes tours, enhanced packages
- Membership upgrades: Premium tiers, additional benefits, exclusive access levels, enhanced services
- Optional extras: Insurance upgrades, extended services, bonus features, supplementary experiences

DO NOT include: Entirely new purchases, base-level experiences, standalone products without upgrade context.
EMPHASIZE: Enhancement of existing, premium versions, value-added services, upgrade opportunities.`,
}

func BuildCategoryFocus(category models.SpendingCategory) string {
	if focus, ok := categoryFocus[category]; ok {
		return focus
	}
	return categoryFocus[models.CategoryOptionalAddons]
}

// BuildSuggestionPrompt assembles the profile-flow prompt. The category
// constraint appears twice on purpose.
func BuildSuggestionPrompt(
	profile *models.Profile,
	category models.SpendingCategory,
	mode models.SuggestionMode,
	count int,
	history []models.FeedbackContext,
	currency string,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d bucket list suggestions for this user profile:\n\n", count)
	b.WriteString("Basic Info:\n")
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- Capital: %s %s\n\n", profile.Capital.String(), currency)

	fmt.Fprintf(&b, "Personality: %s\n", profile.PersonalityJSON)
	fmt.Fprintf(&b, "Preferences: %s\n", profile.PreferencesJSON)
	fmt.Fprintf(&b, "Prior Experiences: %s\n\n", profile.PriorExperiencesJSON)

	b.WriteString(BuildFeedbackContext(history))
	b.WriteString("\n\n")
	b.WriteString(BuildBudgetGuidance(profile.Capital, currency))
	b.WriteString("\n")
	b.WriteString(buildPriceBandGuidance(profile.Capital, currency))
	b.WriteString("\n")

	fmt.Fprintf(&b, "SPENDING CATEGORY FOCUS: %s (CRITICAL: ALL SUGGESTIONS MUST BE STRICTLY RELATED TO THIS CATEGORY)\n", category.DisplayName())
	b.WriteString(BuildCategoryFocus(category))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "SUGGESTION MODE: %s\n", mode.DisplayName())
	b.WriteString(BuildModeInstructions(mode))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "CRITICAL REQUIREMENT: Every single suggestion MUST be directly related to the selected spending category %q.\n", category.DisplayName())
	b.WriteString(`Do NOT suggest anything outside this category. If the category is "Travel & Vacation", suggest ONLY travel and vacation experiences.
If the category is "Health & Wellness", suggest ONLY health and wellness activities. Stay strictly within the category boundaries.

`)

	fmt.Fprintf(&b, "Return a JSON array of exactly %d suggestions:\n", count)
	fmt.Fprintf(&b, `[
  {
    "title": "Short engaging title (max 70 chars)",
    "description": "Detailed description (max 240 chars)",
    "priceBand": "LOW|MEDIUM|HIGH",
    "estimatedCost": 25000,
    "budgetBreakdown": [
      {"category": "Transport", "description": "Round-trip flights", "amount": 8000},
      {"category": "Accommodation", "description": "4 nights hotel", "amount": 12000},
      {"category": "Activities", "description": "Tours and experiences", "amount": 3000},
      {"category": "Food", "description": "Meals and dining", "amount": 2000}
    ]
  }
]

All amounts are in %s.

CRITICAL: Return only the JSON array, no other text.

LANGUAGE REQUIREMENT: All suggestion titles and descriptions MUST be in English. Do not use Swedish or any other language.
`, currency)

	return b.String()
}

// BuildSessionPrompt assembles the session-flow prompt: five suggestions
// spread over five distinct categories, steered by prior verdicts.
func BuildSessionPrompt(
	personDescription string,
	accepted []models.BucketListSuggestion,
	rejected []models.RejectedBucketListSuggestion,
	currency string,
) string {
	var b strings.Builder

	b.WriteString("Based on the following person description, generate bucket list suggestions tailored to them:\n\n")
	fmt.Fprintf(&b, "PERSON DESCRIPTION:\n%s\n\n", strings.TrimSpace(personDescription))

	if len(accepted) > 0 {
		b.WriteString("The person ACCEPTED these earlier suggestions (favor similar themes):\n")
		for _, s := range accepted {
			fmt.Fprintf(&b, "- %q (%s): %s\n", s.Title, s.Category.DisplayName(), s.Description)
		}
		b.WriteString("\n")
	}

	if len(rejected) > 0 {
		b.WriteString("The person REJECTED these earlier suggestions (avoid similar ideas):\n")
		for _, r := range rejected {
			fmt.Fprintf(&b, "- %q (%s)", r.Suggestion.Title, r.Suggestion.Category.DisplayName())
			if reason := strings.TrimSpace(r.Feedback.Reason); reason != "" {
				b.WriteString(" - Rejection reason: " + reason)
			} else {
				b.WriteString(" - No specific reason provided")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(learningInstructions)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "CATEGORY DIVERSITY REQUIREMENT: Generate exactly %d suggestions, each in a DIFFERENT category.\n", sessionBatchSize)
	b.WriteString("Choose the category for each suggestion from this list, using the exact name:\n")
	for _, c := range models.SpendingCategories {
		fmt.Fprintf(&b, "- %s\n", c.DisplayName())
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, `Return a JSON array of exactly %d suggestions:
[
  {
    "title": "Short engaging title (max 70 chars)",
    "description": "Detailed description (max 240 chars)",
    "category": "Travel & Vacation",
    "priceBreakdown": {
      "lineItems": [
        {"name": "Flights", "price": 8000, "description": "Round-trip flights"},
        {"name": "Hotel", "price": 12000, "description": "4 nights hotel"}
      ],
      "currency": "%s"
    }
  }
]

CRITICAL: Return only the JSON array, no other text.

LANGUAGE REQUIREMENT: All suggestion titles and descriptions MUST be in English.
`, sessionBatchSize, currency)

	return b.String()
}

// BuildProfilePrompt asks the model to enrich a new profile with
// personality, preferences and prior experiences.
func BuildProfilePrompt(gender models.Gender, age int, capital decimal.Decimal, mode models.SuggestionMode, currency string) string {
	return fmt.Sprintf(`Input:
- Gender: %s
- Age: %d
- Capital: %s %s (leisure budget)
- Mode: %s

Generate a realistic user profile as valid JSON only:
{
  "personality": {
    "openness": "low|medium|high",
    "extraversion": "low|medium|high",
    "riskTolerance": "low|medium|high"
  },
  "preferences": {
    "themes": ["outdoors","culture","learning","sports","wellness","family","food","tech"],
    "travelStyle": "budget|mid|premium",
    "timeWindows": ["weekend","1-week","2-weeks+"]
  },
  "priorExperiences": [
    {"title": "Example experience", "category": "Adventure", "year": 2023}
  ],
  "summary": "1-2 sentences describing this person"
}

Rules:
- Make personality realistic for age %d and capital %s %s
- If capital is low (<20k), use "budget" travelStyle
- If capital is high (>80k), can use "premium" travelStyle
- Include 2-4 relevant prior experiences
- Keep themes array to 3-5 items
- Return only valid JSON, no other text
`, gender, age, capital.String(), currency, mode, age, capital.String(), currency)
}
