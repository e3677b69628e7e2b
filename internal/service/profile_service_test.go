package service

import (
	"context"
	"errors"
	"testing"

	"github.com/CoooPi/bucketlist-poc/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validProfileRequest() *dto.CreateProfileRequest {
	return &dto.CreateProfileRequest{
		Gender:  "FEMALE",
		Age:     34,
		Capital: decimal.NewFromInt(120000),
		Mode:    "CREATIVE",
	}
}

func TestCreateProfileWithEnrichment(t *testing.T) {
	store := newMemoryProfileStore()
	llm := &scriptedLLM{credential: true, responses: []string{"```json\n" + `{
	  "personality": {"openness": "high", "extraversion": "low", "riskTolerance": "medium"},
	  "preferences": {"themes": ["food", "culture"], "travelStyle": "premium", "timeWindows": ["weekend"]},
	  "priorExperiences": [{"title": "Rome", "category": "Culture", "year": 2022}],
	  "summary": "A curious foodie."
	}` + "\n```"}}
	svc := NewProfileService(store, llm, "SEK", zap.NewNop())

	resp, err := svc.CreateProfile(context.Background(), validProfileRequest())
	require.NoError(t, err)
	assert.Equal(t, "A curious foodie.", resp.ProfileSummary)
	assert.Equal(t, "CREATIVE", resp.Mode)

	profile, err := svc.GetProfile(context.Background(), uuid.MustParse(resp.ProfileID))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openness": "high", "extraversion": "low", "riskTolerance": "medium"}`, profile.PersonalityJSON)
	assert.JSONEq(t, `[{"title": "Rome", "category": "Culture", "year": 2022}]`, profile.PriorExperiencesJSON)
	assert.Contains(t, llm.prompts[0], "- Capital: 120000 SEK")
}

func TestCreateProfileFallsBackToDefaults(t *testing.T) {
	cases := map[string]*scriptedLLM{
		"no credential":  {credential: false},
		"upstream error": {credential: true, errs: []error{errors.New("boom")}},
		"not json":       {credential: true, responses: []string{"hello there"}},
		"missing parts":  {credential: true, responses: []string{`{"personality": {}}`}},
	}

	for name, llm := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemoryProfileStore()
			svc := NewProfileService(store, llm, "SEK", zap.NewNop())

			resp, err := svc.CreateProfile(context.Background(), validProfileRequest())
			require.NoError(t, err)
			assert.Equal(t, "Profile created successfully", resp.ProfileSummary)

			profile, err := svc.GetProfile(context.Background(), uuid.MustParse(resp.ProfileID))
			require.NoError(t, err)
			assert.Equal(t, defaultPersonalityJSON, profile.PersonalityJSON)
			assert.Equal(t, defaultPreferencesJSON, profile.PreferencesJSON)
			assert.Equal(t, "[]", profile.PriorExperiencesJSON)
		})
	}
}

func TestCreateProfileValidation(t *testing.T) {
	svc := NewProfileService(newMemoryProfileStore(), &scriptedLLM{}, "SEK", zap.NewNop())

	req := validProfileRequest()
	req.Age = 17
	_, err := svc.CreateProfile(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	req = validProfileRequest()
	req.Capital = decimal.NewFromInt(-1)
	_, err = svc.CreateProfile(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	req = validProfileRequest()
	req.Capital = decimal.NewFromInt(10_000_000_000)
	_, err = svc.CreateProfile(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	req = validProfileRequest()
	req.Mode = "RANDOM"
	_, err = svc.CreateProfile(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestCreateProfileAcceptsLowercaseEnums(t *testing.T) {
	svc := NewProfileService(newMemoryProfileStore(), &scriptedLLM{}, "SEK", zap.NewNop())

	req := validProfileRequest()
	req.Gender = "female"
	req.Mode = "creative"
	req.Capital = decimal.RequireFromString("9999999999.99")
	resp, err := svc.CreateProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "CREATIVE", resp.Mode)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(newMemoryProfileStore(), &scriptedLLM{}, "SEK", zap.NewNop())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
