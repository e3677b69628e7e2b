package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPersonalityJSON      = `{"openness":"medium","extraversion":"medium","riskTolerance":"medium"}`
	defaultPreferencesJSON      = `{"themes":["travel","culture"],"travelStyle":"mid","timeWindows":["weekend"]}`
	defaultPriorExperiencesJSON = `[]`
	defaultProfileSummary       = "Profile created successfully"
)

type enrichedProfile struct {
	Personality      json.RawMessage `json:"personality"`
	Preferences      json.RawMessage `json:"preferences"`
	PriorExperiences json.RawMessage `json:"priorExperiences"`
	Summary          string          `json:"summary"`
}

type ProfileService struct {
	profiles ProfileStore
	llm      LLMGateway
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewProfileService(profiles ProfileStore, llm LLMGateway, currency string, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		llm:      llm,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateProfile stores a new profile. The LLM fills in personality,
// preferences and prior experiences; any failure there falls back to
// fixed defaults.
func (s *ProfileService) CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*dto.CreateProfileResponse, error) {
	gender := models.Gender(strings.ToUpper(strings.TrimSpace(req.Gender)))
	if gender != models.GenderMale && gender != models.GenderFemale && gender != models.GenderOther {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, req.Gender)
	}
	mode, ok := models.ParseSuggestionMode(req.Mode)
	if !ok {
		return nil, ErrInvalidMode
	}
	if req.Age < 18 || req.Age > 100 {
		return nil, fmt.Errorf("%w: age must be between 18 and 100", ErrInvalidProfile)
	}
	if !models.AmountFits(req.Capital) {
		return nil, fmt.Errorf("%w: capital must be between 0 and 9999999999.99", ErrInvalidProfile)
	}

	now := s.now()
	profile := &models.Profile{
		ID:        uuid.New(),
		Gender:    gender,
		Age:       req.Age,
		Capital:   req.Capital,
		Mode:      mode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	summary := defaultProfileSummary
	enriched, err := s.enrich(ctx, profile)
	if err != nil {
		s.logger.Warn("Failed to generate enhanced profile, using defaults", zap.Error(err))
		profile.PersonalityJSON = defaultPersonalityJSON
		profile.PreferencesJSON = defaultPreferencesJSON
		profile.PriorExperiencesJSON = defaultPriorExperiencesJSON
	} else {
		profile.PersonalityJSON = string(enriched.Personality)
		profile.PreferencesJSON = string(enriched.Preferences)
		profile.PriorExperiencesJSON = string(enriched.PriorExperiences)
		if text := strings.TrimSpace(enriched.Summary); text != "" {
			summary = text
		}
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("Profile created",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("age", profile.Age),
		zap.String("mode", string(profile.Mode)),
	)

	return &dto.CreateProfileResponse{
		ProfileID:      profile.ID.String(),
		ProfileSummary: summary,
		Mode:           string(profile.Mode),
	}, nil
}

func (s *ProfileService) enrich(ctx context.Context, profile *models.Profile) (*enrichedProfile, error) {
	prompt := BuildProfilePrompt(profile.Gender, profile.Age, profile.Capital, profile.Mode, s.currency)

	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return nil, errors.New("no JSON object in response")
	}

	var enriched enrichedProfile
	if err := json.Unmarshal([]byte(text[start:end+1]), &enriched); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if !isJSONKind(enriched.Personality, '{') || !isJSONKind(enriched.Preferences, '{') || !isJSONKind(enriched.PriorExperiences, '[') {
		return nil, errors.New("profile response is missing sections")
	}

	enriched.Summary = sanitizeUTF8(enriched.Summary)
	return &enriched, nil
}

func isJSONKind(raw json.RawMessage, open byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == open
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
