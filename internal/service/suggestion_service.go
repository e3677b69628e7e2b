package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/metrics"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SuggestionService drives the profile flow: prompt, call the LLM, parse,
// deduplicate and persist.
type SuggestionService struct {
	profiles    ProfileStore
	suggestions SuggestionStore
	feedback    *FeedbackService
	llm         LLMGateway
	cfg         *config.SuggestionConfig
	logger      *zap.Logger
	now         func() time.Time
}

func NewSuggestionService(
	profiles ProfileStore,
	suggestions SuggestionStore,
	feedback *FeedbackService,
	llm LLMGateway,
	cfg *config.SuggestionConfig,
	logger *zap.Logger,
) *SuggestionService {
	return &SuggestionService{
		profiles:    profiles,
		suggestions: suggestions,
		feedback:    feedback,
		llm:         llm,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate asks the LLM for count suggestions and returns the ones that were
// new for the profile. LLM and parse failures yield an empty result; only an
// unknown profile, invalid arguments or a missing credential are errors.
func (s *SuggestionService) Generate(
	ctx context.Context,
	profileID uuid.UUID,
	category models.SpendingCategory,
	mode models.SuggestionMode,
	count int,
) ([]dto.SuggestionResponse, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if mode != models.ModeProven && mode != models.ModeCreative {
		return nil, ErrInvalidMode
	}
	if count < 1 || count > s.cfg.MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if !s.llm.HasValidCredential() {
		return nil, ErrNoCredential
	}

	history, err := s.feedback.GetFeedbackHistory(ctx, profileID, s.cfg.FeedbackHistoryLimit)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generating suggestions",
		zap.String("profile_id", profileID.String()),
		zap.String("category", string(category)),
		zap.String("mode", string(mode)),
		zap.Int("count", count),
		zap.Int("feedback_history", len(history)),
	)

	prompt := BuildSuggestionPrompt(profile, category, mode, count, history, s.cfg.Currency)

	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return nil, err
		}
		s.logger.Error("Suggestion generation failed", zap.String("profile_id", profileID.String()), zap.Error(err))
		return []dto.SuggestionResponse{}, nil
	}

	candidates, err := ParseSuggestionCandidates(text, category, s.logger)
	if err != nil {
		s.logger.Error("Failed to parse suggestions response",
			zap.String("profile_id", profileID.String()),
			zap.Int("response_length", len(text)),
			zap.Error(err),
		)
		return []dto.SuggestionResponse{}, nil
	}

	saved := s.persistCandidates(ctx, profileID, candidates, PromptHash(prompt))

	result := make([]dto.SuggestionResponse, 0, len(saved))
	for _, suggestion := range saved {
		result = append(result, toSuggestionResponse(suggestion))
	}

	metrics.SuggestionsGenerated.WithLabelValues("profile").Add(float64(len(result)))
	s.logger.Info("Suggestions generated",
		zap.String("profile_id", profileID.String()),
		zap.Int("parsed", len(candidates)),
		zap.Int("stored", len(result)),
	)
	return result, nil
}

// persistCandidates drops candidates whose content hash the profile already
// owns, including repeats inside the same batch. A storage error only skips
// the candidate it happened on.
func (s *SuggestionService) persistCandidates(ctx context.Context, profileID uuid.UUID, candidates []Candidate, promptHash string) []*models.Suggestion {
	seen := make(map[string]struct{}, len(candidates))
	saved := make([]*models.Suggestion, 0, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c.ContentHash]; dup {
			s.dropDuplicate(c.Title)
			continue
		}
		seen[c.ContentHash] = struct{}{}

		exists, err := s.suggestions.ExistsByContentHash(ctx, profileID, c.ContentHash)
		if err != nil {
			s.skipUnsaved(c.Title, err)
			continue
		}
		if exists {
			s.dropDuplicate(c.Title)
			continue
		}

		category := c.Category
		priceBand := c.PriceBand
		suggestion := &models.Suggestion{
			ID:               uuid.New(),
			ProfileID:        profileID,
			Title:            c.Title,
			Description:      c.Description,
			Category:         &category,
			PriceBand:        &priceBand,
			EstimatedCost:    c.EstimatedCost,
			SourcePromptHash: promptHash,
			ContentHash:      c.ContentHash,
			BudgetBreakdown:  c.BudgetBreakdown,
			CreatedAt:        s.now(),
		}

		inserted, err := s.suggestions.Save(ctx, suggestion)
		if err != nil {
			s.skipUnsaved(c.Title, err)
			continue
		}
		if !inserted {
			s.dropDuplicate(c.Title)
			continue
		}
		saved = append(saved, suggestion)
	}

	return saved
}

// skipUnsaved keeps one bad row from discarding the rest of the batch.
func (s *SuggestionService) skipUnsaved(title string, err error) {
	metrics.SuggestionsSkipped.Inc()
	s.logger.Warn("Failed to save suggestion, skipping", zap.String("title", title), zap.Error(err))
}

func (s *SuggestionService) dropDuplicate(title string) {
	metrics.SuggestionsDeduplicated.Inc()
	s.logger.Debug("Skipping duplicate suggestion", zap.String("title", title))
}

// GetNext returns the oldest unrated suggestion, generating a fresh batch
// when none is left. A nil result means nothing is available.
func (s *SuggestionService) GetNext(
	ctx context.Context,
	profileID uuid.UUID,
	category models.SpendingCategory,
	mode models.SuggestionMode,
) (*dto.SuggestionResponse, error) {
	unrated, err := s.suggestions.FindUnratedByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unrated suggestions: %w", err)
	}
	if len(unrated) > 0 {
		next := toSuggestionResponse(unrated[0])
		return &next, nil
	}

	generated, err := s.Generate(ctx, profileID, category, mode, s.cfg.DefaultBatchSize)
	if err != nil {
		return nil, err
	}
	if len(generated) == 0 {
		return nil, nil
	}
	return &generated[0], nil
}

// Refill generates an explicit batch. Zero selects the default size.
func (s *SuggestionService) Refill(
	ctx context.Context,
	profileID uuid.UUID,
	category models.SpendingCategory,
	mode models.SuggestionMode,
	batchSize int,
) ([]dto.SuggestionResponse, error) {
	if batchSize == 0 {
		batchSize = s.cfg.DefaultBatchSize
	}
	if batchSize < 1 || batchSize > s.cfg.MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}
	return s.Generate(ctx, profileID, category, mode, batchSize)
}
