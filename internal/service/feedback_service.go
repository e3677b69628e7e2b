package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/metrics"
	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService struct {
	feedback     FeedbackStore
	suggestions  SuggestionStore
	historyLimit int
	logger       *zap.Logger
	now          func() time.Time
}

func NewFeedbackService(feedback FeedbackStore, suggestions SuggestionStore, historyLimit int, logger *zap.Logger) *FeedbackService {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &FeedbackService{
		feedback:     feedback,
		suggestions:  suggestions,
		historyLimit: historyLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// RecordFeedback stores a verdict once per (suggestion, profile). A repeated
// submission is logged and reported as not recorded, never as an error.
func (s *FeedbackService) RecordFeedback(ctx context.Context, profileID, suggestionID uuid.UUID, verdict models.Verdict, reason string) (bool, error) {
	if verdict != models.VerdictAccept && verdict != models.VerdictReject {
		return false, fmt.Errorf("unknown verdict %q", verdict)
	}

	found, err := s.suggestions.FindByIDs(ctx, []uuid.UUID{suggestionID})
	if err != nil {
		return false, fmt.Errorf("failed to load suggestion: %w", err)
	}
	if len(found) == 0 {
		return false, ErrSuggestionNotFound
	}

	exists, err := s.feedback.ExistsFor(ctx, suggestionID, profileID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if exists {
		s.duplicate(profileID, suggestionID)
		return false, nil
	}

	feedback := &models.Feedback{
		ID:           uuid.New(),
		SuggestionID: suggestionID,
		ProfileID:    profileID,
		Verdict:      verdict,
		Reason:       strings.TrimSpace(sanitizeUTF8(reason)),
		CreatedAt:    s.now(),
	}

	inserted, err := s.feedback.Save(ctx, feedback)
	if err != nil {
		return false, fmt.Errorf("failed to save feedback: %w", err)
	}
	if !inserted {
		// lost a race with a concurrent submission
		s.duplicate(profileID, suggestionID)
		return false, nil
	}

	metrics.FeedbackRecorded.WithLabelValues(string(verdict)).Inc()
	s.logger.Info("Feedback recorded",
		zap.String("profile_id", profileID.String()),
		zap.String("suggestion_id", suggestionID.String()),
		zap.String("verdict", string(verdict)),
	)
	return true, nil
}

func (s *FeedbackService) duplicate(profileID, suggestionID uuid.UUID) {
	metrics.FeedbackDuplicates.Inc()
	s.logger.Warn("Feedback already exists",
		zap.String("profile_id", profileID.String()),
		zap.String("suggestion_id", suggestionID.String()),
	)
}

// GetAccepted lists accepted suggestions, most recently accepted first.
func (s *FeedbackService) GetAccepted(ctx context.Context, profileID uuid.UUID) ([]dto.SuggestionResponse, error) {
	feedback, suggestions, err := s.joined(ctx, profileID, models.VerdictAccept)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SuggestionResponse, 0, len(feedback))
	for _, f := range feedback {
		if suggestion, ok := suggestions[f.SuggestionID]; ok {
			result = append(result, toSuggestionResponse(suggestion))
		}
	}
	return result, nil
}

// GetRejected lists rejected suggestions with their reasons, most recent first.
func (s *FeedbackService) GetRejected(ctx context.Context, profileID uuid.UUID) ([]dto.RejectedSuggestionResponse, error) {
	feedback, suggestions, err := s.joined(ctx, profileID, models.VerdictReject)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RejectedSuggestionResponse, 0, len(feedback))
	for _, f := range feedback {
		suggestion, ok := suggestions[f.SuggestionID]
		if !ok {
			continue
		}
		result = append(result, dto.RejectedSuggestionResponse{
			SuggestionResponse: toSuggestionResponse(suggestion),
			Reason:             f.Reason,
			RejectedAt:         f.CreatedAt,
		})
	}
	return result, nil
}

// GetFeedbackHistory returns up to limit feedback records joined with their
// suggestions, most recent first. Non-positive limit uses the configured one.
func (s *FeedbackService) GetFeedbackHistory(ctx context.Context, profileID uuid.UUID, limit int) ([]models.FeedbackContext, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}

	feedback, err := s.feedback.FindByProfileOrderedDesc(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback history: %w", err)
	}
	sortFeedbackDesc(feedback)
	if len(feedback) > limit {
		feedback = feedback[:limit]
	}

	suggestions, err := s.suggestionsFor(ctx, feedback)
	if err != nil {
		return nil, err
	}

	history := make([]models.FeedbackContext, 0, len(feedback))
	for _, f := range feedback {
		suggestion, ok := suggestions[f.SuggestionID]
		if !ok {
			continue
		}
		history = append(history, models.FeedbackContext{
			Title:       suggestion.Title,
			Description: suggestion.Description,
			Verdict:     f.Verdict,
			Reason:      f.Reason,
			CreatedAt:   f.CreatedAt,
		})
	}
	return history, nil
}

func (s *FeedbackService) joined(ctx context.Context, profileID uuid.UUID, verdict models.Verdict) ([]*models.Feedback, map[uuid.UUID]*models.Suggestion, error) {
	feedback, err := s.feedback.FindByProfileAndVerdict(ctx, profileID, verdict)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	sortFeedbackDesc(feedback)

	suggestions, err := s.suggestionsFor(ctx, feedback)
	if err != nil {
		return nil, nil, err
	}
	return feedback, suggestions, nil
}

func (s *FeedbackService) suggestionsFor(ctx context.Context, feedback []*models.Feedback) (map[uuid.UUID]*models.Suggestion, error) {
	ids := make([]uuid.UUID, 0, len(feedback))
	for _, f := range feedback {
		ids = append(ids, f.SuggestionID)
	}

	found, err := s.suggestions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Suggestion, len(found))
	for _, suggestion := range found {
		byID[suggestion.ID] = suggestion
	}
	return byID, nil
}

func sortFeedbackDesc(feedback []*models.Feedback) {
	sort.SliceStable(feedback, func(i, j int) bool {
		return feedback[i].CreatedAt.After(feedback[j].CreatedAt)
	})
}

func toSuggestionResponse(s *models.Suggestion) dto.SuggestionResponse {
	resp := dto.SuggestionResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Description:     s.Description,
		EstimatedCost:   s.EstimatedCost,
		BudgetBreakdown: make([]dto.BudgetItemResponse, 0, len(s.BudgetBreakdown)),
	}
	if s.Category != nil {
		category := s.Category.DisplayName()
		resp.Category = &category
	}
	if s.PriceBand != nil {
		band := string(*s.PriceBand)
		resp.PriceBand = &band
	}
	for _, item := range s.BudgetBreakdown {
		resp.BudgetBreakdown = append(resp.BudgetBreakdown, dto.BudgetItemResponse{
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return resp
}
