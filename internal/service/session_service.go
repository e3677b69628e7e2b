package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/metrics"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session suggestions that match no category land here.
const sessionFallbackCategory = models.CategoryOptionalAddons

// SessionService drives the profile-less flow where everything lives in
// memory for the lifetime of a session.
type SessionService struct {
	store    SessionStore
	llm      LLMGateway
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionService(store SessionStore, llm LLMGateway, currency string, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:    store,
		llm:      llm,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SessionService) CreateSession(personDescription string) (*models.PersonSession, error) {
	session := models.PersonSession{
		ID:                uuid.New().String(),
		PersonDescription: strings.TrimSpace(sanitizeUTF8(personDescription)),
		CreatedAt:         s.now(),
	}
	if err := s.store.Create(models.NewSessionState(session)); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Session created", zap.String("session_id", session.ID))
	return &session, nil
}

func (s *SessionService) DeleteSession(sessionID string) {
	s.store.Delete(sessionID)
}

// GetSuggestions returns the current list, generating one if it is empty.
func (s *SessionService) GetSuggestions(ctx context.Context, sessionID string) ([]models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Suggestions) > 0 {
		return state.Suggestions, nil
	}
	return s.generate(ctx, state)
}

func (s *SessionService) Accept(sessionID, suggestionID string) error {
	err := s.store.Update(sessionID, func(state *models.SessionState) error {
		suggestion, ok := state.FindSuggestion(suggestionID)
		if !ok {
			return ErrSuggestionNotFound
		}
		if state.IsReviewed(suggestionID) {
			s.logger.Warn("Suggestion already reviewed",
				zap.String("session_id", sessionID),
				zap.String("suggestion_id", suggestionID),
			)
			return nil
		}

		state.Accepted = append(state.Accepted, suggestion)
		state.Reviewed[suggestionID] = struct{}{}
		return nil
	})
	return s.mapStoreError(err)
}

func (s *SessionService) Reject(sessionID, suggestionID, reason string, customReason bool) error {
	reason = strings.TrimSpace(sanitizeUTF8(reason))

	err := s.store.Update(sessionID, func(state *models.SessionState) error {
		suggestion, ok := state.FindSuggestion(suggestionID)
		if !ok {
			return ErrSuggestionNotFound
		}
		if state.IsReviewed(suggestionID) {
			s.logger.Warn("Suggestion already reviewed",
				zap.String("session_id", sessionID),
				zap.String("suggestion_id", suggestionID),
			)
			return nil
		}

		if reason != "" {
			suggestion.RejectionReasons = append(suggestion.RejectionReasons, reason)
		}
		state.Rejected = append(state.Rejected, models.RejectedBucketListSuggestion{
			Suggestion: suggestion,
			Feedback: models.RejectionFeedback{
				SuggestionID:   suggestionID,
				Reason:         reason,
				IsCustomReason: customReason,
			},
			RejectedAt: s.now(),
		})
		state.Reviewed[suggestionID] = struct{}{}
		return nil
	})
	return s.mapStoreError(err)
}

func (s *SessionService) GetAccepted(sessionID string) ([]models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Accepted, nil
}

// GetRejected returns rejected suggestions in rejection order, each carrying
// its rejection reasons.
func (s *SessionService) GetRejected(sessionID string) ([]models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	rejected := make([]models.BucketListSuggestion, 0, len(state.Rejected))
	for _, r := range state.Rejected {
		rejected = append(rejected, r.Suggestion)
	}
	return rejected, nil
}

// GetNextUnreviewed returns the first suggestion in list order that has not
// been accepted or rejected, or nil.
func (s *SessionService) GetNextUnreviewed(sessionID string) (*models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	return nextUnreviewed(state), nil
}

func nextUnreviewed(state *models.SessionState) *models.BucketListSuggestion {
	for i := range state.Suggestions {
		if !state.IsReviewed(state.Suggestions[i].ID) {
			suggestion := state.Suggestions[i]
			return &suggestion
		}
	}
	return nil
}

// ShouldRegenerate reports whether the current list is non-empty and fully reviewed.
func (s *SessionService) ShouldRegenerate(sessionID string) (bool, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return false, err
	}
	return exhausted(state), nil
}

func exhausted(state *models.SessionState) bool {
	if len(state.Suggestions) == 0 {
		return false
	}
	for _, suggestion := range state.Suggestions {
		if !state.IsReviewed(suggestion.ID) {
			return false
		}
	}
	return true
}

// Regenerate builds a new list from the session's accepted and rejected
// history and replaces the current one.
func (s *SessionService) Regenerate(ctx context.Context, sessionID string) ([]models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, state)
}

// NextOrRegenerate returns the next unreviewed suggestion and regenerates
// once the list is exhausted. A nil result means nothing is available.
func (s *SessionService) NextOrRegenerate(ctx context.Context, sessionID string) (*models.BucketListSuggestion, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	if next := nextUnreviewed(state); next != nil {
		return next, nil
	}
	if !exhausted(state) {
		return nil, nil
	}

	suggestions, err := s.generate(ctx, state)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, nil
	}
	return &suggestions[0], nil
}

// ValidateCategoryDiversity reports whether every suggestion has its own
// category. Violations are logged only.
func (s *SessionService) ValidateCategoryDiversity(suggestions []models.BucketListSuggestion) bool {
	counts := make(map[models.SpendingCategory]int, len(suggestions))
	for _, suggestion := range suggestions {
		counts[suggestion.Category]++
	}
	if len(counts) == len(suggestions) {
		return true
	}

	repeated := make([]string, 0)
	for _, c := range models.SpendingCategories {
		if counts[c] > 1 {
			repeated = append(repeated, fmt.Sprintf("%s=%d", c, counts[c]))
		}
	}

	metrics.CategoryDiversityViolations.Inc()
	s.logger.Warn("Suggestion batch repeats categories",
		zap.Int("suggestions", len(suggestions)),
		zap.Int("distinct_categories", len(counts)),
		zap.Strings("repeated", repeated),
	)
	return false
}

// generate calls the LLM outside the session lock and swaps the list in on
// success. An empty result keeps the previous list.
func (s *SessionService) generate(ctx context.Context, state *models.SessionState) ([]models.BucketListSuggestion, error) {
	sessionID := state.Session.ID
	if !s.llm.HasValidCredential() {
		return nil, ErrNoCredential
	}

	prompt := BuildSessionPrompt(state.Session.PersonDescription, state.Accepted, state.Rejected, s.currency)

	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return nil, err
		}
		s.logger.Error("Session generation failed", zap.String("session_id", sessionID), zap.Error(err))
		return []models.BucketListSuggestion{}, nil
	}

	candidates, err := ParseSuggestionCandidates(text, sessionFallbackCategory, s.logger)
	if err != nil {
		s.logger.Error("Failed to parse session suggestions",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return []models.BucketListSuggestion{}, nil
	}

	suggestions := make([]models.BucketListSuggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, s.toBucketListSuggestion(c))
	}
	if len(suggestions) == 0 {
		return suggestions, nil
	}

	s.ValidateCategoryDiversity(suggestions)

	err = s.store.Update(sessionID, func(state *models.SessionState) error {
		state.Suggestions = suggestions
		state.Reviewed = make(map[string]struct{})
		return nil
	})
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	metrics.SuggestionsGenerated.WithLabelValues("session").Add(float64(len(suggestions)))
	s.logger.Info("Session suggestions generated",
		zap.String("session_id", sessionID),
		zap.Int("count", len(suggestions)),
		zap.Int("accepted_context", len(state.Accepted)),
		zap.Int("rejected_context", len(state.Rejected)),
	)
	return suggestions, nil
}

func (s *SessionService) toBucketListSuggestion(c Candidate) models.BucketListSuggestion {
	lineItems := c.LineItems
	if len(lineItems) == 0 {
		for _, item := range c.BudgetBreakdown {
			lineItems = append(lineItems, models.LineItem{
				Name:        item.Category,
				Price:       item.Amount,
				Description: item.Description,
			})
		}
	}
	if lineItems == nil {
		lineItems = []models.LineItem{}
	}

	currency := c.Currency
	if currency == "" {
		currency = s.currency
	}

	return models.BucketListSuggestion{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		PriceBreakdown: models.PriceBreakdown{
			LineItems: lineItems,
			Currency:  currency,
		},
		RejectionReasons: []string{},
	}
}

func (s *SessionService) state(sessionID string) (*models.SessionState, error) {
	state, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

func (s *SessionService) mapStoreError(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}
