package service

import (
	"context"
	"sort"
	"sync"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/google/uuid"
)

type memoryProfileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.Profile
}

func newMemoryProfileStore(profiles ...*models.Profile) *memoryProfileStore {
	store := &memoryProfileStore{profiles: make(map[uuid.UUID]*models.Profile)}
	for _, p := range profiles {
		store.profiles[p.ID] = p
	}
	return store
}

func (m *memoryProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *profile
	m.profiles[profile.ID] = &copied
	return nil
}

func (m *memoryProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

type memorySuggestionStore struct {
	mu          sync.Mutex
	suggestions []*models.Suggestion
	feedback    *memoryFeedbackStore
	saves       int
	failSave    func(*models.Suggestion) error
}

func (m *memorySuggestionStore) ExistsByContentHash(ctx context.Context, profileID uuid.UUID, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.suggestions {
		if s.ProfileID == profileID && s.ContentHash == hash {
			return true, nil
		}
	}
	return false, nil
}

func (m *memorySuggestionStore) Save(ctx context.Context, suggestion *models.Suggestion) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		if err := m.failSave(suggestion); err != nil {
			return false, err
		}
	}
	for _, s := range m.suggestions {
		if s.ProfileID == suggestion.ProfileID && s.ContentHash == suggestion.ContentHash {
			return false, nil
		}
	}
	m.saves++
	m.suggestions = append(m.suggestions, suggestion)
	return true, nil
}

func (m *memorySuggestionStore) FindUnratedByProfile(ctx context.Context, profileID uuid.UUID) ([]*models.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Suggestion
	for _, s := range m.suggestions {
		if s.ProfileID != profileID {
			continue
		}
		if m.feedback != nil && m.feedback.has(s.ID, profileID) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memorySuggestionStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []*models.Suggestion
	for _, s := range m.suggestions {
		if _, ok := wanted[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type memoryFeedbackStore struct {
	mu       sync.Mutex
	feedback []*models.Feedback
}

func (m *memoryFeedbackStore) has(suggestionID, profileID uuid.UUID) bool {
	for _, f := range m.feedback {
		if f.SuggestionID == suggestionID && f.ProfileID == profileID {
			return true
		}
	}
	return false
}

func (m *memoryFeedbackStore) ExistsFor(ctx context.Context, suggestionID, profileID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has(suggestionID, profileID), nil
}

func (m *memoryFeedbackStore) Save(ctx context.Context, feedback *models.Feedback) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.has(feedback.SuggestionID, feedback.ProfileID) {
		return false, nil
	}
	m.feedback = append(m.feedback, feedback)
	return true, nil
}

func (m *memoryFeedbackStore) FindByProfileAndVerdict(ctx context.Context, profileID uuid.UUID, verdict models.Verdict) ([]*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Feedback
	for _, f := range m.feedback {
		if f.ProfileID == profileID && f.Verdict == verdict {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryFeedbackStore) FindByProfileOrderedDesc(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Feedback
	for _, f := range m.feedback {
		if f.ProfileID == profileID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// scriptedLLM replays responses in order and records every prompt.
type scriptedLLM struct {
	mu         sync.Mutex
	credential bool
	responses  []string
	errs       []error
	prompts    []string
}

func (s *scriptedLLM) HasValidCredential() bool {
	return s.credential
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.credential {
		return "", ErrNoCredential
	}
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "[]", nil
}

func (s *scriptedLLM) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
