package service

import (
	"context"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/google/uuid"
)

// LLMGateway returns ErrNoCredential when no key is configured and wraps
// every other failure in ErrLLMCallFailed.
type LLMGateway interface {
	HasValidCredential() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProfileStore returns a nil profile and nil error when the id is unknown.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type SuggestionStore interface {
	ExistsByContentHash(ctx context.Context, profileID uuid.UUID, contentHash string) (bool, error)
	// Save inserts unless the profile already owns the content hash.
	Save(ctx context.Context, suggestion *models.Suggestion) (bool, error)
	// FindUnratedByProfile returns suggestions without feedback, oldest first.
	FindUnratedByProfile(ctx context.Context, profileID uuid.UUID) ([]*models.Suggestion, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Suggestion, error)
}

type FeedbackStore interface {
	ExistsFor(ctx context.Context, suggestionID, profileID uuid.UUID) (bool, error)
	// Save inserts unless a record for the pair exists.
	Save(ctx context.Context, feedback *models.Feedback) (bool, error)
	FindByProfileAndVerdict(ctx context.Context, profileID uuid.UUID, verdict models.Verdict) ([]*models.Feedback, error)
	FindByProfileOrderedDesc(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Feedback, error)
}

// SessionStore serialises access per session id. Get returns a snapshot;
// mutations go through Update.
type SessionStore interface {
	Create(state *models.SessionState) error
	Get(id string) (*models.SessionState, bool)
	Update(id string, fn func(state *models.SessionState) error) error
	Delete(id string)
}
