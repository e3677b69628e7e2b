package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is unique per (SuggestionID, ProfileID).
type Feedback struct {
	ID           uuid.UUID `db:"id"`
	SuggestionID uuid.UUID `db:"suggestion_id"`
	ProfileID    uuid.UUID `db:"profile_id"`
	Verdict      Verdict   `db:"verdict"`
	Reason       string    `db:"reason"`
	CreatedAt    time.Time `db:"created_at"`
}

// FeedbackContext is a feedback row joined with the suggestion it refers to.
type FeedbackContext struct {
	Title       string
	Description string
	Verdict     Verdict
	Reason      string
	CreatedAt   time.Time
}
