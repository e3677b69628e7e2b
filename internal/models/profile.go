package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Profile struct {
	ID                   uuid.UUID       `db:"id"`
	Gender               Gender          `db:"gender"`
	Age                  int             `db:"age"`
	Capital              decimal.Decimal `db:"capital"`
	Mode                 SuggestionMode  `db:"mode"`
	PersonalityJSON      string          `db:"personality_json"`       // opaque, produced at creation
	PreferencesJSON      string          `db:"preferences_json"`       // opaque, produced at creation
	PriorExperiencesJSON string          `db:"prior_experiences_json"` // opaque, produced at creation
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}
