package dto

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type CreateProfileRequest struct {
	Gender  string          `json:"gender" validate:"required,oneofci=MALE FEMALE OTHER"`
	Age     int             `json:"age" validate:"required,min=18,max=100"`
	Capital decimal.Decimal `json:"capital" validate:"min=0,max=9999999999.99"`
	Mode    string          `json:"mode" validate:"required,oneofci=PROVEN CREATIVE"`
}

type CreateProfileResponse struct {
	ProfileID      string `json:"profileId"`
	ProfileSummary string `json:"profileSummary"`
	Mode           string `json:"mode"`
}

// ProfileResponse passes the generated profile sections through untouched.
type ProfileResponse struct {
	ID               string          `json:"id"`
	Gender           string          `json:"gender"`
	Age              int             `json:"age"`
	Capital          decimal.Decimal `json:"capital"`
	Mode             string          `json:"mode"`
	Personality      json.RawMessage `json:"personality" swaggertype:"object"`
	Preferences      json.RawMessage `json:"preferences" swaggertype:"object"`
	PriorExperiences json.RawMessage `json:"priorExperiences" swaggertype:"array,object"`
	CreatedAt        time.Time       `json:"createdAt"`
}
