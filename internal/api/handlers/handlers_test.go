package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/internal/repository"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/config"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLLM struct {
	credential bool
	response   string
}

func (s *stubLLM) HasValidCredential() bool { return s.credential }

func (s *stubLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if !s.credential {
		return "", service.ErrNoCredential
	}
	return s.response, nil
}

type profileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.Profile
}

func (p *profileStore) Create(ctx context.Context, profile *models.Profile) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[profile.ID] = profile
	return nil
}

func (p *profileStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profiles[id], nil
}

const sessionResponse = `[
  {"title": "Northern lights", "description": "Chase auroras in Abisko", "category": "Travel & Vacation",
   "priceBreakdown": {"currency": "SEK", "lineItems": [{"name": "Train", "price": 1500, "description": "Night train"}]}},
  {"title": "Spa weekend", "description": "Two nights at a spa hotel", "category": "Health & Wellness",
   "priceBreakdown": {"currency": "SEK", "lineItems": [{"name": "Hotel", "price": 4000, "description": "Two nights"}]}}
]`

func newTestApp(llm *stubLLM) *fiber.App {
	logger := zap.NewNop()
	profiles := &profileStore{profiles: make(map[uuid.UUID]*models.Profile)}

	profileService := service.NewProfileService(profiles, llm, "SEK", logger)
	sessionService := service.NewSessionService(repository.NewSessionStore(logger), llm, "SEK", logger)
	feedbackService := service.NewFeedbackService(nil, nil, 20, logger)
	suggestionService := service.NewSuggestionService(profiles, nil, feedbackService, llm, &config.SuggestionConfig{
		DefaultBatchSize: 5,
		MaxBatchSize:     10,
	}, logger)
	llmService := service.NewLLMService(&config.LLMConfig{}, logger)

	profileHandler := NewProfileHandler(profileService, logger)
	sessionHandler := NewSessionHandler(sessionService, logger)
	suggestionHandler := NewSuggestionHandler(suggestionService, feedbackService, logger)
	configHandler := NewConfigHandler(llmService, logger)

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Post("/api/profile", profileHandler.CreateProfile)
	app.Get("/api/profile/:id", profileHandler.GetProfile)
	app.Post("/api/suggestions/generate", suggestionHandler.Generate)
	app.Post("/api/suggestions/feedback", suggestionHandler.Feedback)
	app.Get("/api/suggestions/next", suggestionHandler.Next)
	app.Post("/api/session/create", sessionHandler.CreateSession)
	app.Post("/api/suggestions/accept", sessionHandler.Accept)
	app.Post("/api/suggestions/reject", sessionHandler.Reject)
	app.Get("/api/suggestions/accepted/:sessionId", sessionHandler.Accepted)
	app.Get("/api/suggestions/rejected/:sessionId", sessionHandler.Rejected)
	app.Get("/api/suggestions/next/:sessionId", sessionHandler.Next)
	app.Get("/api/suggestions/:sessionId", sessionHandler.Suggestions)
	app.Get("/api/config/api-key/status", configHandler.APIKeyStatus)
	app.Post("/api/config/api-key", configHandler.SetAPIKey)
	app.Delete("/api/config/api-key", configHandler.ClearAPIKey)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func TestCreateProfileHandler(t *testing.T) {
	app := newTestApp(&stubLLM{})

	var created dto.CreateProfileResponse
	status := doJSON(t, app, http.MethodPost, "/api/profile", fiber.Map{
		"gender": "MALE", "age": 40, "capital": 250000, "mode": "PROVEN",
	}, &created)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Profile created successfully", created.ProfileSummary)
	assert.Equal(t, "PROVEN", created.Mode)

	var profile dto.ProfileResponse
	status = doJSON(t, app, http.MethodGet, "/api/profile/"+created.ProfileID, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 40, profile.Age)
	assert.JSONEq(t, "[]", string(profile.PriorExperiences))
}

func TestCreateProfileHandlerValidation(t *testing.T) {
	app := newTestApp(&stubLLM{})

	var errResp dto.ErrorResponse
	status := doJSON(t, app, http.MethodPost, "/api/profile", fiber.Map{
		"gender": "MALE", "age": 16, "capital": 1000, "mode": "PROVEN",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "age: must be at least 18", errResp.Error)

	status = doJSON(t, app, http.MethodPost, "/api/profile", fiber.Map{
		"gender": "MALE", "age": 40, "capital": 25000000000, "mode": "PROVEN",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "capital: must be at most 9999999999.99", errResp.Error)

	status = doJSON(t, app, http.MethodGet, "/api/profile/"+uuid.NewString(), nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateProfileHandlerLowercaseEnums(t *testing.T) {
	app := newTestApp(&stubLLM{})

	var created dto.CreateProfileResponse
	status := doJSON(t, app, http.MethodPost, "/api/profile", fiber.Map{
		"gender": "female", "age": 35, "capital": 1000, "mode": "creative",
	}, &created)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "CREATIVE", created.Mode)

	// lowercase mode passes validation and reaches the profile lookup
	var errResp dto.ErrorResponse
	status = doJSON(t, app, http.MethodPost, "/api/suggestions/generate", fiber.Map{
		"profileId": uuid.NewString(), "category": "Travel & Vacation", "mode": "proven", "count": 3,
	}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSuggestionHandlerErrors(t *testing.T) {
	app := newTestApp(&stubLLM{credential: true})

	var errResp dto.ErrorResponse
	status := doJSON(t, app, http.MethodPost, "/api/suggestions/generate", fiber.Map{
		"profileId": uuid.NewString(), "category": "Space", "mode": "PROVEN", "count": 3,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid category", errResp.Error)

	status = doJSON(t, app, http.MethodPost, "/api/suggestions/generate", fiber.Map{
		"profileId": uuid.NewString(), "category": "Travel & Vacation", "mode": "PROVEN", "count": 3,
	}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, app, http.MethodPost, "/api/suggestions/feedback", fiber.Map{
		"profileId": uuid.NewString(), "suggestionId": uuid.NewString(), "verdict": "MAYBE",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	status = doJSON(t, app, http.MethodGet, "/api/suggestions/next?profileId=nope&category=SMALL_LUXURY&mode=PROVEN", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid profile ID", errResp.Error)
}

func TestSessionHandlerFlow(t *testing.T) {
	app := newTestApp(&stubLLM{credential: true, response: sessionResponse})

	var session dto.CreateSessionResponse
	status := doJSON(t, app, http.MethodPost, "/api/session/create", fiber.Map{
		"personDescription": "Outdoorsy teacher from Gothenburg",
	}, &session)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, session.SessionID)

	var list dto.SessionSuggestionsResponse
	status = doJSON(t, app, http.MethodGet, "/api/suggestions/"+session.SessionID, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Suggestions, 2)
	assert.Equal(t, "Travel & Vacation", list.Suggestions[0].Category)
	assert.Equal(t, "1500", list.Suggestions[0].PriceBreakdown.TotalCost.String())

	status = doJSON(t, app, http.MethodPost, "/api/suggestions/accept", fiber.Map{
		"sessionId": session.SessionID, "suggestionId": list.Suggestions[0].ID,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	status = doJSON(t, app, http.MethodPost, "/api/suggestions/reject", fiber.Map{
		"sessionId": session.SessionID, "suggestionId": list.Suggestions[1].ID, "reason": "Too pricey", "customReason": true,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var accepted dto.SessionSuggestionsResponse
	status = doJSON(t, app, http.MethodGet, "/api/suggestions/accepted/"+session.SessionID, nil, &accepted)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, accepted.Suggestions, 1)
	assert.Equal(t, "Northern lights", accepted.Suggestions[0].Title)

	var rejected dto.SessionSuggestionsResponse
	status = doJSON(t, app, http.MethodGet, "/api/suggestions/rejected/"+session.SessionID, nil, &rejected)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, rejected.Suggestions, 1)
	assert.Equal(t, []string{"Too pricey"}, rejected.Suggestions[0].RejectionReasons)

	// every suggestion reviewed, so next regenerates a fresh list
	var next dto.SessionSuggestionResponse
	status = doJSON(t, app, http.MethodGet, "/api/suggestions/next/"+session.SessionID, nil, &next)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Northern lights", next.Title)
	assert.NotEqual(t, list.Suggestions[0].ID, next.ID)
}

func TestSessionHandlerErrors(t *testing.T) {
	app := newTestApp(&stubLLM{})

	var errResp dto.ErrorResponse
	status := doJSON(t, app, http.MethodGet, "/api/suggestions/"+uuid.NewString(), nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	var session dto.CreateSessionResponse
	status = doJSON(t, app, http.MethodPost, "/api/session/create", fiber.Map{"personDescription": "Anyone"}, &session)
	require.Equal(t, http.StatusOK, status)

	status = doJSON(t, app, http.MethodGet, "/api/suggestions/"+session.SessionID, nil, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "API key required", errResp.Error)

	status = doJSON(t, app, http.MethodPost, "/api/session/create", fiber.Map{}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestConfigHandler(t *testing.T) {
	app := newTestApp(&stubLLM{})

	var keyStatus dto.APIKeyStatusResponse
	status := doJSON(t, app, http.MethodGet, "/api/config/api-key/status", nil, &keyStatus)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, keyStatus.HasValidKey)

	var keyResp dto.APIKeyResponse
	status = doJSON(t, app, http.MethodPost, "/api/config/api-key", fiber.Map{"apiKey": ""}, &keyResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, keyResp.Valid)

	status = doJSON(t, app, http.MethodDelete, "/api/config/api-key", nil, &keyResp)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, keyResp.Valid)
}
