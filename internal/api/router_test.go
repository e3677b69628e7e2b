package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CoooPi/bucketlist-poc/internal/api/handlers"
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

// storedSuggestions serves a fixed list and never stores anything new.
type storedSuggestions struct {
	items []*models.Suggestion
}

func (s *storedSuggestions) ExistsByContentHash(ctx context.Context, profileID uuid.UUID, hash string) (bool, error) {
	return false, nil
}

func (s *storedSuggestions) Save(ctx context.Context, suggestion *models.Suggestion) (bool, error) {
	return false, nil
}

func (s *storedSuggestions) FindUnratedByProfile(ctx context.Context, profileID uuid.UUID) ([]*models.Suggestion, error) {
	var out []*models.Suggestion
	for _, item := range s.items {
		if item.ProfileID == profileID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *storedSuggestions) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Suggestion, error) {
	return nil, nil
}

type knownProfiles struct{}

func (knownProfiles) Create(ctx context.Context, profile *models.Profile) error { return nil }

func (knownProfiles) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return &models.Profile{ID: id, Gender: "MALE", Age: 40}, nil
}

func newTestRouter(t *testing.T, stored ...*models.Suggestion) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	llm := service.NewLLMService(&config.LLMConfig{}, logger)
	sessionService := service.NewSessionService(repository.NewSessionStore(logger), llm, "SEK", logger)
	store := &storedSuggestions{items: stored}
	feedbackService := service.NewFeedbackService(nil, store, 20, logger)
	suggestionService := service.NewSuggestionService(knownProfiles{}, store, feedbackService, llm, &config.SuggestionConfig{
		DefaultBatchSize: 5,
		MaxBatchSize:     10,
	}, logger)

	h := Handlers{
		Profile:    handlers.NewProfileHandler(nil, logger),
		Suggestion: handlers.NewSuggestionHandler(suggestionService, feedbackService, logger),
		Session:    handlers.NewSessionHandler(sessionService, logger),
		Config:     handlers.NewConfigHandler(llm, logger),
	}
	return SetupRouter(h, llm, &config.ServerConfig{AllowOrigins: "http://localhost:5173"}, logger)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGenerationRoutesRequireKey(t *testing.T) {
	app := newTestRouter(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/suggestions/generate", nil),
		httptest.NewRequest(http.MethodPost, "/api/suggestions/refill", nil),
		httptest.NewRequest(http.MethodPost, "/api/suggestions/regenerate", nil),
	} {
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body := readBody(t, resp)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, req.URL.Path)
		assert.JSONEq(t, `{"error": "API key required"}`, body)
	}
}

func TestNextServesStoredSuggestionWithoutKey(t *testing.T) {
	profileID := uuid.New()
	app := newTestRouter(t, &models.Suggestion{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Title:       "Kayak the archipelago",
		Description: "Three days of paddling",
		ContentHash: "kayak",
	})

	path := "/api/suggestions/next?profileId=" + profileID.String() + "&category=SMALL_LUXURY&mode=PROVEN"
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Kayak the archipelago")

	// nothing stored, so the answer depends on generation and the key
	path = "/api/suggestions/next?profileId=" + uuid.NewString() + "&category=SMALL_LUXURY&mode=PROVEN"
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error": "API key required"}`, body)
}

func TestSessionRoutesMountedUnderSuggestions(t *testing.T) {
	app := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session/create", strings.NewReader(`{"personDescription": "Retired sailor"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := readBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var created struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.SessionID)

	for _, path := range []string{
		"/api/suggestions/accepted/" + created.SessionID,
		"/api/suggestions/rejected/" + created.SessionID,
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		body := readBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.JSONEq(t, `{"suggestions": []}`, body, path)
	}

	// without a key the session list cannot be generated
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/suggestions/"+created.SessionID, nil), -1)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/suggestions/next/"+uuid.NewString(), nil), -1)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/suggestions/accept",
		strings.NewReader(`{"sessionId": "`+uuid.NewString()+`", "suggestionId": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error"`)
}

func TestKeyStatusIsPublic(t *testing.T) {
	app := newTestRouter(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/config/api-key/status", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"hasValidKey": false}`, string(body))
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestRouter(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestUnknownRouteUsesErrorHandler(t *testing.T) {
	app := newTestRouter(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}
