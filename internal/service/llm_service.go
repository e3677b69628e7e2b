package service

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/metrics"
	"github.com/CoooPi/bucketlist-poc/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultOAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

const systemInstruction = `You are an experienced lifestyle and experience planner who writes personalised bucket list suggestions.
You always answer with strictly valid JSON in exactly the structure requested, without markdown or commentary.
All titles and descriptions are written in English.`

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close()
}

// LLMService owns the API key and the GigaChat client built from it. Calls
// are rate limited, guarded by a circuit breaker and bounded by a timeout.
type LLMService struct {
	cfg        *config.LLMConfig
	logger     *zap.Logger
	httpClient *http.Client
	oauthURL   string

	mu        sync.RWMutex
	apiKey    string
	completer completer

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[string]

	newCompleter func(ctx context.Context, apiKey string) (completer, error)
	validateKey  func(ctx context.Context, apiKey string) error
}

func NewLLMService(cfg *config.LLMConfig, logger *zap.Logger) *LLMService {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	s := &LLMService{
		cfg:        cfg,
		logger:     logger,
		httpClient: httpClient,
		oauthURL:   defaultOAuthURL,
		limiter:    rate.NewLimiter(limit, burst),
	}
	s.breaker = newLLMBreaker(cfg, logger)
	s.newCompleter = s.newGigaChatCompleter
	s.validateKey = s.requestAccessToken

	return s
}

func newLLMBreaker(cfg *config.LLMConfig, logger *zap.Logger) *gobreaker.CircuitBreaker[string] {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gigachat",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("LLM circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.LLMCircuitState.Set(breakerStateValue(to))
		},
	})
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// ValidateAndStoreAPIKey checks the key against the OAuth endpoint and, on
// success, replaces the active client. A rejected key leaves the current one
// in place.
func (s *LLMService) ValidateAndStoreAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrInvalidAPIKey
	}

	if err := s.validateKey(ctx, apiKey); err != nil {
		s.logger.Warn("API key validation failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	}

	c, err := s.newCompleter(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	s.mu.Lock()
	previous := s.completer
	s.apiKey = apiKey
	s.completer = c
	s.mu.Unlock()

	if previous != nil {
		previous.Close()
	}

	s.logger.Info("API key validated and stored")
	return nil
}

func (s *LLMService) HasValidCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completer != nil
}

func (s *LLMService) ClearAPIKey() {
	s.mu.Lock()
	previous := s.completer
	s.apiKey = ""
	s.completer = nil
	s.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	s.logger.Info("API key cleared")
}

// Complete sends one user prompt and returns the model's text.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.RLock()
	c := s.completer
	s.mu.RUnlock()

	started := time.Now()
	if c == nil {
		metrics.ObserveLLMRequest("no_credential", started)
		return "", ErrNoCredential
	}

	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	if err := s.limiter.Wait(ctx); err != nil {
		metrics.ObserveLLMRequest("error", started)
		return "", fmt.Errorf("%w: rate limiter: %w", ErrLLMCallFailed, err)
	}

	text, err := s.breaker.Execute(func() (string, error) {
		return c.Complete(ctx, prompt)
	})
	if err != nil {
		status := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			status = "circuit_open"
		}
		metrics.ObserveLLMRequest(status, started)
		s.logger.Error("LLM request failed",
			zap.String("status", status),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrLLMCallFailed, err)
	}

	metrics.ObserveLLMRequest("ok", started)
	s.logger.Debug("LLM request completed",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("response_length", len(text)),
	)
	return text, nil
}

func (s *LLMService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completer != nil {
		s.completer.Close()
		s.completer = nil
	}
}

type gigaChatCompleter struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
}

func (s *LLMService) newGigaChatCompleter(ctx context.Context, apiKey string) (completer, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(s.cfg.Scope),
	}
	if s.cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
	}

	client, err := gigago.NewClient(ctx, apiKey, opts...)
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(s.cfg.Model)
	model.SystemInstruction = systemInstruction
	model.Temperature = 0.7

	return &gigaChatCompleter{client: client, model: model}, nil
}

func (g *gigaChatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := g.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *gigaChatCompleter) Close() {
	g.client.Close()
}

// requestAccessToken exchanges the key for an OAuth token. The key is
// expected to be the Base64 authorization data issued by the vendor.
func (s *LLMService) requestAccessToken(ctx context.Context, apiKey string) error {
	rqUID := uuid.New().String()

	formData := url.Values{}
	formData.Set("scope", s.cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.oauthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	req.Header.Set("Authorization", "Basic "+apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("OAuth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Warn("OAuth request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(body)),
			zap.String("rq_uid", rqUID),
		)
		return fmt.Errorf("OAuth failed with status %d", resp.StatusCode)
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   int64  `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return errors.New("empty access token in OAuth response")
	}

	return nil
}
