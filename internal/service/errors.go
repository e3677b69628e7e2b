package service

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrInvalidBatchSize   = errors.New("batch size out of range")
	ErrInvalidCategory    = errors.New("unknown spending category")
	ErrInvalidMode        = errors.New("unknown suggestion mode")
	ErrInvalidProfile     = errors.New("invalid profile")

	// ErrNoCredential means no validated LLM API key is configured.
	ErrNoCredential = errors.New("API key required")
	// ErrLLMCallFailed never escapes generation calls; they degrade to an empty result.
	ErrLLMCallFailed = errors.New("LLM call failed")
	ErrInvalidAPIKey = errors.New("invalid API key")
)
