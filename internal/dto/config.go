package dto

type APIKeyRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

type APIKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type APIKeyStatusResponse struct {
	HasValidKey bool `json:"hasValidKey"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
