package handlers

import (
	"errors"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConfigHandler struct {
	llmService *service.LLMService
	logger     *zap.Logger
}

func NewConfigHandler(llmService *service.LLMService, logger *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		llmService: llmService,
		logger:     logger,
	}
}

// SetAPIKey godoc
// @Summary Set the LLM API key
// @Description Validate the key against the vendor's OAuth endpoint and store it
// @Tags config
// @Accept json
// @Produce json
// @Param request body dto.APIKeyRequest true "API key"
// @Success 200 {object} dto.APIKeyResponse
// @Failure 400 {object} dto.APIKeyResponse
// @Router /api/config/api-key [post]
func (h *ConfigHandler) SetAPIKey(c *fiber.Ctx) error {
	var req dto.APIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIKeyResponse{
			Valid:   false,
			Message: "Invalid request body",
		})
	}
	if err := validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIKeyResponse{
			Valid:   false,
			Message: err.Error(),
		})
	}

	if err := h.llmService.ValidateAndStoreAPIKey(c.UserContext(), req.APIKey); err != nil {
		message := "API key validation failed: " + err.Error()
		if errors.Is(err, service.ErrInvalidAPIKey) {
			message = "Invalid API key"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIKeyResponse{
			Valid:   false,
			Message: message,
		})
	}

	return c.JSON(dto.APIKeyResponse{
		Valid:   true,
		Message: "API key validated and stored successfully",
	})
}

// APIKeyStatus godoc
// @Summary API key status
// @Tags config
// @Produce json
// @Success 200 {object} dto.APIKeyStatusResponse
// @Router /api/config/api-key/status [get]
func (h *ConfigHandler) APIKeyStatus(c *fiber.Ctx) error {
	return c.JSON(dto.APIKeyStatusResponse{
		HasValidKey: h.llmService.HasValidCredential(),
	})
}

// ClearAPIKey godoc
// @Summary Clear the LLM API key
// @Tags config
// @Produce json
// @Success 200 {object} dto.APIKeyResponse
// @Router /api/config/api-key [delete]
func (h *ConfigHandler) ClearAPIKey(c *fiber.Ctx) error {
	h.llmService.ClearAPIKey()
	return c.JSON(dto.APIKeyResponse{
		Valid:   true,
		Message: "API key cleared successfully",
	})
}
