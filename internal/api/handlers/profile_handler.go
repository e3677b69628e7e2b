package handlers

import (
	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// CreateProfile godoc
// @Summary Create a profile
// @Description Create a profile from gender, age, capital and mode. The LLM enriches it when a key is configured.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Profile"
// @Success 200 {object} dto.CreateProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/profile [post]
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.profileService.CreateProfile(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Profile creation failed")
	}

	return c.JSON(resp)
}

// GetProfile godoc
// @Summary Get a profile
// @Tags profile
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/profile/{id} [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid profile ID")
	}

	profile, err := h.profileService.GetProfile(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load profile")
	}

	return c.JSON(dto.ProfileResponse{
		ID:               profile.ID.String(),
		Gender:           string(profile.Gender),
		Age:              profile.Age,
		Capital:          profile.Capital,
		Mode:             string(profile.Mode),
		Personality:      json.RawMessage(profile.PersonalityJSON),
		Preferences:      json.RawMessage(profile.PreferencesJSON),
		PriorExperiences: json.RawMessage(profile.PriorExperiencesJSON),
		CreatedAt:        profile.CreatedAt,
	})
}
