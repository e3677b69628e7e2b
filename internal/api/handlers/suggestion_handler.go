package handlers

import (
	"strings"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SuggestionHandler struct {
	suggestionService *service.SuggestionService
	feedbackService   *service.FeedbackService
	logger            *zap.Logger
}

func NewSuggestionHandler(suggestionService *service.SuggestionService, feedbackService *service.FeedbackService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		feedbackService:   feedbackService,
		logger:            logger,
	}
}

// Generate godoc
// @Summary Generate suggestions
// @Description Ask the LLM for a batch of suggestions and return the ones new to the profile
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body dto.GenerateSuggestionsRequest true "Generation request"
// @Success 200 {object} dto.SuggestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/generate [post]
func (h *SuggestionHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSuggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	profileID, category, mode, err := parseSelection(req.ProfileID, req.Category, req.Mode)
	if err != nil {
		return badRequest(c, err.Error())
	}

	suggestions, err := h.suggestionService.Generate(c.UserContext(), profileID, category, mode, req.Count)
	if err != nil {
		return respondError(c, h.logger, err, "Suggestion generation failed")
	}

	return c.JSON(dto.SuggestionListResponse{Suggestions: suggestions})
}

// Next godoc
// @Summary Next suggestion
// @Description Oldest unrated suggestion for the profile, generating a new batch when none is left
// @Tags suggestions
// @Produce json
// @Param profileId query string true "Profile ID"
// @Param category query string true "Spending category"
// @Param mode query string true "PROVEN or CREATIVE"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/next [get]
func (h *SuggestionHandler) Next(c *fiber.Ctx) error {
	profileID, category, mode, err := parseSelection(c.Query("profileId"), c.Query("category"), c.Query("mode"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	next, err := h.suggestionService.GetNext(c.UserContext(), profileID, category, mode)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get next suggestion")
	}
	if next == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No suggestions available",
		})
	}

	return c.JSON(next)
}

// Refill godoc
// @Summary Refill suggestions
// @Description Generate an explicit batch; batchSize 0 selects the default
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body dto.RefillRequest true "Refill request"
// @Success 200 {object} dto.SuggestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/suggestions/refill [post]
func (h *SuggestionHandler) Refill(c *fiber.Ctx) error {
	var req dto.RefillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	profileID, category, mode, err := parseSelection(req.ProfileID, req.Category, req.Mode)
	if err != nil {
		return badRequest(c, err.Error())
	}

	suggestions, err := h.suggestionService.Refill(c.UserContext(), profileID, category, mode, req.BatchSize)
	if err != nil {
		return respondError(c, h.logger, err, "Suggestion refill failed")
	}

	return c.JSON(dto.SuggestionListResponse{Suggestions: suggestions})
}

// Feedback godoc
// @Summary Record feedback
// @Description Accept or reject a suggestion. Repeated feedback is ignored.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/feedback [post]
func (h *SuggestionHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return badRequest(c, "Invalid profile ID")
	}
	suggestionID, err := uuid.Parse(req.SuggestionID)
	if err != nil {
		return badRequest(c, "Invalid suggestion ID")
	}
	verdict, ok := models.ParseVerdict(req.Verdict)
	if !ok {
		return badRequest(c, "Invalid verdict")
	}

	recorded, err := h.feedbackService.RecordFeedback(c.UserContext(), profileID, suggestionID, verdict, req.Reason)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to record feedback")
	}

	return c.JSON(dto.FeedbackResponse{Recorded: recorded})
}

// Accepted godoc
// @Summary Accepted suggestions
// @Tags suggestions
// @Produce json
// @Param profileId query string true "Profile ID"
// @Success 200 {object} dto.SuggestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/suggestions/accepted [get]
func (h *SuggestionHandler) Accepted(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Query("profileId"))
	if err != nil {
		return badRequest(c, "Invalid profile ID")
	}

	accepted, err := h.feedbackService.GetAccepted(c.UserContext(), profileID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load accepted suggestions")
	}

	return c.JSON(dto.SuggestionListResponse{Suggestions: accepted})
}

// Rejected godoc
// @Summary Rejected suggestions
// @Tags suggestions
// @Produce json
// @Param profileId query string true "Profile ID"
// @Success 200 {object} dto.RejectedSuggestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/suggestions/rejected [get]
func (h *SuggestionHandler) Rejected(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Query("profileId"))
	if err != nil {
		return badRequest(c, "Invalid profile ID")
	}

	rejected, err := h.feedbackService.GetRejected(c.UserContext(), profileID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load rejected suggestions")
	}

	return c.JSON(dto.RejectedSuggestionListResponse{Suggestions: rejected})
}

type selectionError string

func (e selectionError) Error() string { return string(e) }

func parseSelection(rawProfileID, rawCategory, rawMode string) (uuid.UUID, models.SpendingCategory, models.SuggestionMode, error) {
	profileID, err := uuid.Parse(strings.TrimSpace(rawProfileID))
	if err != nil {
		return uuid.Nil, "", "", selectionError("Invalid profile ID")
	}
	category, ok := parseCategory(rawCategory)
	if !ok {
		return uuid.Nil, "", "", selectionError("Invalid category")
	}
	mode, ok := models.ParseSuggestionMode(rawMode)
	if !ok {
		return uuid.Nil, "", "", selectionError("Invalid mode")
	}
	return profileID, category, mode, nil
}

// parseCategory accepts the enum key or the display name.
func parseCategory(raw string) (models.SpendingCategory, bool) {
	if category, ok := models.ParseSpendingCategory(raw); ok {
		return category, true
	}
	raw = strings.TrimSpace(raw)
	for _, category := range models.SpendingCategories {
		if strings.EqualFold(category.DisplayName(), raw) {
			return category, true
		}
	}
	return "", false
}
