package handlers

import (
	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService *service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// CreateSession godoc
// @Summary Create a session
// @Description Start an in-memory session from a free-text person description
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Person description"
// @Success 200 {object} dto.CreateSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/session/create [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.sessionService.CreateSession(req.PersonDescription)
	if err != nil {
		return respondError(c, h.logger, err, "Session creation failed")
	}

	return c.JSON(dto.CreateSessionResponse{
		SessionID:         session.ID,
		PersonDescription: session.PersonDescription,
	})
}

// Suggestions godoc
// @Summary Session suggestions
// @Description Current suggestion list, generated on first access
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionSuggestionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/{sessionId} [get]
func (h *SessionHandler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.sessionService.GetSuggestions(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return respondError(c, h.logger, err, "Suggestion generation failed")
	}
	return c.JSON(toSessionSuggestionsResponse(suggestions))
}

// Accept godoc
// @Summary Accept a session suggestion
// @Tags session
// @Accept json
// @Param request body dto.AcceptSuggestionRequest true "Accept request"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/accept [post]
func (h *SessionHandler) Accept(c *fiber.Ctx) error {
	var req dto.AcceptSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.sessionService.Accept(req.SessionID, req.SuggestionID); err != nil {
		return respondError(c, h.logger, err, "Failed to accept suggestion")
	}
	return c.SendStatus(fiber.StatusOK)
}

// Reject godoc
// @Summary Reject a session suggestion
// @Tags session
// @Accept json
// @Param request body dto.RejectSuggestionRequest true "Reject request"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/reject [post]
func (h *SessionHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.sessionService.Reject(req.SessionID, req.SuggestionID, req.Reason, req.CustomReason); err != nil {
		return respondError(c, h.logger, err, "Failed to reject suggestion")
	}
	return c.SendStatus(fiber.StatusOK)
}

// Accepted godoc
// @Summary Accepted session suggestions
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionSuggestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/accepted/{sessionId} [get]
func (h *SessionHandler) Accepted(c *fiber.Ctx) error {
	accepted, err := h.sessionService.GetAccepted(c.Params("sessionId"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load accepted suggestions")
	}
	return c.JSON(toSessionSuggestionsResponse(accepted))
}

// Rejected godoc
// @Summary Rejected session suggestions
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionSuggestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/rejected/{sessionId} [get]
func (h *SessionHandler) Rejected(c *fiber.Ctx) error {
	rejected, err := h.sessionService.GetRejected(c.Params("sessionId"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load rejected suggestions")
	}
	return c.JSON(toSessionSuggestionsResponse(rejected))
}

// Next godoc
// @Summary Next session suggestion
// @Description Next unreviewed suggestion; regenerates from feedback once the list is exhausted
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionSuggestionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/next/{sessionId} [get]
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	next, err := h.sessionService.NextOrRegenerate(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get next suggestion")
	}
	if next == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No suggestions available",
		})
	}
	return c.JSON(toSessionSuggestionResponse(*next))
}

// Regenerate godoc
// @Summary Regenerate session suggestions
// @Description Replace the current list using accepted and rejected history
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.RegenerateRequest true "Regenerate request"
// @Success 200 {object} dto.SessionSuggestionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/suggestions/regenerate [post]
func (h *SessionHandler) Regenerate(c *fiber.Ctx) error {
	var req dto.RegenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	suggestions, err := h.sessionService.Regenerate(c.UserContext(), req.SessionID)
	if err != nil {
		return respondError(c, h.logger, err, "Suggestion regeneration failed")
	}
	return c.JSON(toSessionSuggestionsResponse(suggestions))
}

func toSessionSuggestionsResponse(suggestions []models.BucketListSuggestion) dto.SessionSuggestionsResponse {
	resp := dto.SessionSuggestionsResponse{
		Suggestions: make([]dto.SessionSuggestionResponse, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		resp.Suggestions = append(resp.Suggestions, toSessionSuggestionResponse(s))
	}
	return resp
}

func toSessionSuggestionResponse(s models.BucketListSuggestion) dto.SessionSuggestionResponse {
	lineItems := make([]dto.LineItemResponse, 0, len(s.PriceBreakdown.LineItems))
	for _, li := range s.PriceBreakdown.LineItems {
		lineItems = append(lineItems, dto.LineItemResponse{
			Name:        li.Name,
			Price:       li.Price,
			Description: li.Description,
		})
	}

	reasons := s.RejectionReasons
	if reasons == nil {
		reasons = []string{}
	}

	return dto.SessionSuggestionResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category.DisplayName(),
		PriceBreakdown: dto.PriceBreakdownResponse{
			LineItems: lineItems,
			Currency:  s.PriceBreakdown.Currency,
			TotalCost: s.PriceBreakdown.TotalCost(),
		},
		RejectionReasons: reasons,
	}
}
