package handlers

import (
	"errors"

	"github.com/CoooPi/bucketlist-poc/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps service errors to status codes. Anything unknown is
// logged and reported as a 500 with the fallback message.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNoCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": service.ErrNoCredential.Error(),
		})
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSuggestionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidBatchSize),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrInvalidProfile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logger.Error(fallback, zap.Error(err), zap.String("path", c.Path()))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
