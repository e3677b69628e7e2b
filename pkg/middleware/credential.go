package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CredentialChecker reports whether an LLM API key is configured.
type CredentialChecker interface {
	HasValidCredential() bool
}

// RequireCredential rejects requests with 401 until an API key is configured.
func RequireCredential(checker CredentialChecker, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.HasValidCredential() {
			logger.Warn("Request rejected, no API key configured",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "API key required",
			})
		}
		return c.Next()
	}
}
