package api

import (
	"github.com/CoooPi/bucketlist-poc/docs"
	"github.com/CoooPi/bucketlist-poc/internal/api/handlers"
	"github.com/CoooPi/bucketlist-poc/pkg/config"
	"github.com/CoooPi/bucketlist-poc/pkg/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Profile    *handlers.ProfileHandler
	Suggestion *handlers.SuggestionHandler
	Session    *handlers.SessionHandler
	Config     *handlers.ConfigHandler
}

func SetupRouter(
	h Handlers,
	credentials middleware.CredentialChecker,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// docs registers itself in init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Credential management is always reachable
	configGroup := api.Group("/config")
	configGroup.Post("/api-key", h.Config.SetAPIKey)
	configGroup.Get("/api-key/status", h.Config.APIKeyStatus)
	configGroup.Delete("/api-key", h.Config.ClearAPIKey)

	// Profile creation degrades to defaults without a key
	profile := api.Group("/profile")
	profile.Post("", h.Profile.CreateProfile)
	profile.Get("/:id", h.Profile.GetProfile)

	requireKey := middleware.RequireCredential(credentials, appLogger)

	// Profile flow; static paths go first so /:sessionId cannot shadow them.
	// Reading stored suggestions needs no key; generation does.
	suggestions := api.Group("/suggestions")
	suggestions.Post("/generate", requireKey, h.Suggestion.Generate)
	suggestions.Get("/next", h.Suggestion.Next)
	suggestions.Post("/refill", requireKey, h.Suggestion.Refill)
	suggestions.Post("/feedback", h.Suggestion.Feedback)
	suggestions.Get("/accepted", h.Suggestion.Accepted)
	suggestions.Get("/rejected", h.Suggestion.Rejected)

	// Session flow, on the paths the SPA calls
	api.Post("/session/create", h.Session.CreateSession)
	suggestions.Post("/accept", h.Session.Accept)
	suggestions.Post("/reject", h.Session.Reject)
	suggestions.Post("/regenerate", requireKey, h.Session.Regenerate)
	suggestions.Get("/accepted/:sessionId", h.Session.Accepted)
	suggestions.Get("/rejected/:sessionId", h.Session.Rejected)
	suggestions.Get("/next/:sessionId", h.Session.Next)
	suggestions.Get("/:sessionId", h.Session.Suggestions)

	return app
}
