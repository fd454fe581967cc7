package http

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Vijaybattula26/gemini-ats/api/http/handlers"
	"github.com/Vijaybattula26/gemini-ats/api/http/presenter"
)

// multipartSlack covers form boundaries and headers around the file part.
const multipartSlack = 1 << 20

// NewApp builds the Fiber app with the common middleware stack. Framework
// errors such as unknown routes are rendered as {"error": "..."} like every
// handler error. A request body over maxUploadBytes plus multipart slack is
// cut off by the server before routing; it gets the same 400 the upload
// handler returns for an oversized file.
func NewApp(maxUploadBytes int64, accessLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "gemini-ats",
		BodyLimit:    int(maxUploadBytes) + multipartSlack,
		ErrorHandler: errorHandler(maxUploadBytes),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if accessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	return app
}

func errorHandler(maxUploadBytes int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else {
			slog.Error("unhandled request error", "path", c.Path(), "err", err)
		}
		msg := err.Error()
		switch code {
		case fiber.StatusRequestEntityTooLarge:
			code = fiber.StatusBadRequest
			msg = fmt.Sprintf("file too large: limit is %d bytes", maxUploadBytes)
		case fiber.StatusInternalServerError:
			msg = "internal server error"
		}
		return presenter.Error(c, code, msg)
	}
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resumes *handlers.ResumeHandler, candidates *handlers.CandidatesHandler) {
	app.Get("/", handlers.Index)

	// Screening flow
	app.Post("/upload", resumes.Upload)
	app.Post("/process_resume/:resume_id", resumes.Process)
	app.Get("/candidates", candidates.List)
	app.Get("/candidate_details/:resume_id", candidates.Details)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)
	v1.Get("/metrics", health.Metrics)
}
