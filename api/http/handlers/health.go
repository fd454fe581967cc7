package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/Vijaybattula26/gemini-ats/pkg/health"
	"github.com/Vijaybattula26/gemini-ats/pkg/metrics"
)

// HealthHandler serves liveness, readiness and counter endpoints.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	metrics fiber.Handler
}

func NewHealthHandler(svc health.ReadinessUseCase, counters *metrics.Counters) *HealthHandler {
	if counters == nil {
		counters = metrics.New()
	}
	return &HealthHandler{svc: svc, metrics: adaptor.HTTPHandler(counters.Handler())}
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready: readiness check over the store, cache and broker. Each dependency
// is pinged once per request.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router  /api/v1/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	report, err := h.svc.Report(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
			"checks":  report,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ready",
		"checks": report,
	})
}

// Metrics exposes the process counters in Prometheus exposition format.
// @Summary Operational counters
// @Tags    health
// @Produce plain
// @Success 200 {string} string
// @Router  /api/v1/metrics [get]
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return h.metrics(c)
}
