package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/observability"
)

// Pinger reports backing-store connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness/readiness probes and the metrics snapshot.
type HealthHandler struct {
	redis   Pinger
	metrics *observability.Metrics
}

// NewHealthHandler constructs handler.
func NewHealthHandler(redis Pinger, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{redis: redis, metrics: metrics}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready. Degrades to 503 when the session store is
// unreachable.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.redis != nil {
		if err := h.redis.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"redis":  err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Metrics GET /health/metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
