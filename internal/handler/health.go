package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// upstreamProbeURL is a cheap endpoint to confirm outbound reachability to
// the video platform; every useful response of this service depends on it.
const upstreamProbeURL = "https://www.youtube.com/oembed?format=json&url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3DjNQXAC9IVRw"

type HealthHandler struct {
	client  *http.Client
	startAt time.Time
}

func NewHealthHandler(client *http.Client) *HealthHandler {
	return &HealthHandler{
		client:  client,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe. The service holds no
// state of its own; the only dependency worth checking is outbound
// reachability to the upstream platform.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	overallStatus := "healthy"
	checks := fiber.Map{
		"upstream": h.checkUpstream(ctx),
	}
	if up, ok := checks["upstream"].(fiber.Map); ok && up["status"] != "up" {
		overallStatus = "degraded"
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

func (h *HealthHandler) checkUpstream(ctx context.Context) fiber.Map {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstreamProbeURL, nil)
	if err != nil {
		return fiber.Map{"status": "down", "error": "probe build failed"}
	}

	resp, err := h.client.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "upstream unavailable",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
