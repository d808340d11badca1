package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/alirezasoltanian/youtube-api-server/internal/handler"
	"github.com/alirezasoltanian/youtube-api-server/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video    *handler.VideoHandler
	Telegram *handler.TelegramHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (not rate limited)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	videoLimiter := middleware.NewVideoRateLimiter()
	scrapeLimiter := middleware.NewScrapeRateLimiter()

	// Video routes
	app.Post("/video-data", h.Video.GetVideoData, videoLimiter.Handler())
	app.Post("/video-captions", h.Video.GetVideoCaptions, videoLimiter.Handler())
	app.Post("/video-timestamps", h.Video.GetVideoTimestamps, videoLimiter.Handler())
	app.Post("/video-languages", h.Video.GetVideoLanguages, videoLimiter.Handler())

	// Telegram routes
	app.Post("/channel-posts", h.Telegram.GetChannelPosts, scrapeLimiter.Handler())
}
