package main

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/alirezasoltanian/youtube-api-server/internal/config"
	"github.com/alirezasoltanian/youtube-api-server/internal/handler"
	"github.com/alirezasoltanian/youtube-api-server/internal/middleware"
	"github.com/alirezasoltanian/youtube-api-server/internal/provider"
	"github.com/alirezasoltanian/youtube-api-server/internal/router"
	"github.com/alirezasoltanian/youtube-api-server/internal/scraper"
	"github.com/alirezasoltanian/youtube-api-server/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "youtube-api-server")
	handler.InitMetrics()

	client := &http.Client{Timeout: cfg.HTTPTimeout}

	metadata := buildMetadataProvider(cfg, client)
	primary := provider.NewTimedText(client, "")
	fallback := provider.NewTimedText(client, provider.KindASR)

	videoSvc := service.NewVideoService(metadata, cfg.DefaultBrowser)
	captionSvc := service.NewCaptionService(
		[]provider.CaptionProvider{primary, fallback},
		primary,
		[]string{"en"},
	)
	telegramSvc := service.NewTelegramService(scraper.NewTelegram(client, cfg.TelegramBaseURL))

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Tools API",
		ServerHeader: "youtube-api-server",
	})

	router.Setup(app, &router.Handlers{
		Video:    handler.NewVideoHandler(videoSvc, captionSvc),
		Telegram: handler.NewTelegramHandler(telegramSvc),
		Health:   handler.NewHealthHandler(client),
	}, cfg.CORSOrigins)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	log.Printf("youtube-api-server starting on %s (env=%s, metadata=%s)", addr, cfg.Environment, metadata.Name())
	log.Fatal(app.Listen(addr))
}

// buildMetadataProvider picks the richest metadata source the configuration
// allows: yt-dlp when a binary is configured, the Data API when a key is set,
// and the keyless oEmbed endpoint otherwise.
func buildMetadataProvider(cfg *config.Config, client *http.Client) provider.MetadataProvider {
	if cfg.YTDLPPath != "" {
		return provider.NewYTDLP(cfg.YTDLPPath, cfg.HTTPTimeout)
	}

	if cfg.YouTubeAPIKey != "" {
		svc, err := ytapi.NewService(context.Background(), option.WithAPIKey(cfg.YouTubeAPIKey))
		if err != nil {
			log.Fatalf("failed to create YouTube Data API client: %v", err)
		}
		return provider.NewDataAPI(svc)
	}

	return provider.NewOEmbed(client)
}
