package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alirezasoltanian/youtube-api-server/internal/middleware"
	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/service"
)

type TelegramHandler struct {
	svc *service.TelegramService
}

func NewTelegramHandler(svc *service.TelegramService) *TelegramHandler {
	return &TelegramHandler{svc: svc}
}

// GetChannelPosts handles POST /channel-posts
func (h *TelegramHandler) GetChannelPosts(c fiber.Ctx) error {
	var req model.ChannelPostsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	names, errMsg := middleware.ValidateChannelNames(req.ChannelNames)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	results := h.svc.GetChannelPosts(c.Context(), names)

	for _, r := range results {
		if r.Err != "" {
			recordUpstream("telegram", "error")
		} else {
			recordUpstream("telegram", "success")
		}
	}

	return c.JSON(results)
}
