package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/alirezasoltanian/youtube-api-server/internal/middleware"
	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/service"
)

type VideoHandler struct {
	videos   *service.VideoService
	captions *service.CaptionService
}

func NewVideoHandler(videos *service.VideoService, captions *service.CaptionService) *VideoHandler {
	return &VideoHandler{videos: videos, captions: captions}
}

// GetVideoData handles POST /video-data
func (h *VideoHandler) GetVideoData(c fiber.Ctx) error {
	req, errMsg := bindVideoRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	md, err := h.videos.GetMetadata(c.Context(), req.URL, req.Browser)
	if err != nil {
		return videoError(c, err, "metadata", "Error getting video data")
	}

	recordUpstream("metadata", "success")
	return c.JSON(md)
}

// GetVideoCaptions handles POST /video-captions
func (h *VideoHandler) GetVideoCaptions(c fiber.Ctx) error {
	req, errMsg := bindVideoRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	transcript, err := h.captions.GetTranscript(c.Context(), req.URL, req.Languages)
	if err != nil {
		return videoError(c, err, "captions", "Error getting captions for video")
	}

	recordUpstream("captions", "success")
	return c.JSON(transcript)
}

// GetVideoTimestamps handles POST /video-timestamps
func (h *VideoHandler) GetVideoTimestamps(c fiber.Ctx) error {
	req, errMsg := bindVideoRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	lines, err := h.captions.GetTimestamps(c.Context(), req.URL, req.Languages)
	if err != nil {
		return videoError(c, err, "captions", "Error generating timestamps")
	}

	recordUpstream("captions", "success")
	return c.JSON(lines)
}

// GetVideoLanguages handles POST /video-languages
func (h *VideoHandler) GetVideoLanguages(c fiber.Ctx) error {
	req, errMsg := bindVideoRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	langs, err := h.captions.ListLanguages(c.Context(), req.URL)
	if err != nil {
		return videoError(c, err, "captions", "Error listing subtitle languages")
	}

	recordUpstream("captions", "success")
	return c.JSON(langs)
}

// bindVideoRequest parses and validates the shared video request body.
// A non-empty second return value is the 400 detail message.
func bindVideoRequest(c fiber.Ctx) (model.VideoRequest, string) {
	var req model.VideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return req, "Invalid request body"
	}

	url, errMsg := middleware.ValidateURL(req.URL)
	if errMsg != "" {
		return req, errMsg
	}
	req.URL = url

	browser, errMsg := middleware.ValidateBrowser(req.Browser)
	if errMsg != "" {
		return req, errMsg
	}
	req.Browser = browser

	languages, errMsg := middleware.ValidateLanguages(req.Languages)
	if errMsg != "" {
		return req, errMsg
	}
	req.Languages = languages

	return req, ""
}

// videoError maps a service error onto the API contract: invalid input is a
// 400 with a fixed message, anything else a 500 embedding the upstream cause.
func videoError(c fiber.Ctx, err error, op, prefix string) error {
	if errors.Is(err, service.ErrInvalidURL) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid YouTube URL")
	}
	recordUpstream(op, "error")
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, prefix+": "+err.Error())
}
