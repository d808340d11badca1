package service

import (
	"context"
	"fmt"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/provider"
	"github.com/alirezasoltanian/youtube-api-server/internal/youtube"
)

// VideoService resolves a video URL and fetches its metadata from the
// configured provider.
type VideoService struct {
	provider       provider.MetadataProvider
	defaultBrowser string
}

func NewVideoService(p provider.MetadataProvider, defaultBrowser string) *VideoService {
	return &VideoService{provider: p, defaultBrowser: defaultBrowser}
}

// GetMetadata returns the canonical metadata record for the video named by
// rawURL. The browser cookie hint falls back to the process-wide default
// when the request does not carry one.
func (s *VideoService) GetMetadata(ctx context.Context, rawURL, browser string) (*model.VideoMetadata, error) {
	videoID, ok := youtube.ResolveVideoID(rawURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	if browser == "" {
		browser = s.defaultBrowser
	}

	md, err := s.provider.FetchMetadata(ctx, videoID, provider.FetchOptions{Browser: browser})
	if err != nil {
		return nil, fmt.Errorf("fetching video data: %w", err)
	}
	return md, nil
}
