package service

import (
	"context"
	"fmt"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/provider"
	"github.com/alirezasoltanian/youtube-api-server/internal/youtube"
)

// LanguageLister enumerates the caption languages available for a video.
type LanguageLister interface {
	ListLanguages(ctx context.Context, videoID string) (*model.LanguageList, error)
}

// CaptionService fetches caption tracks through an ordered provider chain
// (manually uploaded captions first, auto-generated as fallback) and formats
// them as transcripts or timestamp lines.
type CaptionService struct {
	providers        []provider.CaptionProvider
	lister           LanguageLister
	defaultLanguages []string
}

func NewCaptionService(providers []provider.CaptionProvider, lister LanguageLister, defaultLanguages []string) *CaptionService {
	return &CaptionService{
		providers:        providers,
		lister:           lister,
		defaultLanguages: defaultLanguages,
	}
}

// GetTranscript joins the video's caption texts into a single string. A video
// without captions yields the soft "no captions" message, not an error.
func (s *CaptionService) GetTranscript(ctx context.Context, rawURL string, languages []string) (string, error) {
	events, err := s.fetchEvents(ctx, rawURL, languages)
	if err != nil {
		return "", err
	}
	return youtube.FormatTranscript(events), nil
}

// GetTimestamps renders one "minute:second - text" line per caption event.
// A video without captions yields an empty list.
func (s *CaptionService) GetTimestamps(ctx context.Context, rawURL string, languages []string) ([]string, error) {
	events, err := s.fetchEvents(ctx, rawURL, languages)
	if err != nil {
		return nil, err
	}
	return youtube.FormatTimestamps(events), nil
}

// ListLanguages returns the manual and auto-generated caption language codes
// available for the video.
func (s *CaptionService) ListLanguages(ctx context.Context, rawURL string) (*model.LanguageList, error) {
	videoID, ok := youtube.ResolveVideoID(rawURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	langs, err := s.lister.ListLanguages(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("listing languages: %w", err)
	}
	return langs, nil
}

func (s *CaptionService) fetchEvents(ctx context.Context, rawURL string, languages []string) ([]model.CaptionEvent, error) {
	videoID, ok := youtube.ResolveVideoID(rawURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	if len(languages) == 0 {
		languages = s.defaultLanguages
	}

	for _, p := range s.providers {
		events, err := p.FetchCaptions(ctx, videoID, languages)
		if err != nil {
			return nil, fmt.Errorf("fetching captions: %w", err)
		}
		if len(events) > 0 {
			return events, nil
		}
	}
	return nil, nil
}
