package provider

import (
	"context"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

// FetchOptions carries per-request hints passed through to a provider.
type FetchOptions struct {
	// Browser names a local browser whose stored session cookies the provider
	// may reuse (age-gated or region-gated content). Providers without cookie
	// access ignore it.
	Browser string
}

// MetadataProvider fetches metadata for a single video. Fields the provider
// does not know are left nil on the returned record.
type MetadataProvider interface {
	Name() string
	FetchMetadata(ctx context.Context, videoID string, opts FetchOptions) (*model.VideoMetadata, error)
}

// CaptionProvider fetches the caption track for a video, trying the given
// language codes in preference order. A (nil, nil) return means the provider
// has no track for the video; errors are reserved for transport or parse
// failures.
type CaptionProvider interface {
	Name() string
	FetchCaptions(ctx context.Context, videoID string, languages []string) ([]model.CaptionEvent, error)
}
