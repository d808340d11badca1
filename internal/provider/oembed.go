package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

const defaultOEmbedURL = "https://www.youtube.com/oembed"

// OEmbed fetches video metadata from YouTube's public oEmbed endpoint.
// It needs no API key but only knows the title, author, and thumbnail;
// the remaining canonical fields stay null.
type OEmbed struct {
	client  *http.Client
	baseURL string
}

func NewOEmbed(client *http.Client) *OEmbed {
	return &OEmbed{client: client, baseURL: defaultOEmbedURL}
}

func (o *OEmbed) Name() string { return "oembed" }

func (o *OEmbed) FetchMetadata(ctx context.Context, videoID string, _ FetchOptions) (*model.VideoMetadata, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("url", "https://www.youtube.com/watch?v="+videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("oembed: build request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oembed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Title        string `json:"title"`
		AuthorName   string `json:"author_name"`
		AuthorURL    string `json:"author_url"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("oembed: decode response: %w", err)
	}

	return &model.VideoMetadata{
		VideoID:      videoID,
		Title:        nonEmpty(body.Title),
		AuthorName:   nonEmpty(body.AuthorName),
		AuthorURL:    nonEmpty(body.AuthorURL),
		ThumbnailURL: nonEmpty(body.ThumbnailURL),
	}, nil
}

// nonEmpty returns a pointer to s, or nil when s is empty, so absent provider
// fields serialize as JSON null rather than "".
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
