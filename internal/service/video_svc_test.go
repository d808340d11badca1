package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/provider"
)

type stubMetadataProvider struct {
	md      *model.VideoMetadata
	err     error
	gotID   string
	gotOpts provider.FetchOptions
}

func (s *stubMetadataProvider) Name() string { return "stub" }

func (s *stubMetadataProvider) FetchMetadata(_ context.Context, videoID string, opts provider.FetchOptions) (*model.VideoMetadata, error) {
	s.gotID = videoID
	s.gotOpts = opts
	return s.md, s.err
}

func TestGetMetadata(t *testing.T) {
	title := "A Video"
	stub := &stubMetadataProvider{md: &model.VideoMetadata{VideoID: "abc123", Title: &title}}
	svc := NewVideoService(stub, "")

	md, err := svc.GetMetadata(context.Background(), "https://www.youtube.com/watch?v=abc123", "")
	if err != nil {
		t.Fatalf("GetMetadata() error: %v", err)
	}
	if stub.gotID != "abc123" {
		t.Errorf("provider received ID %q, want abc123", stub.gotID)
	}
	if md.Title == nil || *md.Title != "A Video" {
		t.Errorf("Title = %v, want A Video", md.Title)
	}
}

func TestGetMetadata_InvalidURL(t *testing.T) {
	svc := NewVideoService(&stubMetadataProvider{}, "")

	tests := []string{
		"https://example.com/watch?v=abc",
		"https://www.youtube.com/playlist?list=PL1",
		"",
	}
	for _, url := range tests {
		if _, err := svc.GetMetadata(context.Background(), url, ""); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("GetMetadata(%q) error = %v, want ErrInvalidURL", url, err)
		}
	}
}

func TestGetMetadata_BrowserHint(t *testing.T) {
	tests := []struct {
		name           string
		defaultBrowser string
		requestBrowser string
		want           string
	}{
		{"request hint wins", "chrome", "firefox", "firefox"},
		{"falls back to configured default", "chrome", "", "chrome"},
		{"no hint at all", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubMetadataProvider{md: &model.VideoMetadata{}}
			svc := NewVideoService(stub, tt.defaultBrowser)

			if _, err := svc.GetMetadata(context.Background(), "https://youtu.be/x1", tt.requestBrowser); err != nil {
				t.Fatalf("GetMetadata() error: %v", err)
			}
			if stub.gotOpts.Browser != tt.want {
				t.Errorf("Browser = %q, want %q", stub.gotOpts.Browser, tt.want)
			}
		})
	}
}

func TestGetMetadata_UpstreamFailure(t *testing.T) {
	stub := &stubMetadataProvider{err: errors.New("quota exceeded")}
	svc := NewVideoService(stub, "")

	_, err := svc.GetMetadata(context.Background(), "https://youtu.be/abc", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrInvalidURL) {
		t.Error("upstream failure must not be reported as invalid input")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %q should embed the upstream cause", err)
	}
}
