package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

func newTestDataAPI(t *testing.T, body string) *DataAPI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	svc, err := ytapi.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("creating test service: %v", err)
	}
	return NewDataAPI(svc)
}

func TestDataAPI_FetchMetadata(t *testing.T) {
	d := newTestDataAPI(t, `{
		"items": [{
			"snippet": {
				"title": "A Video",
				"channelTitle": "A Channel",
				"channelId": "UC123",
				"publishedAt": "2009-10-25T06:57:33Z",
				"tags": ["test"]
			},
			"contentDetails": {"duration": "PT4M13S"},
			"statistics": {"viewCount": "1000000"}
		}]
	}`)

	md, err := d.FetchMetadata(context.Background(), "abc123", FetchOptions{})
	if err != nil {
		t.Fatalf("FetchMetadata() error = %v", err)
	}
	if md.Title == nil || *md.Title != "A Video" {
		t.Errorf("Title = %v, want A Video", md.Title)
	}
	if md.AuthorURL == nil || *md.AuthorURL != "https://www.youtube.com/channel/UC123" {
		t.Errorf("AuthorURL = %v, want channel URL", md.AuthorURL)
	}
	if md.DurationSeconds == nil || *md.DurationSeconds != 253 {
		t.Errorf("DurationSeconds = %v, want 253", md.DurationSeconds)
	}
	if md.ViewCount == nil || *md.ViewCount != 1000000 {
		t.Errorf("ViewCount = %v, want 1000000", md.ViewCount)
	}
	if md.LikeCount != nil {
		t.Error("LikeCount should be nil when the API omits it")
	}
}

func TestDataAPI_FetchMetadata_HiddenStatistics(t *testing.T) {
	d := newTestDataAPI(t, `{
		"items": [{
			"snippet": {"title": "A Video"},
			"statistics": {}
		}]
	}`)

	md, err := d.FetchMetadata(context.Background(), "abc123", FetchOptions{})
	if err != nil {
		t.Fatalf("FetchMetadata() error = %v", err)
	}
	if md.ViewCount != nil {
		t.Errorf("ViewCount = %v, want nil when statistics are hidden", *md.ViewCount)
	}
	if md.LikeCount != nil {
		t.Errorf("LikeCount = %v, want nil when statistics are hidden", *md.LikeCount)
	}
}

func TestDataAPI_FetchMetadata_NotFound(t *testing.T) {
	d := newTestDataAPI(t, `{"items": []}`)

	_, err := d.FetchMetadata(context.Background(), "missing", FetchOptions{})
	if err == nil {
		t.Fatal("FetchMetadata() should fail for an unknown video")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error = %q, want the video ID embedded", err)
	}
}

func TestBestThumbnail(t *testing.T) {
	tests := []struct {
		name string
		in   *ytapi.ThumbnailDetails
		want string
	}{
		{"nil details", nil, ""},
		{"prefers maxres", &ytapi.ThumbnailDetails{
			Maxres:  &ytapi.Thumbnail{Url: "max"},
			Default: &ytapi.Thumbnail{Url: "def"},
		}, "max"},
		{"falls through to default", &ytapi.ThumbnailDetails{
			Default: &ytapi.Thumbnail{Url: "def"},
		}, "def"},
		{"all empty", &ytapi.ThumbnailDetails{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bestThumbnail(tt.in)
			if tt.want == "" {
				if got != nil {
					t.Errorf("bestThumbnail() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("bestThumbnail() = %v, want %q", got, tt.want)
			}
		})
	}
}
