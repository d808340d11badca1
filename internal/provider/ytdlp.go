package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

// YTDLP extracts video metadata by shelling out to a yt-dlp binary. It is the
// richest provider and the only one that honors the browser cookie hint
// (--cookies-from-browser) for age-gated or region-gated content. Each
// invocation is bounded by timeout; a hung binary is killed when it expires.
type YTDLP struct {
	path    string
	timeout time.Duration
}

func NewYTDLP(path string, timeout time.Duration) *YTDLP {
	return &YTDLP{path: path, timeout: timeout}
}

func (y *YTDLP) Name() string { return "ytdlp" }

func (y *YTDLP) FetchMetadata(ctx context.Context, videoID string, opts FetchOptions) (*model.VideoMetadata, error) {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, y.path, buildArgs(videoID, opts.Browser)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("ytdlp: timed out after %s", y.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("ytdlp: %s", msg)
	}

	var info ytdlpInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("ytdlp: decode output: %w", err)
	}

	return info.toMetadata(videoID), nil
}

func buildArgs(videoID, browser string) []string {
	args := []string{"--dump-json", "--no-download", "--no-warnings"}
	if browser != "" {
		args = append(args, "--cookies-from-browser", browser)
	}
	return append(args, "https://www.youtube.com/watch?v="+videoID)
}

type ytdlpInfo struct {
	Title       string   `json:"title"`
	Uploader    string   `json:"uploader"`
	UploaderURL string   `json:"uploader_url"`
	ChannelURL  string   `json:"channel_url"`
	UploadDate  string   `json:"upload_date"`
	Duration    *float64 `json:"duration"`
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
}

func (i ytdlpInfo) toMetadata(videoID string) *model.VideoMetadata {
	md := &model.VideoMetadata{
		VideoID:      videoID,
		Title:        nonEmpty(i.Title),
		AuthorName:   nonEmpty(i.Uploader),
		AuthorURL:    nonEmpty(i.UploaderURL),
		UploadDate:   nonEmpty(formatUploadDate(i.UploadDate)),
		ThumbnailURL: nonEmpty(i.Thumbnail),
		Description:  nonEmpty(i.Description),
		Categories:   i.Categories,
		Tags:         i.Tags,
		ViewCount:    i.ViewCount,
		LikeCount:    i.LikeCount,
	}
	if md.AuthorURL == nil {
		md.AuthorURL = nonEmpty(i.ChannelURL)
	}
	if i.Duration != nil {
		secs := int64(*i.Duration)
		md.DurationSeconds = &secs
	}
	return md
}

// formatUploadDate converts yt-dlp's YYYYMMDD upload date to YYYY-MM-DD.
// Anything in an unexpected shape passes through untouched.
func formatUploadDate(d string) string {
	if len(d) != 8 {
		return d
	}
	return d[:4] + "-" + d[4:6] + "-" + d[6:]
}
