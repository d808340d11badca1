package provider

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

// DataAPI fetches video metadata through the YouTube Data API v3. Requires an
// API key; fills most of the canonical schema except like counts hidden by
// the uploader.
type DataAPI struct {
	svc *ytapi.Service
}

func NewDataAPI(svc *ytapi.Service) *DataAPI {
	return &DataAPI{svc: svc}
}

func (d *DataAPI) Name() string { return "dataapi" }

func (d *DataAPI) FetchMetadata(ctx context.Context, videoID string, _ FetchOptions) (*model.VideoMetadata, error) {
	resp, err := d.svc.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("dataapi: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("dataapi: video %s not found", videoID)
	}

	item := resp.Items[0]
	md := &model.VideoMetadata{VideoID: videoID}

	if sn := item.Snippet; sn != nil {
		md.Title = nonEmpty(sn.Title)
		md.AuthorName = nonEmpty(sn.ChannelTitle)
		if sn.ChannelId != "" {
			md.AuthorURL = nonEmpty("https://www.youtube.com/channel/" + sn.ChannelId)
		}
		md.UploadDate = nonEmpty(sn.PublishedAt)
		md.Description = nonEmpty(sn.Description)
		md.Tags = sn.Tags
		md.ThumbnailURL = bestThumbnail(sn.Thumbnails)
	}

	if cd := item.ContentDetails; cd != nil {
		if secs, ok := parseISO8601Duration(cd.Duration); ok {
			md.DurationSeconds = &secs
		}
	}

	// A zero count is indistinguishable from a hidden or omitted one in the
	// API response, so both counts stay nil rather than reporting a made-up 0.
	if st := item.Statistics; st != nil {
		if st.ViewCount > 0 {
			views := int64(st.ViewCount)
			md.ViewCount = &views
		}
		if st.LikeCount > 0 {
			likes := int64(st.LikeCount)
			md.LikeCount = &likes
		}
	}

	return md, nil
}

func bestThumbnail(t *ytapi.ThumbnailDetails) *string {
	if t == nil {
		return nil
	}
	for _, th := range []*ytapi.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return nonEmpty(th.Url)
		}
	}
	return nil
}

var iso8601DurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISO8601Duration converts the Data API duration format ("PT4M13S")
// into whole seconds.
func parseISO8601Duration(s string) (int64, bool) {
	m := iso8601DurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var total int64
	for i, mult := range []int64{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, false
		}
		total += n * mult
	}
	return total, true
}
