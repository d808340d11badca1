package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

const defaultTimedTextURL = "https://www.youtube.com/api/timedtext"

// Track kinds understood by the timedtext endpoint. An empty kind selects
// manually uploaded captions; KindASR selects the auto-generated track.
const KindASR = "asr"

// TimedText fetches caption tracks from YouTube's timedtext endpoint in the
// json3 format. Two instances with different kinds form the primary/fallback
// caption chain. The endpoint answers 200 with an empty body when a video has
// no track for the requested language, which is reported as no captions, not
// as an error.
type TimedText struct {
	client  *http.Client
	baseURL string
	kind    string
}

func NewTimedText(client *http.Client, kind string) *TimedText {
	return &TimedText{client: client, baseURL: defaultTimedTextURL, kind: kind}
}

func (t *TimedText) Name() string {
	if t.kind == KindASR {
		return "timedtext-asr"
	}
	return "timedtext"
}

func (t *TimedText) FetchCaptions(ctx context.Context, videoID string, languages []string) ([]model.CaptionEvent, error) {
	for _, lang := range languages {
		events, err := t.fetchTrack(ctx, videoID, lang)
		if err != nil {
			return nil, err
		}
		if len(events) > 0 {
			return events, nil
		}
	}
	return nil, nil
}

func (t *TimedText) fetchTrack(ctx context.Context, videoID, lang string) ([]model.CaptionEvent, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	params.Set("fmt", "json3")
	if t.kind != "" {
		params.Set("kind", t.kind)
	}

	body, status, err := t.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("timedtext: unexpected status %d", status)
	}

	var track struct {
		Events []struct {
			TStartMs int64 `json:"tStartMs"`
			Segs     []struct {
				UTF8 string `json:"utf8"`
			} `json:"segs"`
		} `json:"events"`
	}
	if err := json.Unmarshal(body, &track); err != nil {
		return nil, fmt.Errorf("timedtext: decode track: %w", err)
	}

	events := make([]model.CaptionEvent, 0, len(track.Events))
	for _, e := range track.Events {
		if len(e.Segs) == 0 {
			continue
		}
		// Fragments sharing a start time arrive as segments of one event;
		// merge them into a single caption line.
		var sb strings.Builder
		for _, s := range e.Segs {
			sb.WriteString(s.UTF8)
		}
		text := strings.ReplaceAll(sb.String(), "\n", " ")
		events = append(events, model.CaptionEvent{
			Start: float64(e.TStartMs) / 1000,
			Text:  text,
		})
	}
	return events, nil
}

// ListLanguages returns the caption language codes available for a video,
// split into manually uploaded and auto-generated tracks.
func (t *TimedText) ListLanguages(ctx context.Context, videoID string) (*model.LanguageList, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("type", "list")

	body, status, err := t.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("timedtext: unexpected status %d", status)
	}

	list := &model.LanguageList{Manual: []string{}, Automatic: []string{}}
	if len(bytes.TrimSpace(body)) == 0 {
		return list, nil
	}

	var tracks struct {
		Tracks []struct {
			LangCode string `xml:"lang_code,attr"`
			Kind     string `xml:"kind,attr"`
		} `xml:"track"`
	}
	if err := xml.Unmarshal(body, &tracks); err != nil {
		return nil, fmt.Errorf("timedtext: decode track list: %w", err)
	}

	for _, tr := range tracks.Tracks {
		if tr.LangCode == "" {
			continue
		}
		if tr.Kind == KindASR {
			list.Automatic = append(list.Automatic, tr.LangCode)
		} else {
			list.Manual = append(list.Manual, tr.LangCode)
		}
	}
	return list, nil
}

func (t *TimedText) get(ctx context.Context, params url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("timedtext: build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("timedtext: read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
