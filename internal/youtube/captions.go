package youtube

import (
	"fmt"
	"strings"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

// NoCaptionsMessage is returned as the transcript body when a video has no
// caption track. This is a soft result, not an error.
const NoCaptionsMessage = "No captions found for video"

// FormatTranscript joins the text of every caption event with a single space.
func FormatTranscript(events []model.CaptionEvent) string {
	if len(events) == 0 {
		return NoCaptionsMessage
	}
	texts := make([]string, len(events))
	for i, e := range events {
		texts[i] = e.Text
	}
	return strings.Join(texts, " ")
}

// FormatTimestamps renders one "minutes:seconds - text" line per caption
// event, in event order. Events whose text is empty after trimming are
// skipped. An empty input yields an empty (non-nil) slice.
func FormatTimestamps(events []model.CaptionEvent) []string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		start := int(e.Start)
		minutes, seconds := start/60, start%60
		lines = append(lines, fmt.Sprintf("%d:%02d - %s", minutes, seconds, text))
	}
	return lines
}
