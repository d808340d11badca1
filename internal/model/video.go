package model

// VideoMetadata is the canonical metadata shape returned by /video-data.
// Every field except VideoID is nullable: providers that do not know a value
// leave it nil and it serializes as JSON null. Values are never guessed.
type VideoMetadata struct {
	VideoID         string   `json:"video_id"`
	Title           *string  `json:"title"`
	AuthorName      *string  `json:"author_name"`
	AuthorURL       *string  `json:"author_url"`
	UploadDate      *string  `json:"upload_date"`
	DurationSeconds *int64   `json:"duration_seconds"`
	ViewCount       *int64   `json:"view_count"`
	LikeCount       *int64   `json:"like_count"`
	ThumbnailURL    *string  `json:"thumbnail_url"`
	Description     *string  `json:"description"`
	Categories      []string `json:"categories"`
	Tags            []string `json:"tags"`
}

// CaptionEvent is a single timed subtitle entry. Start is the offset from the
// beginning of the video in seconds, as delivered by the caption provider.
type CaptionEvent struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`
}

// LanguageList is the response for /video-languages: caption language codes
// split into manually uploaded and auto-generated tracks.
type LanguageList struct {
	Manual    []string `json:"manual"`
	Automatic []string `json:"automatic"`
}

// VideoRequest is the JSON request body shared by the video endpoints.
type VideoRequest struct {
	URL       string   `json:"url"`
	Languages []string `json:"languages,omitempty"`
	Browser   string   `json:"browser,omitempty"`
}
