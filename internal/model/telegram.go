package model

import "encoding/json"

// ChannelPost is one post extracted from a Telegram channel preview page.
// Optional fields are omitted when the post has no such element.
type ChannelPost struct {
	PostID   string  `json:"post_id"`
	Text     *string `json:"text,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
	Datetime *string `json:"datetime,omitempty"`
}

// ChannelResult is the per-channel outcome of a scrape: either a post list or
// an error record. Exactly one of the two is serialized.
type ChannelResult struct {
	Posts []ChannelPost
	Err   string
}

func (r ChannelResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	posts := r.Posts
	if posts == nil {
		posts = []ChannelPost{}
	}
	return json.Marshal(posts)
}

// ChannelPostsRequest is the JSON request body for /channel-posts.
type ChannelPostsRequest struct {
	ChannelNames []string `json:"channel_names"`
}
