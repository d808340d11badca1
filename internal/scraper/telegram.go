package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
)

// bgImageRe pulls the URL out of a "background-image: url('...')" style
// attribute on a photo wrapper element. The preview currently single-quotes
// the URL; double-quoted and bare forms are accepted too.
var bgImageRe = regexp.MustCompile(`background-image:\s*url\(['"]?([^'")]+)['"]?\)`)

// Telegram scrapes posts from a channel's public preview page (t.me/s/<name>).
// The preview markup is not a stable API, so extraction is best effort: a
// bubble missing an expected element contributes what it has, and a bubble
// without a permalink is skipped entirely.
type Telegram struct {
	client  *http.Client
	baseURL string
}

func NewTelegram(client *http.Client, baseURL string) *Telegram {
	return &Telegram{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchPosts returns the channel's recent posts in chronological order
// (oldest first). The preview page renders newest first; the extracted list
// is reversed exactly once.
func (t *Telegram) FetchPosts(ctx context.Context, channel string) ([]model.ChannelPost, error) {
	pageURL := t.baseURL + "/s/" + url.PathEscape(channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching channel page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Failed to fetch channel: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing channel page: %w", err)
	}

	posts := extractPosts(doc)
	reverse(posts)
	return posts, nil
}

func extractPosts(doc *goquery.Document) []model.ChannelPost {
	var posts []model.ChannelPost
	doc.Find(".tgme_widget_message").Each(func(_ int, bubble *goquery.Selection) {
		if post, ok := extractPost(bubble); ok {
			posts = append(posts, post)
		}
	})
	return posts
}

// extractPost pulls one post out of a message bubble. It reports false when
// the bubble has no usable permalink, which drops that bubble without
// affecting the rest of the page.
func extractPost(bubble *goquery.Selection) (model.ChannelPost, bool) {
	permalink, _ := bubble.Find("a.tgme_widget_message_date").Attr("href")
	postID := permalinkID(permalink)
	if postID == "" {
		return model.ChannelPost{}, false
	}

	post := model.ChannelPost{PostID: postID}

	if text := strings.TrimSpace(bubble.Find(".tgme_widget_message_text").Text()); text != "" {
		post.Text = &text
	}

	if style, ok := bubble.Find(".tgme_widget_message_photo_wrap").Attr("style"); ok {
		if m := bgImageRe.FindStringSubmatch(style); m != nil {
			post.ImageURL = &m[1]
		}
	}

	if src, ok := bubble.Find("video.tgme_widget_message_video").Attr("src"); ok && src != "" {
		post.VideoURL = &src
	}

	if dt, ok := bubble.Find("time").Attr("datetime"); ok && dt != "" {
		post.Datetime = &dt
	}

	return post, true
}

// permalinkID returns the trailing path segment of a message permalink
// (https://t.me/<channel>/<id> -> <id>).
func permalinkID(permalink string) string {
	u, err := url.Parse(permalink)
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}

func reverse(posts []model.ChannelPost) {
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
}
