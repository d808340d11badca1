package youtube

import (
	"net/url"
	"strings"
)

// ResolveVideoID extracts the video ID from a YouTube URL. It recognizes
//
//	https://youtu.be/<id>
//	https://youtube.com/watch?v=<id>   (and www.youtube.com)
//	https://youtube.com/embed/<id>
//	https://youtube.com/v/<id>
//
// and reports false for anything else, including malformed URLs.
func ResolveVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host == "youtu.be" {
		id := strings.TrimPrefix(u.Path, "/")
		if id == "" {
			return "", false
		}
		return id, true
	}

	if host != "youtube.com" && host != "www.youtube.com" {
		return "", false
	}

	switch {
	case u.Path == "/watch":
		id := u.Query().Get("v")
		if id == "" {
			return "", false
		}
		return id, true
	case strings.HasPrefix(u.Path, "/embed/"):
		return pathSegment(u.Path, 2)
	case strings.HasPrefix(u.Path, "/v/"):
		return pathSegment(u.Path, 2)
	}

	return "", false
}

func pathSegment(path string, index int) (string, bool) {
	parts := strings.Split(path, "/")
	if index >= len(parts) || parts[index] == "" {
		return "", false
	}
	return parts[index], true
}
