package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	MaxURLLen         = 2048
	MaxLanguages      = 10
	MaxChannelNames   = 20
	MaxChannelNameLen = 32
)

var (
	// langCodeRe matches BCP-47-ish caption language codes ("en", "pt-BR").
	langCodeRe = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})?$`)
	// channelNameRe matches public Telegram channel usernames.
	channelNameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)
)

// knownBrowsers are the browser names the extraction provider accepts as a
// cookie source. The hint is pass-through; membership is the only check.
var knownBrowsers = map[string]bool{
	"brave":    true,
	"chrome":   true,
	"chromium": true,
	"edge":     true,
	"firefox":  true,
	"opera":    true,
	"safari":   true,
	"vivaldi":  true,
	"whale":    true,
}

// ErrorResponse writes the standard API error body: {"detail": message}.
func ErrorResponse(c fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

// ValidateURL checks that the request carries a URL at all. Whether it names
// a video is decided by the resolver, not here.
func ValidateURL(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "No URL provided"
	}
	if len(raw) > MaxURLLen {
		return "", "URL too long"
	}
	return raw, ""
}

// ValidateBrowser checks an optional browser cookie hint. An empty hint is
// valid and means "no hint".
func ValidateBrowser(browser string) (string, string) {
	browser = strings.ToLower(strings.TrimSpace(browser))
	if browser == "" {
		return "", ""
	}
	if !knownBrowsers[browser] {
		return "", "Unrecognized browser name"
	}
	return browser, ""
}

// ValidateLanguages normalizes an optional language preference list,
// preserving order. A nil result means "use the default".
func ValidateLanguages(languages []string) ([]string, string) {
	if len(languages) == 0 {
		return nil, ""
	}
	if len(languages) > MaxLanguages {
		return nil, "Too many languages requested"
	}

	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if !langCodeRe.MatchString(lang) {
			return nil, "Invalid language code: " + lang
		}
		out = append(out, lang)
	}
	if len(out) == 0 {
		return nil, ""
	}
	return out, ""
}

// ValidateChannelNames normalizes a Telegram channel name list: trims
// whitespace, strips a leading @, and drops empty entries.
func ValidateChannelNames(names []string) ([]string, string) {
	if len(names) > MaxChannelNames {
		return nil, "Too many channels requested"
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		if name == "" {
			continue
		}
		if len(name) > MaxChannelNameLen || !channelNameRe.MatchString(name) {
			return nil, "Invalid channel name: " + name
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, "No channel names provided"
	}
	return out, ""
}
