package youtube

import (
	"net/url"
	"regexp"
)

// videoIDPattern matches a known marker followed by the id, which runs up to
// the next '#', '&', '?' or newline.
var videoIDPattern = regexp.MustCompile(
	`(?:watch\?v=|/videos/|embed/|youtu\.be/|/v/|/e/|` +
		`watch\?v%3D|watch\?feature=player_embedded&v=|%2Fvideos%2F|embed%2F|youtu\.be%2F|/v%2F)` +
		`([^#&?\n]*)`)

// ExtractVideoID returns the video id embedded in s.
// The leftmost marker with a non-empty id wins. The id is not validated.
func ExtractVideoID(s string) (string, bool) {
	for _, m := range videoIDPattern.FindAllStringSubmatch(s, -1) {
		if m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

const (
	watchBase = "https://www.youtube.com/watch?v="
	embedBase = "https://www.youtube.com/embed/"
	thumbBase = "https://i.ytimg.com/vi/"
)

// WatchURL returns the canonical watch page of id
func WatchURL(id string) string {
	return watchBase + url.QueryEscape(id)
}

// EmbedURL returns the iframe player URL of id
func EmbedURL(id string) string {
	return embedBase + url.PathEscape(id)
}

// ThumbnailURL returns the high quality thumbnail of id
func ThumbnailURL(id string) string {
	return thumbBase + url.PathEscape(id) + "/hqdefault.jpg"
}
