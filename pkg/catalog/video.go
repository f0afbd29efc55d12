package catalog

import (
	"regexp"
	"strings"
)

const embedBaseURL = "https://www.youtube.com/embed/"

// YouTube video IDs are always exactly 11 characters, so the capture
// must be terminated by a non-ID character or the end of the string.
// Without the terminator a longer token would match on its first 11
// characters and the URL would be rewritten to a truncated embed link.
var (
	shortLinkRe = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
	watchRe     = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
	embedRe     = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
)

var directMediaExts = []string{".mp4", ".webm", ".ogg"}

// NormalizeVideoURL maps the heterogeneous video link formats found in
// exercise rows to the canonical embeddable form.
//
// Short links (youtu.be/<id>) and watch links (?v=<id>) are rewritten to
// the /embed/<id> form. URLs already in embed form are re-emitted
// canonically. Direct media files (.mp4/.webm/.ogg, query string allowed)
// pass through untouched, as does anything unrecognized: an unknown
// provider is still potentially a valid value and must not be discarded.
// An empty input stays empty.
func NormalizeVideoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if isDirectMedia(s) {
		return s
	}

	if m := embedRe.FindStringSubmatch(s); m != nil {
		return embedBaseURL + m[1]
	}
	if m := shortLinkRe.FindStringSubmatch(s); m != nil {
		return embedBaseURL + m[1]
	}
	if m := watchRe.FindStringSubmatch(s); m != nil {
		return embedBaseURL + m[1]
	}

	return s
}

func isDirectMedia(s string) bool {
	path := s
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	lower := strings.ToLower(path)
	for _, ext := range directMediaExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
