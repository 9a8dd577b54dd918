package media

import (
	"fmt"
	"regexp"
	"time"
)

var (
	reWatchID = regexp.MustCompile(`[?&]v=([^&]+)`)
	reShortID = regexp.MustCompile(`youtu\.be/([^?&]+)`)
	reLiveID  = regexp.MustCompile(`youtube\.com/live/([^?&]+)`)
)

// VideoID extracts the YouTube video id from a watch, short, or live
// URL. Match priority is watch, then youtu.be, then /live. Empty string
// when no shape matches.
func VideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, re := range []*regexp.Regexp{reWatchID, reShortID, reLiveID} {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// EmbedURL converts any recognized YouTube URL into its embeddable
// form, or returns an empty string.
func EmbedURL(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

// ThumbnailURL returns the medium-quality thumbnail for a video URL,
// or an empty string.
func ThumbnailURL(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}

// liveWindow is how long after its last update a stream link is still
// presented as live.
const liveWindow = 4 * time.Hour

// StreamState describes whether a stream link is live and, when it is
// not, how long ago it was last updated.
type StreamState struct {
	IsLive  bool
	TimeAgo string // empty while live or when the timestamp is unusable
}

// StreamStatus classifies a stream by the RFC 3339 timestamp of its
// last update. Missing, unparseable, or future timestamps report
// not-live with no time-ago text.
func StreamStatus(lastUpdated string) StreamState {
	return streamStatusAt(lastUpdated, time.Now())
}

func streamStatusAt(lastUpdated string, now time.Time) StreamState {
	if lastUpdated == "" {
		return StreamState{}
	}
	updated, err := time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return StreamState{}
	}
	elapsed := now.Sub(updated)
	if elapsed < 0 {
		return StreamState{}
	}
	if elapsed < liveWindow {
		return StreamState{IsLive: true}
	}

	hours := int(elapsed.Hours())
	days := hours / 24
	weeks := days / 7

	var ago string
	switch {
	case hours < 24:
		ago = fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < 7:
		ago = fmt.Sprintf("%d day%s ago", days, plural(days))
	case weeks < 5:
		ago = fmt.Sprintf("%d week%s ago", weeks, plural(weeks))
	default:
		ago = updated.Format("Jan 2")
	}
	return StreamState{TimeAgo: ago}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
