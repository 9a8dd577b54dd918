package media

import (
	"testing"
	"time"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=xyz123&list=PL99&t=5", "xyz123"},
		{"short url", "https://youtu.be/abc123", "abc123"},
		{"short url with timestamp", "https://youtu.be/abc123?t=5", "abc123"},
		{"live url", "https://www.youtube.com/live/lv9stream", "lv9stream"},
		{"not a url", "not a url", ""},
		{"empty", "", ""},
		{"unrelated url", "https://vimeo.com/12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VideoID(tt.in); got != tt.want {
				t.Errorf("VideoID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("https://youtu.be/abc123")
	want := "https://www.youtube.com/embed/abc123"
	if got != want {
		t.Errorf("EmbedURL = %q, want %q", got, want)
	}

	if got := EmbedURL("https://vimeo.com/12345"); got != "" {
		t.Errorf("EmbedURL = %q, want empty", got)
	}
}

func TestThumbnailURL(t *testing.T) {
	got := ThumbnailURL("https://www.youtube.com/watch?v=abc123")
	want := "https://img.youtube.com/vi/abc123/mqdefault.jpg"
	if got != want {
		t.Errorf("ThumbnailURL = %q, want %q", got, want)
	}

	if got := ThumbnailURL(""); got != "" {
		t.Errorf("ThumbnailURL = %q, want empty", got)
	}
}

func TestStreamStatusAt(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	stamp := func(ago time.Duration) string {
		return now.Add(-ago).Format(time.RFC3339)
	}

	tests := []struct {
		name     string
		updated  string
		wantLive bool
		wantAgo  string
	}{
		{"thirty minutes ago is live", stamp(30 * time.Minute), true, ""},
		{"just under four hours is live", stamp(4*time.Hour - time.Minute), true, ""},
		{"ten hours ago", stamp(10 * time.Hour), false, "10 hours ago"},
		{"one hour past window", stamp(5 * time.Hour), false, "5 hours ago"},
		{"two days ago", stamp(48 * time.Hour), false, "2 days ago"},
		{"one day ago singular", stamp(25 * time.Hour), false, "1 day ago"},
		{"two weeks ago", stamp(15 * 24 * time.Hour), false, "2 weeks ago"},
		{"forty days ago is a date", stamp(40 * 24 * time.Hour), false, "Feb 3"},
		{"future timestamp", stamp(-time.Hour), false, ""},
		{"empty", "", false, ""},
		{"unparseable", "yesterday", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := streamStatusAt(tt.updated, now)
			if got.IsLive != tt.wantLive {
				t.Errorf("IsLive = %v, want %v", got.IsLive, tt.wantLive)
			}
			if got.TimeAgo != tt.wantAgo {
				t.Errorf("TimeAgo = %q, want %q", got.TimeAgo, tt.wantAgo)
			}
		})
	}
}
