package notion

import "github.com/Usmansagemode/imam-shamsan/content"

// ArticleSummary is the listing view of a published writing.
type ArticleSummary struct {
	ID          string
	Slug        string
	Title       string
	Description string
	CoverImage  string
	Language    string // "English", "Arabic", or "Bilingual"
	Category    string
	Tags        []string
	Featured    bool
	CreatedAt   string
	UpdatedAt   string
}

// Article is a full writing including its block content.
type Article struct {
	ArticleSummary
	Content []content.Block
}

// SermonSummary is the listing view of a sermon summary page.
type SermonSummary struct {
	ID          string
	Title       string
	Slug        string
	Description string
	YouTubeLink string
	Date        string
	CreatedAt   string
}

// Sermon is a full sermon summary including its block content.
type Sermon struct {
	SermonSummary
	Content []content.Block
}

// Service is a bookable ministry service.
type Service struct {
	ID           string
	NameEN       string
	NameAR       string
	Description  string
	PriceDisplay string
	PriceNote    string
	Icon         string
	Order        int
}

// GalleryImage is one photo in the gallery.
type GalleryImage struct {
	ID       string
	Caption  string
	ImageURL string
	Category string
	Order    int
	Featured bool
}

// Recitation is a YouTube recitation link shown on the media page.
type Recitation struct {
	ID          string
	Title       string
	YouTubeLink string
	Order       int
}

// Setting is one key/value pair from the site settings database.
type Setting struct {
	Value     string
	UpdatedAt string
}

// SiteSettings maps setting keys (profile_img, live_stream_url,
// live_stream_title, ...) to their values.
type SiteSettings map[string]Setting

// AboutPage is the about document with its block content.
type AboutPage struct {
	ID         string
	Title      string
	SubtitleAR string
	Content    []content.Block
}
