package imamsite

import (
	"github.com/Usmansagemode/imam-shamsan/content"
	"github.com/Usmansagemode/imam-shamsan/media"
	"github.com/Usmansagemode/imam-shamsan/notion"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, optional
}

// PageContext is shared by every page's view data: site config, the
// visitor's theme, the CSRF token for forms, and head metadata.
type PageContext struct {
	Site  SiteConfig
	Theme string
	CSRF  string
	Meta  PageMeta
}

// HomeData feeds the landing page: a hero from site settings, the
// latest writings, upcoming services, and the media highlight.
type HomeData struct {
	PageContext
	Settings notion.SiteSettings
	Latest   []notion.ArticleSummary
	Sermons  []notion.SermonSummary
	Services []notion.Service
	Stream   media.StreamState
}

// AboutSection is a heading-delimited slice of the about page, with
// card detection already applied. Cards is nil when the section body
// did not match the card pattern and should render as plain blocks.
type AboutSection struct {
	Heading content.Block
	Blocks  []content.Block
	Cards   []content.Card
	Compact bool
}

type AboutData struct {
	PageContext
	Title        string
	SubtitleAr   string
	ProfileImage string
	Intro        []content.Block
	Sections     []AboutSection
}

type WritingsData struct {
	PageContext
	Articles []notion.ArticleSummary
	Language string
	Category string
}

type ArticleData struct {
	PageContext
	Article notion.Article
}

type SermonsData struct {
	PageContext
	Sermons []notion.SermonSummary
}

type SermonData struct {
	PageContext
	Sermon   notion.Sermon
	EmbedURL string
}

type ServicesData struct {
	PageContext
	Services []notion.Service
}

// MediaData feeds the media page: live stream state plus recitations.
type MediaData struct {
	PageContext
	StreamURL   string
	StreamTitle string
	EmbedURL    string
	Stream      media.StreamState
	Recitations []notion.Recitation
}

type GalleryData struct {
	PageContext
	Images     []notion.GalleryImage
	Category   string
	Categories []string
}

// ContactData feeds the contact page, both the blank form and the
// post-submit result. Errors is keyed by field name.
type ContactData struct {
	PageContext
	Form     ContactSubmission
	Errors   map[string]string
	Sent     bool
	Services []notion.Service
}
