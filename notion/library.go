package notion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("notion: not found")

// Config identifies the workspace databases backing each site area.
type Config struct {
	APIKey        string
	ArticlesDB    string
	SermonsDB     string
	ServicesDB    string
	GalleryDB     string
	RecitationsDB string
	SettingsDB    string
	AboutDB       string
	CacheTTL      time.Duration
}

// Library exposes cached, domain-level read operations over the
// workspace. List operations never fail: errors are logged and shown
// as empty results (or embedded fallback content) so pages degrade to
// "no content" instead of erroring.
type Library struct {
	client *Client
	cfg    Config
	cache  *TTLCache
}

// NewLibrary builds a Library from cfg. A one-minute cache keeps the
// site under the upstream rate limit.
func NewLibrary(cfg Config) *Library {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Minute
	}
	return &Library{
		client: NewClient(cfg.APIKey),
		cfg:    cfg,
		cache:  NewTTLCache(cfg.CacheTTL),
	}
}

func (l *Library) configured(databaseID string) bool {
	return l.client.Configured() && databaseID != ""
}

// ArticleFilter narrows the published-articles listing.
type ArticleFilter struct {
	Language string
	Category string
	Limit    int
}

func pageToArticleSummary(p page) ArticleSummary {
	return ArticleSummary{
		ID:          p.ID,
		Slug:        p.text("Slug"),
		Title:       p.text("Title"),
		Description: p.text("Description"),
		CoverImage:  p.imageURL("Cover Image"),
		Language:    p.text("Language"),
		Category:    p.text("Category"),
		Tags:        p.multiSelect("Tags"),
		Featured:    p.checkbox("Featured"),
		CreatedAt:   p.text("Created time"),
		UpdatedAt:   p.text("Last edited time"),
	}
}

// PublishedArticles lists published writings, newest first.
func (l *Library) PublishedArticles(ctx context.Context, filter ArticleFilter) []ArticleSummary {
	if !l.configured(l.cfg.ArticlesDB) {
		return nil
	}
	key := fmt.Sprintf("articles:%s:%s:%d", filter.Language, filter.Category, filter.Limit)
	articles, err := cached(l.cache, key, func() ([]ArticleSummary, error) {
		filters := []map[string]any{selectEquals("Status", "Published")}
		if filter.Language != "" && filter.Language != "All" {
			filters = append(filters, selectEquals("Language", filter.Language))
		}
		if filter.Category != "" && filter.Category != "All" {
			filters = append(filters, selectEquals("Category", filter.Category))
		}
		resp, err := l.client.queryDatabase(ctx, l.cfg.ArticlesDB, query{
			Filter:   allOf(filters...),
			Sorts:    []sort{{Timestamp: "created_time", Direction: "descending"}},
			PageSize: filter.Limit,
		})
		if err != nil {
			return nil, err
		}
		out := make([]ArticleSummary, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, pageToArticleSummary(p))
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list articles: %v", err)
		return nil
	}
	return articles
}

// FeaturedArticles lists up to limit featured writings, newest first.
func (l *Library) FeaturedArticles(ctx context.Context, limit int) []ArticleSummary {
	if !l.configured(l.cfg.ArticlesDB) {
		return nil
	}
	key := fmt.Sprintf("articles:featured:%d", limit)
	articles, err := cached(l.cache, key, func() ([]ArticleSummary, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.ArticlesDB, query{
			Filter: allOf(
				selectEquals("Status", "Published"),
				checkboxEquals("Featured", true),
			),
			Sorts:    []sort{{Timestamp: "created_time", Direction: "descending"}},
			PageSize: limit,
		})
		if err != nil {
			return nil, err
		}
		out := make([]ArticleSummary, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, pageToArticleSummary(p))
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list featured articles: %v", err)
		return nil
	}
	return articles
}

// ArticleBySlug fetches one published writing with its content.
func (l *Library) ArticleBySlug(ctx context.Context, slug string) (Article, error) {
	if !l.configured(l.cfg.ArticlesDB) || slug == "" {
		return Article{}, ErrNotFound
	}
	resp, err := l.client.queryDatabase(ctx, l.cfg.ArticlesDB, query{
		Filter: allOf(
			richTextEquals("Slug", slug),
			selectEquals("Status", "Published"),
		),
	})
	if err != nil {
		return Article{}, err
	}
	if len(resp.Results) == 0 {
		return Article{}, ErrNotFound
	}
	p := resp.Results[0]
	raw, err := l.client.AllBlocks(ctx, p.ID)
	if err != nil {
		return Article{}, err
	}
	return Article{
		ArticleSummary: pageToArticleSummary(p),
		Content:        ParseBlocks(raw),
	}, nil
}

func pageToSermonSummary(p page) SermonSummary {
	return SermonSummary{
		ID:          p.ID,
		Title:       p.text("Title"),
		Slug:        p.text("Slug"),
		Description: p.text("Description"),
		YouTubeLink: p.text("YouTube Link"),
		Date:        p.text("Date"),
		CreatedAt:   p.text("Created time"),
	}
}

// PublishedSermons lists published sermon summaries, newest first.
func (l *Library) PublishedSermons(ctx context.Context, limit int) []SermonSummary {
	if !l.configured(l.cfg.SermonsDB) {
		return nil
	}
	key := fmt.Sprintf("sermons:%d", limit)
	sermons, err := cached(l.cache, key, func() ([]SermonSummary, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.SermonsDB, query{
			Filter:   selectEquals("Status", "Published"),
			Sorts:    []sort{{Property: "Date", Direction: "descending"}},
			PageSize: limit,
		})
		if err != nil {
			return nil, err
		}
		out := make([]SermonSummary, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, pageToSermonSummary(p))
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list sermons: %v", err)
		return nil
	}
	return sermons
}

// SermonBySlug fetches one published sermon with its content.
func (l *Library) SermonBySlug(ctx context.Context, slug string) (Sermon, error) {
	if !l.configured(l.cfg.SermonsDB) || slug == "" {
		return Sermon{}, ErrNotFound
	}
	resp, err := l.client.queryDatabase(ctx, l.cfg.SermonsDB, query{
		Filter: allOf(
			richTextEquals("Slug", slug),
			selectEquals("Status", "Published"),
		),
	})
	if err != nil {
		return Sermon{}, err
	}
	if len(resp.Results) == 0 {
		return Sermon{}, ErrNotFound
	}
	p := resp.Results[0]
	raw, err := l.client.AllBlocks(ctx, p.ID)
	if err != nil {
		return Sermon{}, err
	}
	return Sermon{
		SermonSummary: pageToSermonSummary(p),
		Content:       ParseBlocks(raw),
	}, nil
}

// ActiveServices lists active services in display order. When the
// services database is not configured the embedded fallback is used so
// the services page never renders empty on a fresh deployment.
func (l *Library) ActiveServices(ctx context.Context) []Service {
	if !l.configured(l.cfg.ServicesDB) {
		return fallbackServices()
	}
	services, err := cached(l.cache, "services:active", func() ([]Service, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.ServicesDB, query{
			Filter: selectEquals("Status", "Active"),
			Sorts:  []sort{{Property: "Order", Direction: "ascending"}},
		})
		if err != nil {
			return nil, err
		}
		out := make([]Service, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, Service{
				ID:           p.ID,
				NameEN:       p.text("Name EN"),
				NameAR:       p.text("Name AR"),
				Description:  p.text("Description"),
				PriceDisplay: p.text("Price Display"),
				PriceNote:    p.text("Price Note"),
				Icon:         p.text("Icon"),
				Order:        p.number("Order"),
			})
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list services: %v", err)
		return fallbackServices()
	}
	return services
}

// GalleryImages lists active gallery photos, optionally filtered by
// category, in display order.
func (l *Library) GalleryImages(ctx context.Context, category string) []GalleryImage {
	if !l.configured(l.cfg.GalleryDB) {
		return nil
	}
	key := "gallery:" + category
	images, err := cached(l.cache, key, func() ([]GalleryImage, error) {
		filters := []map[string]any{selectEquals("Status", "Active")}
		if category != "" && category != "All" {
			filters = append(filters, selectEquals("Category", category))
		}
		resp, err := l.client.queryDatabase(ctx, l.cfg.GalleryDB, query{
			Filter: allOf(filters...),
			Sorts:  []sort{{Property: "Order", Direction: "ascending"}},
		})
		if err != nil {
			return nil, err
		}
		out := make([]GalleryImage, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, GalleryImage{
				ID:       p.ID,
				Caption:  p.text("Caption"),
				ImageURL: p.imageURL("Image URL"),
				Category: p.text("Category"),
				Order:    p.number("Order"),
				Featured: p.checkbox("Featured"),
			})
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list gallery: %v", err)
		return nil
	}
	return images
}

// ActiveRecitations lists recitations in display order.
func (l *Library) ActiveRecitations(ctx context.Context) []Recitation {
	if !l.configured(l.cfg.RecitationsDB) {
		return nil
	}
	recitations, err := cached(l.cache, "recitations", func() ([]Recitation, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.RecitationsDB, query{
			Sorts: []sort{{Property: "Order", Direction: "ascending"}},
		})
		if err != nil {
			return nil, err
		}
		out := make([]Recitation, 0, len(resp.Results))
		for _, p := range resp.Results {
			out = append(out, Recitation{
				ID:          p.ID,
				Title:       p.text("Title"),
				YouTubeLink: p.text("YouTube Link"),
				Order:       p.number("Order"),
			})
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: list recitations: %v", err)
		return nil
	}
	return recitations
}

// Settings reads the key/value settings database.
func (l *Library) Settings(ctx context.Context) SiteSettings {
	if !l.configured(l.cfg.SettingsDB) {
		return SiteSettings{}
	}
	settings, err := cached(l.cache, "settings", func() (SiteSettings, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.SettingsDB, query{})
		if err != nil {
			return nil, err
		}
		out := make(SiteSettings, len(resp.Results))
		for _, p := range resp.Results {
			key := p.text("Key")
			if key == "" {
				continue
			}
			out[key] = Setting{
				Value:     p.text("Value"),
				UpdatedAt: p.text("Last edited time"),
			}
		}
		return out, nil
	})
	if err != nil {
		log.Printf("notion: settings: %v", err)
		return SiteSettings{}
	}
	return settings
}

// AboutPage fetches the published about document, falling back to
// embedded content when the CMS is unconfigured or failing.
func (l *Library) AboutPage(ctx context.Context) AboutPage {
	if !l.configured(l.cfg.AboutDB) {
		return fallbackAboutPage()
	}
	about, err := cached(l.cache, "about", func() (AboutPage, error) {
		resp, err := l.client.queryDatabase(ctx, l.cfg.AboutDB, query{
			Filter:   selectEquals("Status", "Published"),
			PageSize: 1,
		})
		if err != nil {
			return AboutPage{}, err
		}
		if len(resp.Results) == 0 {
			return AboutPage{}, ErrNotFound
		}
		p := resp.Results[0]
		raw, err := l.client.AllBlocks(ctx, p.ID)
		if err != nil {
			return AboutPage{}, err
		}
		return AboutPage{
			ID:         p.ID,
			Title:      p.text("Title"),
			SubtitleAR: p.text("Subtitle AR"),
			Content:    ParseBlocks(raw),
		}, nil
	})
	if err != nil {
		log.Printf("notion: about page: %v", err)
		return fallbackAboutPage()
	}
	return about
}
