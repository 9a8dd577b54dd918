package imamsite

import (
	"encoding/json"
	"strings"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

// PersonJsonLD returns a JSON-LD Person schema for the scholar, used on
// the about page.
func PersonJsonLD(cfg SiteConfig, jobTitle, imageURL string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Author,
		"url":      BuildURL(cfg.URL, "about"),
	}
	if jobTitle != "" {
		data["jobTitle"] = jobTitle
	}
	if imageURL != "" {
		data["image"] = imageURL
	}
	return marshalJsonLD(data)
}

// ArticleJsonLD returns a JSON-LD Article schema for a writing.
func ArticleJsonLD(a notion.ArticleSummary, cfg SiteConfig) string {
	articleURL := BuildURL(cfg.URL, "writings", a.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      a.Title,
		"description":   a.Description,
		"datePublished": a.CreatedAt,
		"url":           articleURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if a.Category != "" {
		data["articleSection"] = a.Category
	}
	if tags := FilterEmpty(a.Tags); len(tags) > 0 {
		data["keywords"] = strings.Join(tags, ", ")
	}
	if a.CoverImage != "" {
		data["image"] = a.CoverImage
	}
	return marshalJsonLD(data)
}

// BreadcrumbJsonLD returns a JSON-LD BreadcrumbList for the given
// name/url pairs, in order from the site root down.
func BreadcrumbJsonLD(crumbs ...[2]string) string {
	items := make([]map[string]interface{}, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb[0],
			"item":     crumb[1],
		})
	}
	return marshalJsonLD(map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
