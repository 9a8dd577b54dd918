package imamsite

import (
	"net/url"
	"path"
	"strings"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RelatedArticles finds articles sharing a category with current,
// excluding current itself.
func RelatedArticles(current notion.ArticleSummary, articles []notion.ArticleSummary) []notion.ArticleSummary {
	var related []notion.ArticleSummary
	for _, a := range articles {
		if a.Slug == current.Slug {
			continue
		}
		if a.Category != "" && a.Category == current.Category {
			related = append(related, a)
		}
	}
	return related
}

// GalleryCategories collects the distinct categories present in images,
// preserving first-seen order.
func GalleryCategories(images []notion.GalleryImage) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, img := range images {
		cat := strings.TrimSpace(img.Category)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
