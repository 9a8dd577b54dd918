package imamsite

import (
	"strings"
	"testing"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Virtues of Patience", "the-virtues-of-patience"},
		{"  Ramadan 2025: A Guide!  ", "ramadan-2025-a-guide"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"writings"}, "https://example.com/writings/"},
		{"https://example.com", []string{"writings", "my-post"}, "https://example.com/writings/my-post/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"Sabr", "  ", "", "Tawakkul"})
	want := []string{"Sabr", "Tawakkul"}
	if len(got) != len(want) {
		t.Fatalf("FilterEmpty = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterEmpty[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRelatedArticles(t *testing.T) {
	current := notion.ArticleSummary{Slug: "a", Category: "Fiqh"}
	articles := []notion.ArticleSummary{
		{Slug: "a", Category: "Fiqh"},
		{Slug: "b", Category: "Fiqh"},
		{Slug: "c", Category: "Aqeedah"},
		{Slug: "d", Category: ""},
	}

	related := RelatedArticles(current, articles)
	if len(related) != 1 || related[0].Slug != "b" {
		t.Errorf("RelatedArticles = %+v, want only slug b", related)
	}
}

func TestGalleryCategories(t *testing.T) {
	images := []notion.GalleryImage{
		{Category: "Events"},
		{Category: "Lectures"},
		{Category: "Events"},
		{Category: "  "},
	}
	got := GalleryCategories(images)
	want := []string{"Events", "Lectures"}
	if len(got) != len(want) {
		t.Fatalf("GalleryCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GalleryCategories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestArticleJsonLD(t *testing.T) {
	cfg := SiteConfig{
		Name:   "Imam Shamsan",
		URL:    "https://example.com",
		Author: "Imam Shamsan",
	}
	got := ArticleJsonLD(notion.ArticleSummary{
		Slug:      "patience",
		Title:     "On Patience",
		Category:  "Akhlaq",
		Tags:      []string{"Sabr", "  ", "Akhlaq"},
		CreatedAt: "2025-01-10T08:00:00Z",
	}, cfg)

	for _, want := range []string{
		`"@type":"Article"`,
		`"headline":"On Patience"`,
		`"url":"https://example.com/writings/patience/"`,
		`"articleSection":"Akhlaq"`,
		`"keywords":"Sabr, Akhlaq"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ArticleJsonLD missing %s:\n%s", want, got)
		}
	}
}

func TestArticleJsonLDOmitsBlankKeywords(t *testing.T) {
	got := ArticleJsonLD(notion.ArticleSummary{
		Slug:  "patience",
		Title: "On Patience",
		Tags:  []string{"", "   "},
	}, SiteConfig{Name: "Imam Shamsan", URL: "https://example.com"})

	if strings.Contains(got, "keywords") {
		t.Errorf("ArticleJsonLD includes keywords for blank tags:\n%s", got)
	}
}
