package imamsite

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

var staticPages = []string{"", "about", "services", "writings", "sermons", "media", "gallery", "contact"}

func (a *App) renderSitemap(c echo.Context, articles []notion.ArticleSummary, sermons []notion.SermonSummary) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(staticPages)+len(articles)+len(sermons))
	for _, p := range staticPages {
		if p == "" {
			urls = append(urls, sitemapURL{Loc: BuildURL(base)})
			continue
		}
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p)})
	}
	for _, art := range articles {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "writings", art.Slug),
			LastMod: lastModDate(art.UpdatedAt),
		})
	}
	for _, s := range sermons {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "sermons", s.Slug),
			LastMod: lastModDate(s.CreatedAt),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

func lastModDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
