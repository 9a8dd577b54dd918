package imamsite

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Usmansagemode/imam-shamsan/content"
	"github.com/Usmansagemode/imam-shamsan/media"
	"github.com/Usmansagemode/imam-shamsan/notion"
)

func (a *App) pageContext(c echo.Context, meta PageMeta) PageContext {
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	return PageContext{
		Site:  a.Config,
		Theme: Theme(c),
		CSRF:  CsrfToken(c),
		Meta:  meta,
	}
}

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	settings := a.Library.Settings(ctx)

	latest := a.Library.FeaturedArticles(ctx, 3)
	if len(latest) == 0 {
		latest = a.Library.PublishedArticles(ctx, notion.ArticleFilter{Limit: 3})
	}

	stream := settings["live_stream_url"]
	data := HomeData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
		}),
		Settings: settings,
		Latest:   latest,
		Sermons:  a.Library.PublishedSermons(ctx, 2),
		Services: a.Library.ActiveServices(ctx),
		Stream:   media.StreamStatus(stream.UpdatedAt),
	}
	return Render(c, a.Views.Home(data))
}

func (a *App) handleAbout(c echo.Context) error {
	ctx := c.Request().Context()
	about := a.Library.AboutPage(ctx)
	settings := a.Library.Settings(ctx)

	intro, rawSections := content.SplitSections(about.Content)
	sections := make([]AboutSection, 0, len(rawSections))
	for _, s := range rawSections {
		sec := AboutSection{Heading: s.Heading, Blocks: s.Blocks}
		if cards := content.ExtractCards(s.Blocks); cards != nil {
			sec.Cards = cards
			sec.Compact = content.IsCompact(cards)
		}
		sections = append(sections, sec)
	}

	profile := settings["profile_img"].Value
	data := AboutData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "About | " + a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL, "about"),
			Image:       media.ResolveImageURL(profile, media.PresetAvatar),
		}),
		Title:        about.Title,
		SubtitleAr:   about.SubtitleAR,
		ProfileImage: profile,
		Intro:        intro,
		Sections:     sections,
	}
	return Render(c, a.Views.About(data))
}

func (a *App) handleServices(c echo.Context) error {
	data := ServicesData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Services | " + a.Config.Name,
			Description: "Religious services offered by " + a.Config.Author + ".",
			URL:         BuildURL(a.Config.URL, "services"),
		}),
		Services: a.Library.ActiveServices(c.Request().Context()),
	}
	return Render(c, a.Views.Services(data))
}

func (a *App) handleWritings(c echo.Context) error {
	language := c.QueryParam("language")
	category := c.QueryParam("category")

	data := WritingsData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Writings | " + a.Config.Name,
			Description: "Articles and reflections by " + a.Config.Author + ".",
			URL:         BuildURL(a.Config.URL, "writings"),
		}),
		Articles: a.Library.PublishedArticles(c.Request().Context(), notion.ArticleFilter{
			Language: language,
			Category: category,
		}),
		Language: language,
		Category: category,
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		return Render(c, a.Views.WritingsPartial(data))
	}
	return Render(c, a.Views.Writings(data))
}

func (a *App) handleArticle(c echo.Context) error {
	slug := c.Param("slug")
	article, err := a.Library.ArticleBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundContext(c)))
		}
		return err
	}
	data := ArticleData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       article.Title + " | " + a.Config.Name,
			Description: article.Description,
			URL:         BuildURL(a.Config.URL, "writings", article.Slug),
			OGType:      "article",
			Image:       media.ResolveImageURL(article.CoverImage, media.PresetArticleCover),
		}),
		Article: article,
	}
	return Render(c, a.Views.Article(data))
}

func (a *App) handleSermons(c echo.Context) error {
	data := SermonsData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Sermons | " + a.Config.Name,
			Description: "Friday sermon summaries by " + a.Config.Author + ".",
			URL:         BuildURL(a.Config.URL, "sermons"),
		}),
		Sermons: a.Library.PublishedSermons(c.Request().Context(), 0),
	}
	return Render(c, a.Views.Sermons(data))
}

func (a *App) handleSermon(c echo.Context) error {
	slug := c.Param("slug")
	sermon, err := a.Library.SermonBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundContext(c)))
		}
		return err
	}
	data := SermonData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       sermon.Title + " | " + a.Config.Name,
			Description: sermon.Description,
			URL:         BuildURL(a.Config.URL, "sermons", sermon.Slug),
			OGType:      "article",
			Image:       media.ThumbnailURL(sermon.YouTubeLink),
		}),
		Sermon:   sermon,
		EmbedURL: media.EmbedURL(sermon.YouTubeLink),
	}
	return Render(c, a.Views.Sermon(data))
}

func (a *App) handleMedia(c echo.Context) error {
	ctx := c.Request().Context()
	settings := a.Library.Settings(ctx)

	stream := settings["live_stream_url"]
	data := MediaData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Media | " + a.Config.Name,
			Description: "Live streams and Quran recitations.",
			URL:         BuildURL(a.Config.URL, "media"),
		}),
		StreamURL:   stream.Value,
		StreamTitle: settings["live_stream_title"].Value,
		EmbedURL:    media.EmbedURL(stream.Value),
		Stream:      media.StreamStatus(stream.UpdatedAt),
		Recitations: a.Library.ActiveRecitations(ctx),
	}
	return Render(c, a.Views.Media(data))
}

func (a *App) handleGallery(c echo.Context) error {
	category := c.QueryParam("category")
	images := a.Library.GalleryImages(c.Request().Context(), category)

	// Categories come from the unfiltered set so the filter bar stays
	// complete while a filter is active.
	all := images
	if category != "" {
		all = a.Library.GalleryImages(c.Request().Context(), "")
	}

	data := GalleryData{
		PageContext: a.pageContext(c, PageMeta{
			Title:       "Gallery | " + a.Config.Name,
			Description: "Photos from events and community gatherings.",
			URL:         BuildURL(a.Config.URL, "gallery"),
		}),
		Images:     images,
		Category:   category,
		Categories: GalleryCategories(all),
	}
	return Render(c, a.Views.Gallery(data))
}

func (a *App) handleThemeToggle(c echo.Context) error {
	next := "dark"
	if Theme(c) == "dark" {
		next = "light"
	}
	if err := setTheme(c, next); err != nil {
		return err
	}
	referer := c.Request().Referer()
	if referer == "" {
		referer = "/"
	}
	return c.Redirect(http.StatusSeeOther, referer)
}

func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	articles := a.Library.PublishedArticles(ctx, notion.ArticleFilter{})
	sermons := a.Library.PublishedSermons(ctx, 0)
	return a.renderSitemap(c, articles, sermons)
}

func (a *App) handleFeed(c echo.Context) error {
	articles := a.Library.PublishedArticles(c.Request().Context(), notion.ArticleFilter{})
	return a.renderRSS(c, articles)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+a.Config.URL+"/sitemap.xml\n")
}

func (a *App) notFoundContext(c echo.Context) PageContext {
	return a.pageContext(c, PageMeta{
		Title: "Page Not Found | " + a.Config.Name,
		URL:   BuildURL(a.Config.URL),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundContext(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.pageContext(c, PageMeta{
			Title: "Something Went Wrong | " + a.Config.Name,
			URL:   BuildURL(a.Config.URL),
		})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
