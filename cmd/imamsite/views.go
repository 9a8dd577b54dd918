package main

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Usmansagemode/imam-shamsan"
	"github.com/Usmansagemode/imam-shamsan/blocks"
	"github.com/Usmansagemode/imam-shamsan/media"
)

// defaultViews returns a plain HTML view shell. It renders real
// content through the block pipeline but carries no site styling
// beyond theme classes; deployments replace it with templ views.
func defaultViews() imamsite.ViewFuncs {
	return imamsite.ViewFuncs{
		Home:            homeView,
		About:           aboutView,
		Writings:        writingsView,
		WritingsPartial: writingsListView,
		Article:         articleView,
		Sermons:         sermonsView,
		Sermon:          sermonView,
		Services:        servicesView,
		Media:           mediaView,
		Gallery:         galleryView,
		Contact:         contactView,
		ContactResult:   contactView,
		NotFound:        messageView("Page not found."),
		ServerError:     messageView("Something went wrong."),
	}
}

func page(pc imamsite.PageContext, body func(w io.Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<!DOCTYPE html><html lang=\"en\" class=%q><head><meta charset=\"utf-8\">", html.EscapeString(pc.Theme))
		fmt.Fprintf(w, "<title>%s</title>", html.EscapeString(pc.Meta.Title))
		if pc.Meta.Description != "" {
			fmt.Fprintf(w, "<meta name=\"description\" content=%q>", html.EscapeString(pc.Meta.Description))
		}
		if pc.Meta.URL != "" {
			fmt.Fprintf(w, "<link rel=\"canonical\" href=%q>", pc.Meta.URL)
		}
		io.WriteString(w, "<link rel=\"icon\" href=\"/favicon.png\"><link rel=\"apple-touch-icon\" href=\"/apple-touch-icon.png\">")
		fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, imamsite.WebsiteJsonLD(pc.Site))
		io.WriteString(w, "</head><body><nav>")
		for _, link := range [][2]string{
			{"/", "Home"}, {"/about/", "About"}, {"/services/", "Services"},
			{"/writings/", "Writings"}, {"/sermons/", "Sermons"},
			{"/media/", "Media"}, {"/gallery/", "Gallery"}, {"/contact/", "Contact"},
		} {
			fmt.Fprintf(w, "<a href=%q>%s</a> ", link[0], link[1])
		}
		fmt.Fprintf(w, `<form method="post" action="/theme/"><input type="hidden" name="_csrf" value=%q><button type="submit">Theme</button></form>`, pc.CSRF)
		io.WriteString(w, "</nav><main>")
		body(w)
		io.WriteString(w, "</main></body></html>")
		return nil
	})
}

func messageView(msg string) func(imamsite.PageContext) templ.Component {
	return func(pc imamsite.PageContext) templ.Component {
		return page(pc, func(w io.Writer) {
			fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(msg))
		})
	}
}

func homeView(data imamsite.HomeData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(data.Site.Name))
		if data.Stream.IsLive {
			io.WriteString(w, `<p><a href="/media/">Live now</a></p>`)
		}
		io.WriteString(w, "<h2>Latest Writings</h2><ul>")
		for _, a := range data.Latest {
			fmt.Fprintf(w, "<li><a href=\"/writings/%s/\">%s</a></li>", imamsite.PathEscape(a.Slug), html.EscapeString(a.Title))
		}
		io.WriteString(w, "</ul><h2>Recent Sermons</h2><ul>")
		for _, s := range data.Sermons {
			fmt.Fprintf(w, "<li><a href=\"/sermons/%s/\">%s</a></li>", imamsite.PathEscape(s.Slug), html.EscapeString(s.Title))
		}
		io.WriteString(w, "</ul><h2>Services</h2><ul>")
		for _, s := range data.Services {
			fmt.Fprintf(w, "<li>%s</li>", html.EscapeString(s.NameEN))
		}
		io.WriteString(w, "</ul>")
	})
}

func aboutView(data imamsite.AboutData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(data.Title))
		if data.SubtitleAr != "" {
			fmt.Fprintf(w, `<p dir="rtl" class="font-arabic">%s</p>`, html.EscapeString(data.SubtitleAr))
		}
		if data.ProfileImage != "" {
			fmt.Fprintf(w, "<img src=%q alt=%q>", media.ResolveImageURL(data.ProfileImage, media.PresetAvatar), html.EscapeString(data.Site.Author))
		}
		blocks.Render(data.Intro).Render(context.Background(), w)
		for _, sec := range data.Sections {
			fmt.Fprintf(w, "<section id=%q><h2>%s</h2>",
				imamsite.Slugify(sec.Heading.PlainText()), html.EscapeString(sec.Heading.PlainText()))
			if sec.Cards != nil {
				class := "card-grid"
				if sec.Compact {
					class = "card-grid card-grid-compact"
				}
				fmt.Fprintf(w, "<div class=%q>", class)
				for _, card := range sec.Cards {
					fmt.Fprintf(w, "<div class=\"card\"><h3>%s</h3>", html.EscapeString(card.Title))
					blocks.Render(card.Description).Render(context.Background(), w)
					io.WriteString(w, "</div>")
				}
				io.WriteString(w, "</div>")
			} else {
				blocks.Render(sec.Blocks).Render(context.Background(), w)
			}
			io.WriteString(w, "</section>")
		}
	})
}

func writingsView(data imamsite.WritingsData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Writings</h1>")
		writeArticleList(w, data)
	})
}

func writingsListView(data imamsite.WritingsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writeArticleList(w, data)
		return nil
	})
}

func writeArticleList(w io.Writer, data imamsite.WritingsData) {
	io.WriteString(w, `<ul id="writings-list">`)
	for _, a := range data.Articles {
		fmt.Fprintf(w, "<li><a href=\"/writings/%s/\">%s</a>", imamsite.PathEscape(a.Slug), html.EscapeString(a.Title))
		if a.Description != "" {
			fmt.Fprintf(w, "<p>%s</p>", html.EscapeString(a.Description))
		}
		io.WriteString(w, "</li>")
	}
	io.WriteString(w, "</ul>")
}

func articleView(data imamsite.ArticleData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, imamsite.ArticleJsonLD(data.Article.ArticleSummary, data.Site))
		fmt.Fprintf(w, "<article><h1>%s</h1>", html.EscapeString(data.Article.Title))
		if data.Article.CoverImage != "" {
			fmt.Fprintf(w, "<img src=%q alt=\"\" srcset=%q>",
				media.ResolveImageURL(data.Article.CoverImage, media.PresetHero),
				media.SrcSet(data.Article.CoverImage, media.PresetHero))
		}
		blocks.Render(data.Article.Content).Render(context.Background(), w)
		io.WriteString(w, "</article>")
	})
}

func sermonsView(data imamsite.SermonsData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Sermons</h1><ul>")
		for _, s := range data.Sermons {
			fmt.Fprintf(w, "<li><a href=\"/sermons/%s/\">%s</a>", imamsite.PathEscape(s.Slug), html.EscapeString(s.Title))
			if thumb := media.ThumbnailURL(s.YouTubeLink); thumb != "" {
				fmt.Fprintf(w, "<img src=%q alt=\"\" loading=\"lazy\">", thumb)
			}
			io.WriteString(w, "</li>")
		}
		io.WriteString(w, "</ul>")
	})
}

func sermonView(data imamsite.SermonData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		fmt.Fprintf(w, "<article><h1>%s</h1>", html.EscapeString(data.Sermon.Title))
		if data.EmbedURL != "" {
			fmt.Fprintf(w, `<iframe src=%q allowfullscreen loading="lazy"></iframe>`, data.EmbedURL)
		}
		blocks.Render(data.Sermon.Content).Render(context.Background(), w)
		io.WriteString(w, "</article>")
	})
}

func servicesView(data imamsite.ServicesData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Services</h1><ul>")
		for _, s := range data.Services {
			fmt.Fprintf(w, "<li><strong>%s</strong>", html.EscapeString(s.NameEN))
			if s.NameAR != "" {
				fmt.Fprintf(w, ` <span dir="rtl" class="font-arabic">%s</span>`, html.EscapeString(s.NameAR))
			}
			if s.Description != "" {
				fmt.Fprintf(w, "<p>%s</p>", html.EscapeString(s.Description))
			}
			if s.PriceDisplay != "" {
				fmt.Fprintf(w, "<p>%s</p>", html.EscapeString(s.PriceDisplay))
			}
			io.WriteString(w, "</li>")
		}
		io.WriteString(w, "</ul>")
	})
}

func mediaView(data imamsite.MediaData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Media</h1>")
		if data.EmbedURL != "" {
			if data.Stream.IsLive {
				io.WriteString(w, "<p>Live now</p>")
			} else if data.Stream.TimeAgo != "" {
				fmt.Fprintf(w, "<p>Last stream: %s</p>", html.EscapeString(data.Stream.TimeAgo))
			}
			fmt.Fprintf(w, `<iframe src=%q allowfullscreen></iframe>`, data.EmbedURL)
		}
		io.WriteString(w, "<h2>Recitations</h2><ul>")
		for _, r := range data.Recitations {
			fmt.Fprintf(w, "<li><a href=%q>%s</a></li>", r.YouTubeLink, html.EscapeString(r.Title))
		}
		io.WriteString(w, "</ul>")
	})
}

func galleryView(data imamsite.GalleryData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Gallery</h1><nav>")
		fmt.Fprintf(w, `<a href="/gallery/">All</a> `)
		for _, cat := range data.Categories {
			fmt.Fprintf(w, "<a href=\"/gallery/?category=%s\">%s</a> ", imamsite.PathEscape(cat), html.EscapeString(cat))
		}
		io.WriteString(w, "</nav><ul>")
		for _, img := range data.Images {
			fmt.Fprintf(w, "<li><img src=%q srcset=%q alt=%q loading=\"lazy\"></li>",
				media.ResolveImageURL(img.ImageURL, media.PresetGalleryThumb),
				media.SrcSet(img.ImageURL, media.PresetGalleryThumb),
				html.EscapeString(img.Caption))
		}
		io.WriteString(w, "</ul>")
	})
}

func contactView(data imamsite.ContactData) templ.Component {
	return page(data.PageContext, func(w io.Writer) {
		io.WriteString(w, "<h1>Contact</h1>")
		if data.Sent {
			io.WriteString(w, "<p>Thank you, your message has been sent.</p>")
			return
		}
		if msg, ok := data.Errors["form"]; ok {
			fmt.Fprintf(w, "<p role=\"alert\">%s</p>", html.EscapeString(msg))
		}
		fmt.Fprintf(w, `<form method="post" action="/contact/"><input type="hidden" name="_csrf" value=%q>`, data.CSRF)
		writeField(w, data, "name", "Name", data.Form.Name)
		writeField(w, data, "email", "Email", data.Form.Email)
		writeField(w, data, "phone", "Phone (optional)", data.Form.Phone)
		io.WriteString(w, `<label>Service <select name="service"><option value=""></option>`)
		for _, s := range data.Services {
			selected := ""
			if s.NameEN == data.Form.Service {
				selected = " selected"
			}
			fmt.Fprintf(w, "<option%s>%s</option>", selected, html.EscapeString(s.NameEN))
		}
		io.WriteString(w, "</select></label>")
		writeField(w, data, "event_location", "Event location (optional)", data.Form.EventLocation)
		fmt.Fprintf(w, "<label>Message <textarea name=\"message\">%s</textarea></label>", html.EscapeString(data.Form.Message))
		if msg, ok := data.Errors["message"]; ok {
			fmt.Fprintf(w, "<p role=\"alert\">%s</p>", html.EscapeString(msg))
		}
		io.WriteString(w, `<button type="submit">Send</button></form>`)
	})
}

func writeField(w io.Writer, data imamsite.ContactData, name, label, value string) {
	fmt.Fprintf(w, "<label>%s <input name=%q value=%q></label>", html.EscapeString(label), name, html.EscapeString(value))
	if msg, ok := data.Errors[name]; ok {
		fmt.Fprintf(w, "<p role=\"alert\">%s</p>", html.EscapeString(msg))
	}
}
