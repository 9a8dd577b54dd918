// Command imamsite runs the ministry website with a minimal built-in
// view shell. Site deployments typically vendor their own templ views
// and call imamsite.New directly; this binary is the reference wiring.
package main

import (
	"log"
	"time"

	"github.com/Usmansagemode/imam-shamsan"
	"github.com/Usmansagemode/imam-shamsan/notion"
)

func main() {
	cfg := imamsite.SiteConfig{
		Name:        imamsite.EnvOr("SITE_NAME", "Imam Shamsan"),
		URL:         imamsite.EnvOr("SITE_URL", "http://localhost:8080"),
		Description: imamsite.EnvOr("SITE_DESCRIPTION", "Islamic scholarship, sermons, and community services."),
		Author:      imamsite.EnvOr("SITE_AUTHOR", "Imam Shamsan"),
		Addr:        imamsite.EnvOr("ADDR", ":8080"),

		SessionSecret: imamsite.MustEnv("SESSION_SECRET"),
		CookieSecure:  imamsite.EnvOr("COOKIE_SECURE", "") == "true",

		Notion: notion.Config{
			APIKey:        imamsite.EnvOr("NOTION_API_KEY", ""),
			ArticlesDB:    imamsite.EnvOr("NOTION_ARTICLES_DATABASE_ID", ""),
			SermonsDB:     imamsite.EnvOr("NOTION_SERMONS_DATABASE_ID", ""),
			ServicesDB:    imamsite.EnvOr("NOTION_SERVICES_DATABASE_ID", ""),
			GalleryDB:     imamsite.EnvOr("NOTION_GALLERY_DATABASE_ID", ""),
			RecitationsDB: imamsite.EnvOr("NOTION_RECITATIONS_DATABASE_ID", ""),
			SettingsDB:    imamsite.EnvOr("NOTION_SETTINGS_DATABASE_ID", ""),
			AboutDB:       imamsite.EnvOr("NOTION_ABOUT_DATABASE_ID", ""),
			CacheTTL:      time.Minute,
		},

		ContactEmail: imamsite.EnvOr("CONTACT_EMAIL", ""),
		ResendAPIKey: imamsite.EnvOr("RESEND_API_KEY", ""),
	}

	app := imamsite.New(cfg, defaultViews())
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
