// Package imamsite is the web engine behind an Islamic scholar's
// ministry website: marketing pages, writings, sermon summaries, media,
// gallery, and a contact form, all rendered from a Notion workspace.
//
// Users provide their own templ components via the ViewFuncs struct,
// and imamsite handles routing, middleware, content fetching, and the
// block rendering pipeline.
package imamsite

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

// ViewFuncs holds user-provided templ components that the engine calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home            func(data HomeData) templ.Component
	About           func(data AboutData) templ.Component
	Writings        func(data WritingsData) templ.Component
	WritingsPartial func(data WritingsData) templ.Component
	Article         func(data ArticleData) templ.Component
	Sermons         func(data SermonsData) templ.Component
	Sermon          func(data SermonData) templ.Component
	Services        func(data ServicesData) templ.Component
	Media           func(data MediaData) templ.Component
	Gallery         func(data GalleryData) templ.Component
	Contact         func(data ContactData) templ.Component
	ContactResult   func(data ContactData) templ.Component
	NotFound        func(page PageContext) templ.Component
	ServerError     func(page PageContext) templ.Component
}

// App is the central application. It wires together the content
// library, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Library *notion.Library
	Views   ViewFuncs

	mailer        Mailer
	submitLimiter *SubmitLimiter
	icons         *iconCache
	customRoutes  []func(*App)
	staticDir     string
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the content library, middleware, and routes, then
// starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("imamsite: SessionSecret is required")
	}

	a.Library = notion.NewLibrary(a.Config.Notion)
	a.submitLimiter = NewSubmitLimiter(a.Config.ContactMaxPerHour, a.Config.ContactWindow)
	a.icons = newIconCache(a.Library, a.Config.IconCacheTTL)

	if a.mailer == nil {
		if a.Config.ResendAPIKey != "" {
			a.mailer = NewResendMailer(a.Config.ResendAPIKey, a.Config.ContactEmail)
		} else {
			a.mailer = logMailer{}
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.png", a.handleFavicon)
	e.GET("/apple-touch-icon.png", a.handleAppleTouchIcon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/services/", a.handleServices)
	e.GET("/writings/", a.handleWritings)
	e.GET("/writings/:slug/", a.handleArticle)
	e.GET("/sermons/", a.handleSermons)
	e.GET("/sermons/:slug/", a.handleSermon)
	e.GET("/media/", a.handleMedia)
	e.GET("/gallery/", a.handleGallery)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.POST("/theme/", a.handleThemeToggle)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty. A convenience for main.go wiring.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("imamsite: required environment variable %s is not set", key)
	}
	return v
}
