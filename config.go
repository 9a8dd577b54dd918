package imamsite

import (
	"time"

	"github.com/Usmansagemode/imam-shamsan/notion"
)

// SiteConfig holds all configuration for an imamsite application.
type SiteConfig struct {
	Name        string // Site name (default "Imam Shamsan")
	URL         string // Canonical URL, no trailing slash (default "http://localhost:8080")
	Description string // Site description for RSS and meta tags
	Author      string // Scholar name for JSON-LD and feed attribution

	Addr string // Listen address (default ":8080")

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	Notion notion.Config // Content workspace configuration

	ContactEmail      string        // Recipient for contact form submissions
	ResendAPIKey      string        // Resend API key; submissions are logged when empty
	ContactMaxPerHour int           // Contact submissions allowed per IP per window (default 5)
	ContactWindow     time.Duration // Sliding window for the contact limiter (default 1h)

	IconCacheTTL time.Duration // Generated favicon cache TTL (default 24h)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Imam Shamsan"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8080"
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ContactMaxPerHour == 0 {
		c.ContactMaxPerHour = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = time.Hour
	}
	if c.IconCacheTTL == 0 {
		c.IconCacheTTL = 24 * time.Hour
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithMailer replaces the outgoing mail implementation. Useful for tests
// and alternative providers.
func WithMailer(m Mailer) Option {
	return func(a *App) {
		a.mailer = m
	}
}
