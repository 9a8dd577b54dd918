package imamsite

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/Usmansagemode/imam-shamsan/media"
	"github.com/Usmansagemode/imam-shamsan/notion"
)

const maxIconSourceSize = 10 << 20 // 10MB

// iconCache generates site icons from the profile image in site
// settings and serves the PNG bytes from memory. Icons regenerate
// after the TTL so a changed profile image eventually propagates.
type iconCache struct {
	library *notion.Library
	ttl     time.Duration
	http    *http.Client

	mu      sync.Mutex
	entries map[media.Preset]iconEntry
}

type iconEntry struct {
	data    []byte
	expires time.Time
}

func newIconCache(library *notion.Library, ttl time.Duration) *iconCache {
	return &iconCache{
		library: library,
		ttl:     ttl,
		http:    &http.Client{Timeout: 15 * time.Second},
		entries: make(map[media.Preset]iconEntry),
	}
}

// get returns cached PNG bytes for the preset, generating them on miss
// or expiry. Returns nil when no profile image is configured or the
// source cannot be fetched.
func (ic *iconCache) get(ctx context.Context, preset media.Preset) []byte {
	ic.mu.Lock()
	entry, ok := ic.entries[preset]
	ic.mu.Unlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.data
	}

	data, err := ic.generate(ctx, preset)
	if err != nil {
		// Serve stale bytes over nothing when regeneration fails.
		if ok {
			return entry.data
		}
		return nil
	}

	ic.mu.Lock()
	ic.entries[preset] = iconEntry{data: data, expires: time.Now().Add(ic.ttl)}
	ic.mu.Unlock()
	return data
}

func (ic *iconCache) generate(ctx context.Context, preset media.Preset) ([]byte, error) {
	srcURL := ic.library.Settings(ctx)["profile_img"].Value
	if srcURL == "" {
		return nil, fmt.Errorf("no profile image configured")
	}
	srcURL = media.ResolveImageURL(srcURL, preset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ic.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch icon source: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch icon source: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxIconSourceSize))
	if err != nil {
		return nil, fmt.Errorf("decode icon source: %w", err)
	}

	return encodeIcon(img, preset.Width(), preset.Height())
}

// encodeIcon scales img to the target dimensions and encodes it as PNG.
// Cloudinary sources arrive pre-sized; the scale covers non-Cloudinary
// profile images.
func encodeIcon(img image.Image, width, height int) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *App) handleFavicon(c echo.Context) error {
	return a.serveIcon(c, media.PresetFavicon)
}

func (a *App) handleAppleTouchIcon(c echo.Context) error {
	return a.serveIcon(c, media.PresetAppleTouchIcon)
}

func (a *App) serveIcon(c echo.Context, preset media.Preset) error {
	data := a.icons.get(c.Request().Context(), preset)
	if data == nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "image/png", data)
}
