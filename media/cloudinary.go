// Package media holds the URL-level helpers for externally hosted
// assets: Cloudinary image transforms and YouTube video links.
package media

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Preset names a fixed image-size/crop configuration.
type Preset string

const (
	PresetThumbnail      Preset = "thumbnail"
	PresetCard           Preset = "card"
	PresetHero           Preset = "hero"
	PresetArticleCover   Preset = "article-cover"
	PresetGalleryThumb   Preset = "gallery-thumb"
	PresetGalleryFull    Preset = "gallery-full"
	PresetAvatar         Preset = "avatar"
	PresetFavicon        Preset = "favicon"
	PresetAppleTouchIcon Preset = "apple-touch-icon"
)

type presetConfig struct {
	width  int
	height int    // 0 means unconstrained
	crop   string // empty means no crop directive
}

var presets = map[Preset]presetConfig{
	PresetThumbnail:      {width: 400, height: 300, crop: "fill"},
	PresetCard:           {width: 600, height: 400, crop: "fill"},
	PresetHero:           {width: 1200, height: 800, crop: "fill"},
	PresetArticleCover:   {width: 1200, height: 630, crop: "fill"},
	PresetGalleryThumb:   {width: 400, height: 400, crop: "fill"},
	PresetGalleryFull:    {width: 1400},
	PresetAvatar:         {width: 200, height: 200, crop: "fill"},
	PresetFavicon:        {width: 48, height: 48, crop: "fit"},
	PresetAppleTouchIcon: {width: 180, height: 180, crop: "fit"},
}

// Width returns the pixel width the preset targets at 1x density.
func (p Preset) Width() int { return presets[p].width }

// Height returns the preset's pixel height, or 0 when unconstrained.
func (p Preset) Height() int { return presets[p].height }

var (
	reCloudinary = regexp.MustCompile(`^https?://res\.cloudinary\.com/([^/]+)/image/upload/(.*)`)
	// Path segments produced by a previous transform application. A
	// multi-parameter segment always contains a comma and is caught by
	// the comma check in parseCloudinaryURL.
	reTransformPrefix = regexp.MustCompile(`^(w_|h_|c_|q_|f_|ar_|g_|dpr_|e_|l_|fl_|t_)`)
)

// parseCloudinaryURL splits a Cloudinary delivery URL into cloud name
// and the image path with any leading transform segments stripped, so a
// fresh transform can be applied to the clean path. Returns ok=false
// for anything that is not a Cloudinary upload URL.
func parseCloudinaryURL(rawURL string) (cloudName, imagePath string, ok bool) {
	if rawURL == "" {
		return "", "", false
	}
	m := reCloudinary.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", false
	}
	cloudName = m[1]
	parts := strings.Split(m[2], "/")
	first := -1
	for i, part := range parts {
		if !reTransformPrefix.MatchString(part) && !strings.Contains(part, ",") {
			first = i
			break
		}
	}
	if first == -1 {
		imagePath = strings.Join(parts, "/")
	} else {
		imagePath = strings.Join(parts[first:], "/")
	}
	return cloudName, imagePath, true
}

func buildCloudinaryURL(cloudName, imagePath string, transforms []string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s",
		cloudName, strings.Join(transforms, ","), imagePath)
}

func presetTransforms(cfg presetConfig, width, height int) []string {
	transforms := []string{fmt.Sprintf("w_%d", width)}
	if height > 0 {
		transforms = append(transforms, fmt.Sprintf("h_%d", height))
	}
	if cfg.crop != "" {
		transforms = append(transforms, "c_"+cfg.crop)
	}
	return append(transforms, "q_auto", "f_auto")
}

// ResolveImageURL rebuilds rawURL with the preset's canonical transform
// string, replacing any transform a previous call applied. Non-Cloudinary
// URLs pass through unchanged; an empty input yields an empty string.
func ResolveImageURL(rawURL string, preset Preset) string {
	cloudName, imagePath, ok := parseCloudinaryURL(rawURL)
	if !ok {
		return rawURL
	}
	cfg := presets[preset]
	return buildCloudinaryURL(cloudName, imagePath, presetTransforms(cfg, cfg.width, cfg.height))
}

// SrcSet returns a responsive srcset descriptor list at 0.5x, 1x and
// 1.5x of the preset width, with heights scaled proportionally. Empty
// string when the URL is not a Cloudinary URL.
func SrcSet(rawURL string, preset Preset) string {
	cloudName, imagePath, ok := parseCloudinaryURL(rawURL)
	if !ok {
		return ""
	}
	cfg := presets[preset]
	widths := []int{
		int(math.Round(float64(cfg.width) * 0.5)),
		cfg.width,
		int(math.Round(float64(cfg.width) * 1.5)),
	}
	entries := make([]string, 0, len(widths))
	for _, w := range widths {
		h := 0
		if cfg.height > 0 {
			h = int(math.Round(float64(cfg.height) * float64(w) / float64(cfg.width)))
		}
		url := buildCloudinaryURL(cloudName, imagePath, presetTransforms(cfg, w, h))
		entries = append(entries, fmt.Sprintf("%s %dw", url, w))
	}
	return strings.Join(entries, ", ")
}

// BlurPlaceholder returns a tiny blurred variant of the image, used as
// a loading placeholder. Non-Cloudinary URLs pass through unchanged.
func BlurPlaceholder(rawURL string) string {
	cloudName, imagePath, ok := parseCloudinaryURL(rawURL)
	if !ok {
		return rawURL
	}
	return buildCloudinaryURL(cloudName, imagePath, []string{
		"w_50", "h_50", "c_fill", "q_auto", "f_auto", "e_blur:1000",
	})
}
