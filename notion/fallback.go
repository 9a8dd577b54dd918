package notion

import (
	_ "embed"
	"fmt"
	"log"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Usmansagemode/imam-shamsan/content"
)

// Embedded fallback content keeps the about and services pages usable
// before the workspace is configured and when the CMS is unreachable.
//
//go:embed fallback.yaml
var fallbackYAML []byte

type fallbackFile struct {
	About struct {
		Title      string `yaml:"title"`
		SubtitleAR string `yaml:"subtitle_ar"`
		Sections   []struct {
			Heading    string   `yaml:"heading"`
			Paragraphs []string `yaml:"paragraphs"`
			Bullets    []string `yaml:"bullets"`
			Cards      []struct {
				Title       string `yaml:"title"`
				Description string `yaml:"description"`
			} `yaml:"cards"`
		} `yaml:"sections"`
	} `yaml:"about"`
	Services []struct {
		NameEN       string `yaml:"name_en"`
		NameAR       string `yaml:"name_ar"`
		Description  string `yaml:"description"`
		PriceDisplay string `yaml:"price_display"`
		PriceNote    string `yaml:"price_note"`
		Icon         string `yaml:"icon"`
	} `yaml:"services"`
}

var loadFallback = sync.OnceValue(func() fallbackFile {
	var f fallbackFile
	if err := yaml.Unmarshal(fallbackYAML, &f); err != nil {
		log.Printf("notion: parse fallback content: %v", err)
	}
	return f
})

// fallbackAboutPage converts the embedded about content into the same
// block shape the CMS would deliver, so segmentation and card detection
// behave identically.
func fallbackAboutPage() AboutPage {
	f := loadFallback()
	var blocks []content.Block
	n := 0
	next := func() string {
		n++
		return fmt.Sprintf("fallback-%d", n)
	}

	for _, section := range f.About.Sections {
		blocks = append(blocks, content.Block{
			ID:      next(),
			Type:    content.Heading2,
			Content: section.Heading,
		})
		for _, p := range section.Paragraphs {
			blocks = append(blocks, content.Block{
				ID:      next(),
				Type:    content.Paragraph,
				Content: p,
			})
		}
		for _, b := range section.Bullets {
			blocks = append(blocks, content.Block{
				ID:      next(),
				Type:    content.BulletedListItem,
				Content: b,
			})
		}
		for _, card := range section.Cards {
			blocks = append(blocks,
				content.Block{ID: next(), Type: content.Heading3, Content: card.Title},
				content.Block{ID: next(), Type: content.Paragraph, Content: card.Description},
			)
		}
	}

	return AboutPage{
		ID:         "fallback-about",
		Title:      f.About.Title,
		SubtitleAR: f.About.SubtitleAR,
		Content:    blocks,
	}
}

func fallbackServices() []Service {
	f := loadFallback()
	services := make([]Service, 0, len(f.Services))
	for i, s := range f.Services {
		services = append(services, Service{
			ID:           fmt.Sprintf("fallback-service-%d", i+1),
			NameEN:       s.NameEN,
			NameAR:       s.NameAR,
			Description:  s.Description,
			PriceDisplay: s.PriceDisplay,
			PriceNote:    s.PriceNote,
			Icon:         s.Icon,
			Order:        i + 1,
		})
	}
	return services
}
