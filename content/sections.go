package content

import "strings"

// Section groups the blocks that follow a heading_2 up to the next
// heading_2 or the end of the document.
type Section struct {
	Heading Block
	Blocks  []Block
}

// SplitSections splits a flat block sequence on heading_2 boundaries.
// Blocks before the first heading_2 form the intro, which may be empty.
// Sections keep their encounter order.
func SplitSections(blocks []Block) (intro []Block, sections []Section) {
	var current *Section
	for _, b := range blocks {
		switch {
		case b.Type == Heading2:
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Heading: b}
		case current != nil:
			current.Blocks = append(current.Blocks, b)
		default:
			intro = append(intro, b)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return intro, sections
}

// Card is a heading_3 title plus the body blocks that follow it.
type Card struct {
	Title       string
	Description []Block
}

// ExtractCards checks whether a section body is a strict alternation of
// heading_3 titles and non-empty bodies, and returns the cards if so.
// Whitespace-only paragraphs are ignored before matching. Any deviation
// from the pattern (body before the first heading, a heading with no
// body, fewer than two cards) rejects the whole section and returns nil,
// signaling the caller to fall back to plain section rendering.
func ExtractCards(blocks []Block) []Card {
	meaningful := blocks[:0:0]
	for _, b := range blocks {
		if b.Type == Paragraph && strings.TrimSpace(b.PlainText()) == "" {
			continue
		}
		meaningful = append(meaningful, b)
	}

	if len(meaningful) < 2 {
		return nil
	}

	var cards []Card
	i := 0
	for i < len(meaningful) {
		if meaningful[i].Type != Heading3 {
			return nil
		}
		card := Card{Title: meaningful[i].PlainText()}
		i++
		for i < len(meaningful) && meaningful[i].Type != Heading3 {
			card.Description = append(card.Description, meaningful[i])
			i++
		}
		if len(card.Description) == 0 {
			return nil
		}
		cards = append(cards, card)
	}

	if len(cards) < 2 {
		return nil
	}
	return cards
}

// CompactRule decides whether a card list reads as a compact grid or as
// full-width stacked blocks. The thresholds are presentation tuning, not
// structural invariants, so they stay adjustable.
type CompactRule struct {
	MaxAvgChars int
	MaxCards    int
}

// DefaultCompactRule matches the production layout: short descriptions
// in a grid, at most four cards across.
var DefaultCompactRule = CompactRule{MaxAvgChars: 120, MaxCards: 4}

// Compact reports whether cards should render as a grid under r. It is
// a pure function of the card list.
func (r CompactRule) Compact(cards []Card) bool {
	if len(cards) == 0 || len(cards) > r.MaxCards {
		return false
	}
	total := 0
	for _, c := range cards {
		parts := make([]string, 0, len(c.Description))
		for _, b := range c.Description {
			parts = append(parts, b.PlainText())
		}
		total += len(strings.Join(parts, " "))
	}
	return total/len(cards) < r.MaxAvgChars
}

// IsCompact applies DefaultCompactRule.
func IsCompact(cards []Card) bool {
	return DefaultCompactRule.Compact(cards)
}
