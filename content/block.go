// Package content defines the typed content-block model shared by every
// page sourced from the CMS, along with the pure transformations applied
// to a block sequence before rendering: Arabic script detection, section
// segmentation, and card-pattern extraction.
package content

import "strings"

// BlockType discriminates the closed set of content block variants.
type BlockType string

const (
	Paragraph        BlockType = "paragraph"
	Heading1         BlockType = "heading_1"
	Heading2         BlockType = "heading_2"
	Heading3         BlockType = "heading_3"
	BulletedListItem BlockType = "bulleted_list_item"
	NumberedListItem BlockType = "numbered_list_item"
	Quote            BlockType = "quote"
	Callout          BlockType = "callout"
	Code             BlockType = "code"
	Image            BlockType = "image"
	Divider          BlockType = "divider"
	Embed            BlockType = "embed"
	Video            BlockType = "video"
	Bookmark         BlockType = "bookmark"
	Unknown          BlockType = "unknown"
)

// ParseBlockType maps a raw type string onto the closed BlockType set.
// Anything unrecognized becomes Unknown rather than an open string, so
// rendering of unexpected CMS block types goes through one code path.
func ParseBlockType(s string) BlockType {
	switch t := BlockType(s); t {
	case Paragraph, Heading1, Heading2, Heading3, BulletedListItem,
		NumberedListItem, Quote, Callout, Code, Image, Divider,
		Embed, Video, Bookmark:
		return t
	}
	return Unknown
}

// RichTextItem is one inline text run. The formatting flags are
// independent and freely combinable; Color is empty for the default
// color and Href, when set, wraps the run in a link.
type RichTextItem struct {
	Text          string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
	Color         string
	Href          string
}

// Block is the universal unit of document content. Content is the
// plain-text fallback; when RichText is non-empty it is authoritative
// for rendering. The remaining fields are only meaningful for specific
// types (ImageURL/Caption for images, CodeLanguage for code, Icon for
// callouts).
type Block struct {
	ID           string
	Type         BlockType
	Content      string
	RichText     []RichTextItem
	ImageURL     string
	Caption      string
	CodeLanguage string
	Icon         string
}

// PlainText returns the block's text: the concatenation of its rich
// text runs, or Content when no rich text is present.
func (b Block) PlainText() string {
	if len(b.RichText) == 0 {
		return b.Content
	}
	var sb strings.Builder
	for _, item := range b.RichText {
		sb.WriteString(item.Text)
	}
	return sb.String()
}

// IsEmptyParagraph reports whether b is a paragraph with no text at all.
// Empty paragraphs render as spacers, not nothing.
func (b Block) IsEmptyParagraph() bool {
	return b.Type == Paragraph && b.Content == "" && len(b.RichText) == 0
}
