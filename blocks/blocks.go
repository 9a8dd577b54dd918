// Package blocks renders a content.Block sequence to HTML as a templ
// component. Consecutive list items are grouped into list containers,
// Arabic blocks get right-to-left direction and Arabic font classes, and
// blocks with missing required fields render nothing rather than failing
// the whole document.
package blocks

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/Usmansagemode/imam-shamsan/content"
	"github.com/Usmansagemode/imam-shamsan/media"
)

// Render returns a templ.Component that renders blks as HTML.
func Render(blks []content.Block) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderBlocks(&buf, blks)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderBlocks writes the HTML for blks to buf. Output is a pure
// function of the input sequence.
func RenderBlocks(buf *bytes.Buffer, blks []content.Block) {
	inBulleted := false
	inNumbered := false

	flushBulleted := func() {
		if inBulleted {
			buf.WriteString("</ul>")
			inBulleted = false
		}
	}
	flushNumbered := func() {
		if inNumbered {
			buf.WriteString("</ol>")
			inNumbered = false
		}
	}

	for _, b := range blks {
		switch b.Type {
		case content.BulletedListItem:
			flushNumbered()
			if !inBulleted {
				buf.WriteString(`<ul id="` + blockID(b) + `" class="content-list list-disc">`)
				inBulleted = true
			}
			writeListItem(buf, b)
		case content.NumberedListItem:
			flushBulleted()
			if !inNumbered {
				buf.WriteString(`<ol id="` + blockID(b) + `" class="content-list list-decimal">`)
				inNumbered = true
			}
			writeListItem(buf, b)
		default:
			flushBulleted()
			flushNumbered()
			writeBlock(buf, b)
		}
	}
	flushBulleted()
	flushNumbered()
}

// blockID derives the stable element id for a block.
func blockID(b content.Block) string {
	return "b-" + html.EscapeString(b.ID)
}

// arabicClass picks the Arabic font tier for a right-to-left block.
// Headings get their own tiers so Arabic headlines keep their scale.
func arabicClass(b content.Block) string {
	if !b.IsRTL() {
		return ""
	}
	switch b.Type {
	case content.Heading1:
		return "font-arabic-h2"
	case content.Heading2:
		return "font-arabic-h3"
	case content.Heading3:
		return "font-arabic-h4"
	default:
		return "font-arabic"
	}
}

// openTag writes `<tag id="..." class="..." dir="rtl">` with the Arabic
// class appended when the block reads right-to-left.
func openTag(buf *bytes.Buffer, tag string, b content.Block, class string) {
	buf.WriteString("<" + tag + ` id="` + blockID(b) + `"`)
	if ac := arabicClass(b); ac != "" {
		if class != "" {
			class += " "
		}
		class += ac
	}
	if class != "" {
		buf.WriteString(` class="` + class + `"`)
	}
	if b.IsRTL() {
		buf.WriteString(` dir="rtl"`)
	}
	buf.WriteString(">")
}

func writeListItem(buf *bytes.Buffer, b content.Block) {
	buf.WriteString("<li")
	if ac := arabicClass(b); ac != "" {
		buf.WriteString(` class="` + ac + `"`)
	}
	if b.IsRTL() {
		buf.WriteString(` dir="rtl"`)
	}
	buf.WriteString(">")
	writeRichContent(buf, b)
	buf.WriteString("</li>")
}

// writeRichContent writes the block's rich text runs, or its escaped
// plain content when no rich text is present.
func writeRichContent(buf *bytes.Buffer, b content.Block) {
	if len(b.RichText) == 0 {
		buf.WriteString(html.EscapeString(b.Content))
		return
	}
	for _, item := range b.RichText {
		buf.WriteString(RichTextSpan(item))
	}
}

func writeBlock(buf *bytes.Buffer, b content.Block) {
	switch b.Type {
	case content.Paragraph:
		if b.IsEmptyParagraph() {
			buf.WriteString(`<div id="` + blockID(b) + `" class="h-4"></div>`)
			return
		}
		openTag(buf, "p", b, "leading-relaxed")
		writeRichContent(buf, b)
		buf.WriteString("</p>")

	case content.Heading1:
		openTag(buf, "h1", b, "content-h1")
		writeRichContent(buf, b)
		buf.WriteString("</h1>")

	case content.Heading2:
		openTag(buf, "h2", b, "content-h2")
		writeRichContent(buf, b)
		buf.WriteString("</h2>")

	case content.Heading3:
		openTag(buf, "h3", b, "content-h3")
		writeRichContent(buf, b)
		buf.WriteString("</h3>")

	case content.Quote:
		openTag(buf, "blockquote", b, "content-quote")
		writeRichContent(buf, b)
		buf.WriteString("</blockquote>")

	case content.Callout:
		openTag(buf, "div", b, "content-callout")
		if b.Icon != "" {
			buf.WriteString(`<span class="callout-icon">` + html.EscapeString(b.Icon) + "</span>")
		}
		buf.WriteString(`<div class="callout-body">`)
		writeRichContent(buf, b)
		buf.WriteString("</div></div>")

	case content.Code:
		writeCode(buf, b)

	case content.Image:
		writeImage(buf, b)

	case content.Divider:
		buf.WriteString(`<hr id="` + blockID(b) + `" class="content-divider"/>`)

	case content.Embed, content.Video:
		writeEmbed(buf, b)

	case content.Bookmark:
		writeBookmark(buf, b)

	default:
		// Unknown types degrade to plain paragraph text when Content
		// is set, and disappear otherwise.
		if b.Content == "" {
			return
		}
		openTag(buf, "p", b, "leading-relaxed")
		writeRichContent(buf, b)
		buf.WriteString("</p>")
	}
}

// writeCode emits a preformatted block. Code always uses Content
// verbatim, never rich text. Named languages get the badge wrapper.
func writeCode(buf *bytes.Buffer, b content.Block) {
	lang := strings.TrimSpace(b.CodeLanguage)
	badged := lang != "" && lang != "plain text"
	if badged {
		escapedLang := html.EscapeString(lang)
		buf.WriteString(`<div id="` + blockID(b) + `" class="code-block-wrapper">`)
		buf.WriteString(`<span class="code-lang code-lang-` + escapedLang + `">` + escapedLang + "</span>")
		buf.WriteString(`<pre class="code-block"><code class="language-` + escapedLang + `">`)
	} else {
		buf.WriteString(`<pre id="` + blockID(b) + `" class="code-block"><code>`)
	}
	buf.WriteString(html.EscapeString(b.Content))
	buf.WriteString("</code></pre>")
	if badged {
		buf.WriteString("</div>")
	}
}

func writeImage(buf *bytes.Buffer, b content.Block) {
	if b.ImageURL == "" {
		return
	}
	src := safeURL(media.ResolveImageURL(b.ImageURL, media.PresetHero))
	if src == "" {
		return
	}
	alt := html.EscapeString(b.Caption)
	buf.WriteString(`<figure id="` + blockID(b) + `" class="content-figure">`)
	buf.WriteString(`<img src="` + src + `"`)
	if srcset := media.SrcSet(b.ImageURL, media.PresetHero); srcset != "" {
		buf.WriteString(` srcset="` + html.EscapeString(srcset) + `"`)
	}
	buf.WriteString(` alt="` + alt + `" loading="lazy" decoding="async"/>`)
	if b.Caption != "" {
		buf.WriteString(`<figcaption class="content-caption"`)
		if content.ContainsArabic(b.Caption) {
			buf.WriteString(` dir="rtl"`)
		}
		buf.WriteString(">" + alt + "</figcaption>")
	}
	buf.WriteString("</figure>")
}

func writeEmbed(buf *bytes.Buffer, b content.Block) {
	if b.Content == "" {
		return
	}
	src := media.EmbedURL(b.Content)
	if src == "" {
		src = safeURL(b.Content)
	}
	if src == "" {
		return
	}
	buf.WriteString(`<div id="` + blockID(b) + `" class="content-embed aspect-video">`)
	buf.WriteString(`<iframe src="` + src + `" title="Embedded content" ` +
		`allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" ` +
		`allowfullscreen></iframe>`)
	buf.WriteString("</div>")
}

func writeBookmark(buf *bytes.Buffer, b content.Block) {
	if b.Content == "" {
		return
	}
	href := safeURL(b.Content)
	if href == "" {
		return
	}
	buf.WriteString(`<a id="` + blockID(b) + `" class="bookmark-card" href="` + href + `" ` +
		`target="_blank" rel="noopener noreferrer">` + html.EscapeString(b.Content) + "</a>")
}

// safeURL validates and escapes a URL for use in an HTML attribute.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
