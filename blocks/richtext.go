package blocks

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Usmansagemode/imam-shamsan/content"
)

// RichText returns a templ.Component rendering the runs in order, one
// span per run.
func RichText(items []content.RichTextItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		for _, item := range items {
			buf.WriteString(RichTextSpan(item))
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RichTextSpan renders one inline run. Formatting nests in a fixed
// order regardless of how the flags were set: the link wraps
// everything, then bold, italic, underline, strikethrough, with inline
// code innermost around the text.
func RichTextSpan(item content.RichTextItem) string {
	s := html.EscapeString(item.Text)
	if item.Code {
		s = `<code class="inline-code">` + s + "</code>"
	}
	if item.Strikethrough {
		s = "<s>" + s + "</s>"
	}
	if item.Underline {
		s = "<u>" + s + "</u>"
	}
	if item.Italic {
		s = "<em>" + s + "</em>"
	}
	if item.Bold {
		s = "<strong>" + s + "</strong>"
	}
	if item.Href != "" {
		if href := safeURL(item.Href); href != "" {
			s = `<a href="` + href + `" class="content-link" target="_blank" rel="noopener noreferrer">` + s + "</a>"
		}
	}
	if item.Color != "" {
		return `<span class="text-` + html.EscapeString(item.Color) + `">` + s + "</span>"
	}
	return "<span>" + s + "</span>"
}
