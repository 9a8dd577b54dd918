package blocks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Usmansagemode/imam-shamsan/content"
)

func render(t *testing.T, blks []content.Block) string {
	t.Helper()
	var buf bytes.Buffer
	RenderBlocks(&buf, blks)
	return buf.String()
}

func TestRenderParagraph(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "p1", Type: content.Paragraph, Content: "Hello <world>"},
	})
	want := `<p id="b-p1" class="leading-relaxed">Hello &lt;world&gt;</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyParagraphSpacer(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "p1", Type: content.Paragraph},
	})
	want := `<div id="b-p1" class="h-4"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderArabicParagraph(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "p1", Type: content.Paragraph, Content: "بسم الله"},
	})
	if !strings.Contains(got, `dir="rtl"`) {
		t.Errorf("got %q, want dir=rtl", got)
	}
	if !strings.Contains(got, "font-arabic") {
		t.Errorf("got %q, want font-arabic class", got)
	}
}

func TestRenderArabicHeadingTiers(t *testing.T) {
	tests := []struct {
		typ  content.BlockType
		want string
	}{
		{content.Heading1, "font-arabic-h2"},
		{content.Heading2, "font-arabic-h3"},
		{content.Heading3, "font-arabic-h4"},
	}
	for _, tt := range tests {
		got := render(t, []content.Block{{ID: "h", Type: tt.typ, Content: "العنوان"}})
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s: got %q, want class %q", tt.typ, got, tt.want)
		}
	}
}

func TestRenderGroupsConsecutiveListItems(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "l1", Type: content.BulletedListItem, Content: "one"},
		{ID: "l2", Type: content.BulletedListItem, Content: "two"},
		{ID: "p1", Type: content.Paragraph, Content: "break"},
		{ID: "l3", Type: content.BulletedListItem, Content: "three"},
	})

	if n := strings.Count(got, "<ul"); n != 2 {
		t.Errorf("ul count = %d, want 2: %q", n, got)
	}
	if n := strings.Count(got, "<li"); n != 3 {
		t.Errorf("li count = %d, want 3: %q", n, got)
	}
	if !strings.Contains(got, `<ul id="b-l1"`) {
		t.Errorf("got %q, want first group keyed by first item", got)
	}
	if !strings.Contains(got, `<ul id="b-l3"`) {
		t.Errorf("got %q, want second group keyed by its first item", got)
	}
}

func TestRenderSwitchesListKinds(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "l1", Type: content.BulletedListItem, Content: "bullet"},
		{ID: "l2", Type: content.NumberedListItem, Content: "number"},
	})

	ulClose := strings.Index(got, "</ul>")
	olOpen := strings.Index(got, "<ol")
	if ulClose == -1 || olOpen == -1 || ulClose > olOpen {
		t.Errorf("got %q, want ul closed before ol opens", got)
	}
	if !strings.Contains(got, "list-decimal") {
		t.Errorf("got %q, want list-decimal class", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	blks := []content.Block{
		{ID: "h1", Type: content.Heading2, Content: "Title"},
		{ID: "l1", Type: content.BulletedListItem, Content: "one"},
		{ID: "l2", Type: content.BulletedListItem, Content: "two"},
		{ID: "q1", Type: content.Quote, Content: "wisdom"},
	}
	first := render(t, blks)
	for i := 0; i < 5; i++ {
		if got := render(t, blks); got != first {
			t.Fatalf("render %d = %q, want %q", i, got, first)
		}
	}
}

func TestRenderCode(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "c1", Type: content.Code, Content: "x := <1>", CodeLanguage: "go"},
	})
	if !strings.Contains(got, `<span class="code-lang code-lang-go">go</span>`) {
		t.Errorf("got %q, want language badge", got)
	}
	if !strings.Contains(got, `<code class="language-go">x := &lt;1&gt;</code>`) {
		t.Errorf("got %q, want escaped code content", got)
	}
}

func TestRenderCodePlainTextHasNoBadge(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "c1", Type: content.Code, Content: "hello", CodeLanguage: "plain text"},
	})
	want := `<pre id="b-c1" class="code-block"><code>hello</code></pre>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCallout(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "c1", Type: content.Callout, Content: "Note this", Icon: "💡"},
	})
	if !strings.Contains(got, `<span class="callout-icon">💡</span>`) {
		t.Errorf("got %q, want icon span", got)
	}
	if !strings.Contains(got, `<div class="callout-body">Note this</div>`) {
		t.Errorf("got %q, want callout body", got)
	}
}

func TestRenderImage(t *testing.T) {
	got := render(t, []content.Block{
		{
			ID:       "i1",
			Type:     content.Image,
			ImageURL: "https://res.cloudinary.com/demo/image/upload/v1/pic.jpg",
			Caption:  "A caption",
		},
	})
	if !strings.Contains(got, "<figure") || !strings.Contains(got, "<img") {
		t.Fatalf("got %q, want figure with img", got)
	}
	if !strings.Contains(got, "w_1200,h_800,c_fill") {
		t.Errorf("got %q, want hero transform applied", got)
	}
	if !strings.Contains(got, "srcset=") {
		t.Errorf("got %q, want srcset", got)
	}
	if !strings.Contains(got, "<figcaption") {
		t.Errorf("got %q, want figcaption", got)
	}
}

func TestRenderImageWithoutURLRendersNothing(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "i1", Type: content.Image, Caption: "orphan caption"},
	})
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderEmbedPrefersYouTubeEmbedURL(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "v1", Type: content.Video, Content: "https://youtu.be/abc123"},
	})
	if !strings.Contains(got, `src="https://www.youtube.com/embed/abc123"`) {
		t.Errorf("got %q, want youtube embed URL", got)
	}
	if !strings.Contains(got, "aspect-video") {
		t.Errorf("got %q, want aspect-video container", got)
	}
}

func TestRenderEmbedNonYouTubeKeepsURL(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "e1", Type: content.Embed, Content: "https://example.com/widget"},
	})
	if !strings.Contains(got, `src="https://example.com/widget"`) {
		t.Errorf("got %q, want raw embed URL", got)
	}
}

func TestRenderEmbedRejectsUnsafeScheme(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "e1", Type: content.Embed, Content: "javascript:alert(1)"},
	})
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderBookmark(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "b1", Type: content.Bookmark, Content: "https://example.com/read"},
	})
	if !strings.Contains(got, `class="bookmark-card"`) {
		t.Errorf("got %q, want bookmark card", got)
	}
	if !strings.Contains(got, `target="_blank" rel="noopener noreferrer"`) {
		t.Errorf("got %q, want new-tab attributes", got)
	}
}

func TestRenderDivider(t *testing.T) {
	got := render(t, []content.Block{{ID: "d1", Type: content.Divider}})
	want := `<hr id="b-d1" class="content-divider"/>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderUnknownFallsBackToParagraph(t *testing.T) {
	got := render(t, []content.Block{
		{ID: "u1", Type: content.Unknown, Content: "mystery text"},
	})
	if !strings.Contains(got, "mystery text") || !strings.HasPrefix(got, "<p") {
		t.Errorf("got %q, want paragraph fallback", got)
	}

	empty := render(t, []content.Block{{ID: "u2", Type: content.Unknown}})
	if empty != "" {
		t.Errorf("got %q, want empty for contentless unknown", empty)
	}

	// Rich text without plain content does not resurrect an unknown
	// block.
	richOnly := render(t, []content.Block{{
		ID:       "u3",
		Type:     content.Unknown,
		RichText: []content.RichTextItem{{Text: "stray"}},
	}})
	if richOnly != "" {
		t.Errorf("got %q, want empty for unknown without content", richOnly)
	}
}
