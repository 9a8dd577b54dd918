package content

import "testing"

func TestParseBlockType(t *testing.T) {
	tests := []struct {
		in   string
		want BlockType
	}{
		{"paragraph", Paragraph},
		{"heading_2", Heading2},
		{"bulleted_list_item", BulletedListItem},
		{"code", Code},
		{"toggle", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := ParseBlockType(tt.in); got != tt.want {
			t.Errorf("ParseBlockType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlainTextPrefersRichText(t *testing.T) {
	b := Block{
		Content:  "fallback",
		RichText: []RichTextItem{{Text: "Hello "}, {Text: "world", Bold: true}},
	}
	if got := b.PlainText(); got != "Hello world" {
		t.Errorf("PlainText = %q, want %q", got, "Hello world")
	}

	plain := Block{Content: "fallback"}
	if got := plain.PlainText(); got != "fallback" {
		t.Errorf("PlainText = %q, want %q", got, "fallback")
	}
}

func TestIsEmptyParagraph(t *testing.T) {
	tests := []struct {
		name string
		b    Block
		want bool
	}{
		{"empty paragraph", Block{Type: Paragraph}, true},
		{"whitespace paragraph", Block{Type: Paragraph, Content: "  \t"}, false},
		{"paragraph with rich text", Block{Type: Paragraph, RichText: []RichTextItem{{Text: "hi"}}}, false},
		{"text paragraph", Block{Type: Paragraph, Content: "hi"}, false},
		{"empty heading", Block{Type: Heading2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.IsEmptyParagraph(); got != tt.want {
				t.Errorf("IsEmptyParagraph = %v, want %v", got, tt.want)
			}
		})
	}
}
