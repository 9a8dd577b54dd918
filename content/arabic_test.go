package content

import "testing"

func TestContainsArabic(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"arabic", "مرحبا بالعالم", true},
		{"english", "Hello world", false},
		{"mixed", "Surah البقرة", true},
		{"empty", "", false},
		{"digits and punctuation", "123 !?", false},
		{"presentation forms", "ﭐ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsArabic(tt.in); got != tt.want {
				t.Errorf("ContainsArabic(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlockIsRTL(t *testing.T) {
	arabic := Block{Type: Paragraph, Content: "السلام عليكم"}
	if !arabic.IsRTL() {
		t.Errorf("IsRTL = false for arabic block, want true")
	}

	english := Block{Type: Paragraph, Content: "Peace be upon you"}
	if english.IsRTL() {
		t.Errorf("IsRTL = true for english block, want false")
	}

	richArabic := Block{
		Type:     Paragraph,
		RichText: []RichTextItem{{Text: "قال "}, {Text: "النبي", Bold: true}},
	}
	if !richArabic.IsRTL() {
		t.Errorf("IsRTL = false for arabic rich text, want true")
	}
}
