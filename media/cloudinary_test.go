package media

import (
	"strings"
	"testing"
)

const rawCloudinary = "https://res.cloudinary.com/demo/image/upload/v1234/profile/imam.jpg"

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		preset Preset
		want   string
	}{
		{
			name:   "thumbnail preset",
			in:     rawCloudinary,
			preset: PresetThumbnail,
			want:   "https://res.cloudinary.com/demo/image/upload/w_400,h_300,c_fill,q_auto,f_auto/v1234/profile/imam.jpg",
		},
		{
			name:   "width only preset",
			in:     "https://res.cloudinary.com/demo/image/upload/gallery/eid.jpg",
			preset: PresetGalleryFull,
			want:   "https://res.cloudinary.com/demo/image/upload/w_1400,q_auto,f_auto/gallery/eid.jpg",
		},
		{
			name:   "existing transforms replaced",
			in:     "https://res.cloudinary.com/demo/image/upload/w_100,h_100,c_fill/v1234/profile/imam.jpg",
			preset: PresetCard,
			want:   "https://res.cloudinary.com/demo/image/upload/w_600,h_400,c_fill,q_auto,f_auto/v1234/profile/imam.jpg",
		},
		{
			name:   "non-cloudinary passthrough",
			in:     "https://example.com/photo.jpg",
			preset: PresetHero,
			want:   "https://example.com/photo.jpg",
		},
		{
			name:   "empty passthrough",
			in:     "",
			preset: PresetHero,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveImageURL(tt.in, tt.preset); got != tt.want {
				t.Errorf("ResolveImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveImageURLIdempotent(t *testing.T) {
	once := ResolveImageURL(rawCloudinary, PresetHero)
	twice := ResolveImageURL(once, PresetHero)
	if once != twice {
		t.Errorf("second resolve = %q, want %q", twice, once)
	}
}

func TestSrcSet(t *testing.T) {
	got := SrcSet(rawCloudinary, PresetCard)

	parts := strings.Split(got, ", ")
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3: %q", len(parts), got)
	}
	for i, wantW := range []string{"300w", "600w", "900w"} {
		if !strings.HasSuffix(parts[i], " "+wantW) {
			t.Errorf("parts[%d] = %q, want suffix %q", i, parts[i], wantW)
		}
	}
	if !strings.Contains(parts[0], "w_300,h_200") {
		t.Errorf("parts[0] = %q, want scaled-down dimensions", parts[0])
	}
}

func TestSrcSetNonCloudinary(t *testing.T) {
	if got := SrcSet("https://example.com/photo.jpg", PresetCard); got != "" {
		t.Errorf("SrcSet = %q, want empty", got)
	}
}

func TestBlurPlaceholder(t *testing.T) {
	got := BlurPlaceholder(rawCloudinary)
	if !strings.Contains(got, "e_blur:1000") || !strings.Contains(got, "w_50,h_50") {
		t.Errorf("BlurPlaceholder = %q, want blur transform", got)
	}

	plain := "https://example.com/photo.jpg"
	if got := BlurPlaceholder(plain); got != plain {
		t.Errorf("BlurPlaceholder passthrough = %q, want %q", got, plain)
	}
}
