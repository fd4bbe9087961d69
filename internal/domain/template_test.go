package domain

import (
	"math"
	"testing"
)

func TestTemplateCatalogLookup(t *testing.T) {
	ids := []string{
		"modern-blue", "elegant-purple", "professional-green",
		"creative-orange", "minimal-black", "vibrant-pink",
	}
	for _, id := range ids {
		tpl, err := TemplateByID(id)
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		if tpl.ID != id || tpl.Name == "" {
			t.Errorf("%s: incomplete template %+v", id, tpl)
		}
	}
	if len(Templates()) != len(ids) {
		t.Errorf("catalog size = %d, want %d", len(Templates()), len(ids))
	}
}

func TestTemplateByIDUnknown(t *testing.T) {
	if _, err := TemplateByID("neon-teal"); err == nil {
		t.Fatal("expected unknown id to fail")
	}
}

func TestHexToRGB(t *testing.T) {
	almostEqual := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	c := HexToRGB("#2563eb")
	if !almostEqual(c.R, float64(0x25)/255) || !almostEqual(c.G, float64(0x63)/255) || !almostEqual(c.B, float64(0xeb)/255) {
		t.Errorf("unexpected channels: %+v", c)
	}

	if HexToRGB("ffffff") != (RGB{R: 1, G: 1, B: 1}) {
		t.Error("expected bare hex without # to parse")
	}

	// Malformed input maps to black rather than failing.
	for _, in := range []string{"", "#fff", "#zzzzzz", "#1234567"} {
		if HexToRGB(in) != (RGB{}) {
			t.Errorf("HexToRGB(%q) should be black", in)
		}
	}
}
