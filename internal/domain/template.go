package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a normalized color, each channel in 0..1.
type RGB struct {
	R, G, B float64
}

// Palette is a template's four-color scheme.
type Palette struct {
	Primary    RGB
	Secondary  RGB
	Text       RGB
	Background RGB
}

// Template is a named visual theme for the card document. The catalog is
// fixed at build time and shared read-only by all requests.
type Template struct {
	ID          string
	Name        string
	Description string
	Colors      Palette
}

var templates = []Template{
	{
		ID:          "modern-blue",
		Name:        "Modern Blue",
		Description: "Clean and professional design with blue accents",
		Colors:      palette("#2563eb", "#dbeafe"),
	},
	{
		ID:          "elegant-purple",
		Name:        "Elegant Purple",
		Description: "Sophisticated purple theme for creative professionals",
		Colors:      palette("#7c3aed", "#ede9fe"),
	},
	{
		ID:          "professional-green",
		Name:        "Professional Green",
		Description: "Fresh nature-inspired design for growth businesses",
		Colors:      palette("#059669", "#d1fae5"),
	},
	{
		ID:          "creative-orange",
		Name:        "Creative Orange",
		Description: "Bold and energetic design that stands out",
		Colors:      palette("#ea580c", "#fed7aa"),
	},
	{
		ID:          "minimal-black",
		Name:        "Minimal Black",
		Description: "Sleek monochrome style for modern minimalism",
		Colors:      palette("#0f172a", "#e2e8f0"),
	},
	{
		ID:          "vibrant-pink",
		Name:        "Vibrant Pink",
		Description: "Playful and vibrant design for personal brands",
		Colors:      palette("#db2777", "#fce7f3"),
	},
}

// TemplateByID looks up a template from the catalog. Unknown ids fail; the
// caller decides whether that is fatal.
func TemplateByID(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("template not found: %s", id)
}

// Templates returns a copy of the catalog in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// All catalog entries share the same text and background colors.
func palette(primary, secondary string) Palette {
	return Palette{
		Primary:    HexToRGB(primary),
		Secondary:  HexToRGB(secondary),
		Text:       HexToRGB("#1e293b"),
		Background: HexToRGB("#ffffff"),
	}
}

// HexToRGB converts a "#rrggbb" string to a normalized triple, two hex digits
// per channel divided by 255. Malformed input maps to black.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}
