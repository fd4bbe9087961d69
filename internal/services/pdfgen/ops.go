package pdfgen

import "click2card/internal/domain"

// Draw ops form an ordered display list in page coordinates: points, origin
// top-left, y increasing downward. Compose builds the list, Render replays
// it in a single pass. Layout logic stays assertable without a renderer.

// FontStyle selects a weight of the page's core font.
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

// Op is one drawing instruction.
type Op interface{ isOp() }

// RectOp fills an axis-aligned rectangle.
type RectOp struct {
	X, Y, W, H float64
	Color      domain.RGB
	Alpha      float64 // 1 = opaque
}

// CircleOp draws a circle, filled and/or stroked.
type CircleOp struct {
	CX, CY, R   float64
	Fill        *domain.RGB
	Alpha       float64
	Border      *domain.RGB
	BorderWidth float64
}

// TextOp draws a single text run with its baseline origin at (X, Y).
type TextOp struct {
	X, Y  float64
	Text  string
	Style FontStyle
	Size  float64
	Color domain.RGB
}

// ImageOp blits raster data into the given box.
type ImageOp struct {
	X, Y, W, H float64
	Format     string // "PNG" or "JPG"
	Data       []byte
}

// LinkOp overlays a clickable link annotation on the given box.
type LinkOp struct {
	X, Y, W, H float64
	URL        string
}

func (RectOp) isOp()   {}
func (CircleOp) isOp() {}
func (TextOp) isOp()   {}
func (ImageOp) isOp()  {}
func (LinkOp) isOp()   {}

// TextMeasurer reports the rendered width of a text run, for the manual
// centering math. The production implementation uses the renderer's core
// font metrics; tests substitute a deterministic fake.
type TextMeasurer interface {
	Width(text string, style FontStyle, size float64) float64
}
