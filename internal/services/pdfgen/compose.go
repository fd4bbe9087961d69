package pdfgen

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"click2card/internal/domain"
)

// Page geometry in points, portrait card page.
const (
	pageWidth  = 400.0
	pageHeight = 600.0
	margin     = 30.0

	photoCY   = 120.0 // photo center, measured from the top edge
	photoSize = 100.0

	buttonTop     = 384.0
	buttonHeight  = 36.0
	buttonSpacing = 8.0

	qrSize   = 70.0
	qrInset  = 15.0
	qrTextSz = 8.0
)

const bioText = "Professional digital business card with instant contact sharing."

var (
	white   = domain.RGB{R: 1, G: 1, B: 1}
	gray    = domain.RGB{R: 0.5, G: 0.5, B: 0.5}
	dimGray = domain.RGB{R: 0.4, G: 0.4, B: 0.4}
)

// GenerationError marks a document that could not be produced at all. No
// partial output accompanies it.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generate card document: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// Composer lays out and renders card documents. Safe for concurrent use;
// each call works on its own display list.
type Composer struct {
	measure TextMeasurer
}

// New returns a Composer measuring text with the renderer's font metrics.
func New() *Composer {
	return &Composer{measure: coreFontMeasurer{}}
}

// NewWithMeasurer is for tests that assert on the op list without rendering.
func NewWithMeasurer(m TextMeasurer) *Composer {
	return &Composer{measure: m}
}

// Compose renders the full card PDF, embedding qrPNG in the bottom-right
// corner. An unknown template id fails outright; a photo that will not
// decode degrades to the placeholder circle.
func (c *Composer) Compose(card domain.BusinessCard, qrPNG []byte) ([]byte, error) {
	ops, err := c.Layout(card, qrPNG)
	if err != nil {
		return nil, err
	}
	out, err := render(ops)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return out, nil
}

// Layout builds the display list top to bottom: decorative bands and
// circles, photo, name, business label, bio, contact buttons, QR code.
func (c *Composer) Layout(card domain.BusinessCard, qrPNG []byte) ([]Op, error) {
	tpl, err := domain.TemplateByID(card.TemplateID)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	primary := tpl.Colors.Primary
	secondary := tpl.Colors.Secondary

	ops := []Op{
		// Translucent bands, solid accent strips, off-canvas circles.
		RectOp{X: 0, Y: 0, W: pageWidth, H: 150, Color: primary, Alpha: 0.1},
		RectOp{X: 0, Y: pageHeight - 120, W: pageWidth, H: 120, Color: secondary, Alpha: 0.1},
		RectOp{X: 0, Y: 0, W: pageWidth, H: 10, Color: primary, Alpha: 1},
		RectOp{X: 0, Y: pageHeight - 10, W: pageWidth, H: 10, Color: secondary, Alpha: 1},
		CircleOp{CX: -30, CY: pageHeight / 2, R: 80, Fill: &primary, Alpha: 0.05},
		CircleOp{CX: pageWidth + 30, CY: pageHeight/2 + 100, R: 100, Fill: &secondary, Alpha: 0.05},
	}

	// Circular profile photo with a ring border, or a muted placeholder
	// when the photo is missing or corrupt.
	if ph, ok := decodePhoto(card.PhotoDataURL); ok {
		ops = append(ops,
			ImageOp{
				X: (pageWidth - photoSize) / 2, Y: photoCY - photoSize/2,
				W: photoSize, H: photoSize,
				Format: ph.format, Data: ph.data,
			},
			CircleOp{CX: pageWidth / 2, CY: photoCY, R: photoSize/2 + 3, Alpha: 1, Border: &primary, BorderWidth: 4},
		)
	} else {
		ops = append(ops, CircleOp{CX: pageWidth / 2, CY: photoCY, R: photoSize / 2, Fill: &primary, Alpha: 0.2})
	}

	// Name, centered and uppercased.
	nameY := photoCY + 80
	ops = append(ops, c.centered(strings.ToUpper(card.FullName), nameY, FontBold, 22, primary))

	// Business label.
	titleY := nameY + 22
	ops = append(ops, c.centered(card.BusinessName, titleY, FontRegular, 11, tpl.Colors.Text))

	// Bio sentence, greedy-wrapped and centered line by line.
	y := titleY + 35
	for _, line := range c.wrap(bioText, FontRegular, 9, pageWidth-2*margin) {
		ops = append(ops, c.centered(line, y, FontRegular, 9, gray))
		y += 14
	}

	// Contact buttons stack downward from a fixed anchor in priority order;
	// absent channels reserve no space.
	y = buttonTop
	for _, b := range contactButtons(card, primary, secondary) {
		ops = append(ops, c.buttonOps(b, y)...)
		y += buttonHeight + buttonSpacing
	}

	// QR code with caption, bottom right.
	if len(qrPNG) > 0 {
		qrX := pageWidth - qrSize - qrInset
		qrY := pageHeight - qrSize - qrInset
		ops = append(ops, ImageOp{X: qrX, Y: qrY, W: qrSize, H: qrSize, Format: "PNG", Data: qrPNG})
		label := "Scan Me"
		labelW := c.measure.Width(label, FontRegular, qrTextSz)
		ops = append(ops, TextOp{
			X: qrX + (qrSize-labelW)/2, Y: pageHeight - 8,
			Text: label, Style: FontRegular, Size: qrTextSz, Color: dimGray,
		})
	}

	return ops, nil
}

type button struct {
	label string
	link  string
	color domain.RGB
}

// contactButtons assembles the rows in fixed priority order: phone, email,
// website, WhatsApp, Instagram. Derived links strip user decoration (non
// digits for wa.me, a leading @ for instagram).
func contactButtons(card domain.BusinessCard, primary, secondary domain.RGB) []button {
	buttons := []button{
		{label: "Phone: " + card.Phone, link: "tel:" + card.Phone, color: primary},
		{label: "Email: " + card.Email, link: "mailto:" + card.Email, color: primary},
	}
	if card.Website != "" {
		buttons = append(buttons, button{label: "Website: " + card.Website, link: card.Website, color: secondary})
	}
	if card.WhatsApp != "" {
		buttons = append(buttons, button{
			label: "WhatsApp: " + card.WhatsApp,
			link:  "https://wa.me/" + digitsOnly(card.WhatsApp),
			color: secondary,
		})
	}
	if card.Instagram != "" {
		buttons = append(buttons, button{
			label: "Instagram: " + card.Instagram,
			link:  "https://instagram.com/" + strings.TrimPrefix(card.Instagram, "@"),
			color: secondary,
		})
	}
	return buttons
}

func (c *Composer) buttonOps(b button, top float64) []Op {
	w := pageWidth - 2*margin
	textW := c.measure.Width(b.label, FontRegular, 10)
	return []Op{
		RectOp{X: margin, Y: top, W: w, H: buttonHeight, Color: b.color, Alpha: 0.95},
		TextOp{
			X: margin + (w-textW)/2, Y: top + buttonHeight - 13,
			Text: b.label, Style: FontRegular, Size: 10, Color: white,
		},
		LinkOp{X: margin, Y: top, W: w, H: buttonHeight, URL: b.link},
	}
}

func (c *Composer) centered(text string, baseline float64, style FontStyle, size float64, color domain.RGB) TextOp {
	w := c.measure.Width(text, style, size)
	return TextOp{X: (pageWidth - w) / 2, Y: baseline, Text: text, Style: style, Size: size, Color: color}
}

// wrap breaks text into lines greedily: append the next word if it fits,
// otherwise start a new line.
func (c *Composer) wrap(text string, style FontStyle, size, maxWidth float64) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if c.measure.Width(candidate, style, size) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

type photo struct {
	format string
	data   []byte
}

// decodePhoto sniffs the image type from the data-URI MIME marker and
// confirms the payload actually decodes as an image. Anything questionable
// reports false so the caller can fall back to the placeholder.
func decodePhoto(dataURL string) (photo, bool) {
	if dataURL == "" {
		return photo{}, false
	}
	_, b64, ok := strings.Cut(dataURL, ",")
	if !ok {
		return photo{}, false
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return photo{}, false
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return photo{}, false
	}
	format := "JPG"
	if strings.Contains(dataURL, "image/png") {
		format = "PNG"
	}
	return photo{format: format, data: data}, true
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
