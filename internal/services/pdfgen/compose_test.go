package pdfgen

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"click2card/internal/domain"
)

// fixedMeasurer gives every rune a width proportional to the font size, so
// centering math is deterministic without a renderer.
type fixedMeasurer struct{}

func (fixedMeasurer) Width(text string, _ FontStyle, size float64) float64 {
	return float64(len(text)) * size * 0.5
}

func minimalCard() domain.BusinessCard {
	return domain.BusinessCard{
		FullName:     "Jane Doe",
		BusinessName: "Doe Designs",
		Phone:        "9876543210",
		Email:        "jane@doedesigns.in",
		TemplateID:   "modern-blue",
	}
}

func layout(t *testing.T, card domain.BusinessCard) []Op {
	t.Helper()
	ops, err := NewWithMeasurer(fixedMeasurer{}).Layout(card, []byte("fake-png"))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return ops
}

func TestLayoutUnknownTemplate(t *testing.T) {
	card := minimalCard()
	card.TemplateID = "neon-teal"

	_, err := NewWithMeasurer(fixedMeasurer{}).Layout(card, nil)
	if err == nil {
		t.Fatal("expected unknown template to fail")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
}

func TestLayoutNameCenteredAndUppercased(t *testing.T) {
	ops := layout(t, minimalCard())

	var name *TextOp
	for _, op := range ops {
		if o, ok := op.(TextOp); ok && o.Text == "JANE DOE" {
			name = &o
			break
		}
	}
	if name == nil {
		t.Fatal("expected uppercased name text op")
	}
	wantX := (pageWidth - fixedMeasurer{}.Width("JANE DOE", FontBold, 22)) / 2
	if name.X != wantX {
		t.Errorf("name x = %v, want %v", name.X, wantX)
	}
	if name.Style != FontBold || name.Size != 22 {
		t.Errorf("name font = %q/%v, want bold 22", name.Style, name.Size)
	}
}

func TestLayoutButtonOrderAndSpacing(t *testing.T) {
	card := minimalCard()
	card.Website = "https://doedesigns.in"
	card.WhatsApp = "+91 98765-43210"
	card.Instagram = "@doedesigns"

	var labels []string
	var tops []float64
	for _, op := range layout(t, card) {
		if o, ok := op.(RectOp); ok && o.H == buttonHeight && o.X == margin {
			tops = append(tops, o.Y)
		}
		if o, ok := op.(TextOp); ok && o.Color == white {
			labels = append(labels, o.Text)
		}
	}

	want := []string{
		"Phone: 9876543210",
		"Email: jane@doedesigns.in",
		"Website: https://doedesigns.in",
		"WhatsApp: +91 98765-43210",
		"Instagram: @doedesigns",
	}
	if len(labels) != len(want) {
		t.Fatalf("got %d buttons, want %d: %v", len(labels), len(want), labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("button %d = %q, want %q", i, labels[i], want[i])
		}
	}
	for i, top := range tops {
		wantTop := buttonTop + float64(i)*(buttonHeight+buttonSpacing)
		if top != wantTop {
			t.Errorf("button %d top = %v, want %v", i, top, wantTop)
		}
	}
}

func TestLayoutAbsentChannelsLeaveNoGaps(t *testing.T) {
	// Only the two required channels: the stack must hold exactly two rows
	// in the anchor positions.
	var tops []float64
	for _, op := range layout(t, minimalCard()) {
		if o, ok := op.(RectOp); ok && o.H == buttonHeight && o.X == margin {
			tops = append(tops, o.Y)
		}
	}
	if len(tops) != 2 {
		t.Fatalf("got %d button rows, want 2", len(tops))
	}
	if tops[0] != buttonTop || tops[1] != buttonTop+buttonHeight+buttonSpacing {
		t.Errorf("rows not packed from the anchor: %v", tops)
	}
}

func TestLayoutDerivedLinks(t *testing.T) {
	card := minimalCard()
	card.WhatsApp = "+91 (98765) 43210"
	card.Instagram = "@doedesigns"

	links := map[string]bool{}
	for _, op := range layout(t, card) {
		if o, ok := op.(LinkOp); ok {
			links[o.URL] = true
		}
	}
	for _, want := range []string{
		"tel:9876543210",
		"mailto:jane@doedesigns.in",
		"https://wa.me/919876543210",
		"https://instagram.com/doedesigns",
	} {
		if !links[want] {
			t.Errorf("missing link %q in %v", want, links)
		}
	}
}

func TestLayoutCorruptPhotoDegradesToPlaceholder(t *testing.T) {
	card := minimalCard()
	card.PhotoDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))

	ops := layout(t, card)

	var photoImages, placeholders int
	for _, op := range ops {
		switch o := op.(type) {
		case ImageOp:
			if o.Format != "PNG" || string(o.Data) != "fake-png" {
				photoImages++
			}
		case CircleOp:
			if o.CX == pageWidth/2 && o.CY == photoCY && o.Fill != nil && o.Alpha == 0.2 {
				placeholders++
			}
		}
	}
	if photoImages != 0 {
		t.Error("corrupt photo must not produce an image op")
	}
	if placeholders != 1 {
		t.Errorf("expected exactly one placeholder circle, got %d", placeholders)
	}
}

func TestLayoutGarbageDataURLDegrades(t *testing.T) {
	for _, url := range []string{"data:image/png;base64", "data:image/png;base64,!!!", "plainstring"} {
		card := minimalCard()
		card.PhotoDataURL = url
		if _, err := NewWithMeasurer(fixedMeasurer{}).Layout(card, nil); err != nil {
			t.Errorf("photo %q: expected degradation, got error %v", url, err)
		}
	}
}

func TestLayoutQRPlacement(t *testing.T) {
	ops := layout(t, minimalCard())

	var qrOp *ImageOp
	for _, op := range ops {
		if o, ok := op.(ImageOp); ok && string(o.Data) == "fake-png" {
			qrOp = &o
		}
	}
	if qrOp == nil {
		t.Fatal("expected QR image op")
	}
	if qrOp.X != pageWidth-qrSize-qrInset || qrOp.Y != pageHeight-qrSize-qrInset {
		t.Errorf("QR at (%v,%v), want bottom-right corner", qrOp.X, qrOp.Y)
	}
}

func TestWrapGreedy(t *testing.T) {
	c := NewWithMeasurer(fixedMeasurer{})

	// Width per char at size 9 is 4.5pt; 20 chars fit in 90pt.
	lines := c.wrap("aaaa bbbb cccc dddd eeee", FontRegular, 9, 90)
	for i, line := range lines {
		w := (fixedMeasurer{}).Width(line, FontRegular, 9)
		if w > 90 {
			t.Errorf("line %d %q overflows: %v", i, line, w)
		}
	}
	if got := strings.Join(lines, " "); got != "aaaa bbbb cccc dddd eeee" {
		t.Errorf("wrap lost words: %q", got)
	}

	// A single oversized word still gets its own line.
	long := c.wrap(strings.Repeat("x", 40), FontRegular, 9, 90)
	if len(long) != 1 {
		t.Errorf("oversized word should occupy one line, got %v", long)
	}
}
