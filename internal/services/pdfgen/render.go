package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// render replays the display list into a single fixed-size PDF page.
func render(ops []Op) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	images := 0
	for _, op := range ops {
		switch o := op.(type) {
		case RectOp:
			pdf.SetAlpha(o.Alpha, "Normal")
			pdf.SetFillColor(channel(o.Color.R), channel(o.Color.G), channel(o.Color.B))
			pdf.Rect(o.X, o.Y, o.W, o.H, "F")
		case CircleOp:
			pdf.SetAlpha(o.Alpha, "Normal")
			var style string
			if o.Fill != nil {
				pdf.SetFillColor(channel(o.Fill.R), channel(o.Fill.G), channel(o.Fill.B))
				style += "F"
			}
			if o.Border != nil {
				pdf.SetDrawColor(channel(o.Border.R), channel(o.Border.G), channel(o.Border.B))
				pdf.SetLineWidth(o.BorderWidth)
				style += "D"
			}
			pdf.Circle(o.CX, o.CY, o.R, style)
		case TextOp:
			pdf.SetAlpha(1, "Normal")
			pdf.SetFont(fontFamily, string(o.Style), o.Size)
			pdf.SetTextColor(channel(o.Color.R), channel(o.Color.G), channel(o.Color.B))
			pdf.Text(o.X, o.Y, o.Text)
		case ImageOp:
			pdf.SetAlpha(1, "Normal")
			images++
			name := fmt.Sprintf("img%d", images)
			opts := gofpdf.ImageOptions{ImageType: o.Format}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(o.Data))
			pdf.ImageOptions(name, o.X, o.Y, o.W, o.H, false, opts, 0, "")
		case LinkOp:
			pdf.LinkString(o.X, o.Y, o.W, o.H, o.URL)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func channel(v float64) int {
	return int(v*255 + 0.5)
}

// coreFontMeasurer measures with gofpdf's built-in Helvetica metrics. A
// fresh document per call keeps it safe for concurrent composers.
type coreFontMeasurer struct{}

func (coreFontMeasurer) Width(text string, style FontStyle, size float64) float64 {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont(fontFamily, string(style), size)
	return pdf.GetStringWidth(text)
}
