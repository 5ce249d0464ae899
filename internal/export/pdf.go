// Package export serializes drawing histories to PDF and JSON.
package export

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"inkboard/internal/render"
	"inkboard/internal/state"
)

// pxPerMM converts canvas pixels (96 dpi convention) to millimetres.
const pxPerMM = 96.0 / 25.4

// WritePDF renders h onto a single A4 page. PDF has no destination-out
// compositing, so eraser strokes are painted in the background color.
func WritePDF(w io.Writer, h state.History) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")

	bg := h.BackgroundColor
	if bg == "" {
		bg = render.DefaultBackground
	}
	bgColor := render.ParseColor(bg)
	pw, ph, _ := doc.PageSize(1)
	doc.SetFillColor(int(bgColor.R), int(bgColor.G), int(bgColor.B))
	doc.Rect(0, 0, pw, ph, "F")

	for _, s := range h.Strokes {
		c := render.ParseColor(s.Color)
		if s.Tool == state.ToolEraser {
			c = bgColor
		}
		doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
		doc.SetFillColor(int(c.R), int(c.G), int(c.B))
		doc.SetLineWidth(float64(s.Width) / pxPerMM)

		if len(s.Points) == 1 {
			p := s.Points[0]
			doc.Circle(float64(p.X)/pxPerMM, float64(p.Y)/pxPerMM, float64(s.Width)/(2*pxPerMM), "F")
			continue
		}
		for i := 1; i < len(s.Points); i++ {
			a, b := s.Points[i-1], s.Points[i]
			doc.Line(
				float64(a.X)/pxPerMM, float64(a.Y)/pxPerMM,
				float64(b.X)/pxPerMM, float64(b.Y)/pxPerMM,
			)
		}
	}
	return doc.Output(w)
}

// SavePDF writes the PDF to path.
func SavePDF(path string, h state.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(f, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
