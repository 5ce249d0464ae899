// Package render turns a drawing history into raster frames.
package render

import (
	"image"
	"image/draw"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"inkboard/internal/geom"
	"inkboard/internal/logger"
	"inkboard/internal/state"
)

// DefaultBackground is used when a history carries no background color.
const DefaultBackground = "#ffffff"

// Frame is a render snapshot: the committed history plus the stroke
// currently under the pointer, if any.
type Frame struct {
	History state.History
	Current *state.Stroke
}

// Pipeline rasterizes frames back to front: background fill, background
// image, committed strokes, then the in-progress stroke. Render carries
// no per-call state beyond the cached image loader, so the scheduler's
// loop and synchronous exports may render concurrently.
type Pipeline struct {
	width  int
	height int
	loader *ImageLoader
	log    *logger.Logger
}

func NewPipeline(width, height int, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		width:  width,
		height: height,
		loader: NewImageLoader(),
		log:    log.WithComponent("render"),
	}
}

func (p *Pipeline) Width() int  { return p.width }
func (p *Pipeline) Height() int { return p.height }

// Render produces the full raster for f. The background phase settles
// completely (including an asynchronous image decode) before any stroke
// is drawn, so strokes can never end up beneath the background.
func (p *Pipeline) Render(f Frame) *image.RGBA {
	if p.width <= 0 || p.height <= 0 {
		return nil
	}
	base := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.renderBackground(base, f.History)
	p.renderStrokes(base, f)
	return base
}

// renderBackground is phase one: solid fill, then the optional image.
// A failed image load paints nothing; the fill alone remains.
func (p *Pipeline) renderBackground(base *image.RGBA, h state.History) {
	bg := h.BackgroundColor
	if bg == "" {
		bg = DefaultBackground
	}
	draw.Draw(base, base.Bounds(), image.NewUniform(ParseColor(bg)), image.Point{}, draw.Src)

	if h.BackgroundImage == "" {
		return
	}
	img, err := p.loader.Get(h.BackgroundImage)
	if err != nil {
		p.log.Debug("background image unavailable: " + err.Error())
		return
	}
	xdraw.BiLinear.Scale(base, base.Bounds(), img, img.Bounds(), xdraw.Over, nil)
}

// renderStrokes is phase two: committed strokes in order, then the
// in-progress stroke on top.
func (p *Pipeline) renderStrokes(base *image.RGBA, f Frame) {
	for _, s := range f.History.Strokes {
		p.compose(base, s)
	}
	if f.Current != nil {
		p.compose(base, *f.Current)
	}
}

// compose rasterizes one stroke into its own layer and merges it with
// the tool's compositing mode. Using a fresh layer per stroke keeps the
// eraser's destination-out mode from leaking into later strokes.
func (p *Pipeline) compose(base *image.RGBA, s state.Stroke) {
	layer := p.strokeLayer(s)
	if layer == nil {
		return
	}
	if s.Tool == state.ToolEraser {
		eraseUnder(base, layer)
		return
	}
	draw.Draw(base, base.Bounds(), layer, image.Point{}, draw.Over)
}

// eraseUnder applies destination-out: every base pixel is scaled by the
// inverse of the stroke layer's coverage, dst = dst*(1-ma). Pixels the
// stroke never touched keep their value.
func eraseUnder(base *image.RGBA, layer image.Image) {
	bounds := base.Bounds().Intersect(layer.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, ma := layer.At(x, y).RGBA()
			if ma == 0 {
				continue
			}
			keep := 0xffff - ma
			i := base.PixOffset(x, y)
			px := base.Pix[i : i+4 : i+4]
			px[0] = uint8(uint32(px[0]) * keep / 0xffff)
			px[1] = uint8(uint32(px[1]) * keep / 0xffff)
			px[2] = uint8(uint32(px[2]) * keep / 0xffff)
			px[3] = uint8(uint32(px[3]) * keep / 0xffff)
		}
	}
}

// strokeLayer draws s onto a transparent layer as a single stroked path.
func (p *Pipeline) strokeLayer(s state.Stroke) image.Image {
	if len(s.Points) == 0 {
		return nil
	}
	dc := gg.NewContext(p.width, p.height)
	dc.SetColor(ParseColor(s.Color))
	dc.SetStroke(gg.DefaultStroke().
		WithWidth(float64(s.Width)).
		WithCap(gg.LineCapRound).
		WithJoin(gg.LineJoinRound))
	tracePath(dc, s.Points)
	if err := dc.Stroke(); err != nil {
		p.log.Debug("stroke rasterization failed: " + err.Error())
		return nil
	}
	return dc.Image()
}

// tracePath builds the smoothed path for a point sequence: quadratic
// curves ending at segment midpoints with the preceding point as
// control, then a line to the final point. A one-point stroke gets a
// near-zero segment so a tap still produces a dot under the round cap.
func tracePath(dc *gg.Context, pts []geom.Point) {
	first := pts[0]
	dc.MoveTo(float64(first.X), float64(first.Y))
	if len(pts) == 1 {
		dc.LineTo(float64(first.X)+0.1, float64(first.Y))
		return
	}
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		mx := float64(prev.X+cur.X) / 2
		my := float64(prev.Y+cur.Y) / 2
		dc.QuadraticTo(float64(prev.X), float64(prev.Y), mx, my)
	}
	last := pts[len(pts)-1]
	dc.LineTo(float64(last.X), float64(last.Y))
}
