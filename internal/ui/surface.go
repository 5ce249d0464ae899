// Package ui binds the drawing engine to Fyne widgets.
package ui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/board"
	"inkboard/internal/geom"
)

// mousePointerID tags desktop mouse input; Fyne reports one mouse.
const mousePointerID = 1

// Surface is the canvas widget: it forwards mouse input to the engine's
// canvas props and blits the frames the engine renders.
type Surface struct {
	widget.BaseWidget
	props board.CanvasProps
	eng   *board.Board
	img   *canvas.Image
}

var _ fyne.Widget = (*Surface)(nil)
var _ fyne.Draggable = (*Surface)(nil)
var _ desktop.Mouseable = (*Surface)(nil)

// NewSurface builds the widget and registers it as the engine's frame
// sink.
func NewSurface(eng *board.Board) *Surface {
	props := eng.CanvasProps()
	s := &Surface{
		props: props,
		eng:   eng,
		img:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, props.Width, props.Height))),
	}
	s.img.FillMode = canvas.ImageFillStretch
	eng.SetFrameSink(func(frame *image.RGBA) {
		fyne.Do(func() {
			s.img.Image = frame
			s.img.Refresh()
		})
	})
	s.ExtendBaseWidget(s)
	return s
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.img)
}

func (s *Surface) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// Resize keeps the engine's pointer-coordinate mapping in sync with the
// stretched widget, including non-square scale factors.
func (s *Surface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.eng.AttachCanvas(geom.Metrics{
		Rect:        geom.ClientRect{Width: size.Width, Height: size.Height},
		PixelWidth:  s.props.Width,
		PixelHeight: s.props.Height,
	})
}

func (s *Surface) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.props.OnPointerDown(pointerEvent(e.Position))
}

func (s *Surface) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.props.OnPointerUp(pointerEvent(e.Position))
}

func (s *Surface) Dragged(e *fyne.DragEvent) {
	s.props.OnPointerMove(pointerEvent(e.Position))
}

func (s *Surface) DragEnd() {}

func pointerEvent(pos fyne.Position) geom.PointerEvent {
	return geom.PointerEvent{
		PointerID: mousePointerID,
		ClientX:   pos.X,
		ClientY:   pos.Y,
		Time:      time.Now(),
	}
}
