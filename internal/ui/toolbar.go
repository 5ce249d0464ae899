package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/board"
	"inkboard/internal/config"
	"inkboard/internal/render"
	"inkboard/internal/state"
)

// colorSwatch is a tappable color square.
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(render.ParseColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

var paletteHex = []string{"#000000", "#ff0000", "#008000", "#0000ff", "#ffff00"}

// NewToolbar assembles the tool strip from the engine's button props.
func NewToolbar(eng *board.Board, cfg config.Config) fyne.CanvasObject {
	brush := eng.BrushButtonProps()
	eraser := eng.EraserButtonProps()
	undo := eng.UndoButtonProps()
	redo := eng.RedoButtonProps()
	clear := eng.ClearButtonProps()
	save := eng.SaveButtonProps()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), brush.OnPress),
		widget.NewToolbarAction(theme.ContentClearIcon(), eraser.OnPress),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), undo.OnPress),
		widget.NewToolbarAction(theme.NavigateNextIcon(), redo.OnPress),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), clear.OnPress),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), save.OnPress),
	)

	onColorTapped := func(hex string) {
		eng.SetColor(hex)
		eng.SetToolType(state.ToolBrush)
	}
	colorBox := container.NewHBox()
	for _, hex := range paletteHex {
		colorBox.Add(newColorSwatch(hex, onColorTapped))
	}

	widthSlider := widget.NewSlider(float64(cfg.MinStrokeWidth), float64(cfg.MaxStrokeWidth))
	widthSlider.SetValue(float64(eng.StrokeWidth()))
	widthSlider.OnChanged = func(v float64) {
		eng.SetStrokeWidth(float32(v))
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}
