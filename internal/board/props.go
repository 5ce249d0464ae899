package board

import (
	"inkboard/internal/geom"
	"inkboard/internal/render"
	"inkboard/internal/state"
)

// CanvasProps is the attachment surface for the drawing element. A host
// layer spreads the handlers onto whatever concrete element it renders;
// nothing here depends on a particular UI framework.
type CanvasProps struct {
	OnPointerDown   func(geom.PointerEvent)
	OnPointerMove   func(geom.PointerEvent)
	OnPointerUp     func(geom.PointerEvent)
	OnPointerCancel func(geom.PointerEvent)
	OnPointerLeave  func(geom.PointerEvent)

	Width    int
	Height   int
	Disabled bool
	ReadOnly bool
	Required bool
	ID       string
	Name     string
	Part     string
}

// ButtonProps is the attachment surface for a toolbar control.
type ButtonProps struct {
	OnPress  func()
	Disabled bool
	Active   bool
	Part     string
	Label    string
}

// CanvasProps returns the canvas attachment surface.
func (b *Board) CanvasProps() CanvasProps {
	return CanvasProps{
		OnPointerDown:   b.PointerDown,
		OnPointerMove:   b.PointerMove,
		OnPointerUp:     b.PointerUp,
		OnPointerCancel: b.PointerCancel,
		OnPointerLeave:  b.PointerLeave,
		Width:           b.opts.Width,
		Height:          b.opts.Height,
		Disabled:        b.opts.Disabled,
		ReadOnly:        b.opts.ReadOnly,
		Required:        b.opts.Required,
		ID:              b.opts.ID,
		Name:            b.opts.Name,
		Part:            "canvas",
	}
}

// ClearButtonProps returns the clear control binding.
func (b *Board) ClearButtonProps() ButtonProps {
	b.mu.Lock()
	empty := len(b.hist.Strokes) == 0
	b.mu.Unlock()
	return ButtonProps{
		OnPress:  b.Clear,
		Disabled: b.opts.Disabled || b.opts.ReadOnly || empty,
		Part:     "clear-button",
		Label:    "Clear canvas",
	}
}

// UndoButtonProps returns the undo control binding.
func (b *Board) UndoButtonProps() ButtonProps {
	b.mu.Lock()
	canUndo := len(b.hist.Strokes) > 0 ||
		(len(b.undo) > 0 && b.undo[len(b.undo)-1].FromClear)
	b.mu.Unlock()
	return ButtonProps{
		OnPress:  b.Undo,
		Disabled: b.opts.Disabled || b.opts.ReadOnly || !canUndo,
		Part:     "undo-button",
		Label:    "Undo",
	}
}

// RedoButtonProps returns the redo control binding.
func (b *Board) RedoButtonProps() ButtonProps {
	b.mu.Lock()
	canRedo := len(b.undo) > 0
	b.mu.Unlock()
	return ButtonProps{
		OnPress:  b.Redo,
		Disabled: b.opts.Disabled || b.opts.ReadOnly || !canRedo,
		Part:     "redo-button",
		Label:    "Redo",
	}
}

// SaveButtonProps returns the save control binding; pressing it
// serializes a PNG and fires OnSave.
func (b *Board) SaveButtonProps() ButtonProps {
	return ButtonProps{
		OnPress:  func() { b.ToDataURL(render.MimePNG, render.DefaultQuality) },
		Disabled: b.opts.Disabled,
		Part:     "save-button",
		Label:    "Save drawing",
	}
}

// BrushButtonProps returns the brush tool binding.
func (b *Board) BrushButtonProps() ButtonProps {
	return ButtonProps{
		OnPress:  func() { b.SetToolType(state.ToolBrush) },
		Disabled: b.opts.Disabled || b.opts.ReadOnly,
		Active:   b.ToolType() == state.ToolBrush,
		Part:     "brush-button",
		Label:    "Brush",
	}
}

// EraserButtonProps returns the eraser tool binding.
func (b *Board) EraserButtonProps() ButtonProps {
	return ButtonProps{
		OnPress:  func() { b.SetToolType(state.ToolEraser) },
		Disabled: b.opts.Disabled || b.opts.ReadOnly,
		Active:   b.ToolType() == state.ToolEraser,
		Part:     "eraser-button",
		Label:    "Eraser",
	}
}
