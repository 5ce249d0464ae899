package board

import (
	"image"

	"inkboard/internal/logger"
	"inkboard/internal/state"
)

// Defaults applied by New when the corresponding option is zero.
const (
	DefaultMinWidth    float32 = 1
	DefaultMaxWidth    float32 = 50
	DefaultStrokeWidth float32 = 2
	DefaultColor               = "#000000"
)

// Options configures a Board. Width and Height are required; a board
// with a zero-size surface accepts no input and serializes to "".
type Options struct {
	// Width and Height size the backing bitmap in pixels.
	Width  int
	Height int

	// DefaultHistory seeds an uncontrolled board. History, when non-nil,
	// makes the board controlled: the caller owns the history value,
	// receives every computed successor through OnChange, and pushes
	// accepted values back with SetHistory.
	DefaultHistory *state.History
	History        *state.History

	OnChange func(state.History)

	Disabled bool
	ReadOnly bool

	// Required, ID and Name are metadata carried through to the canvas
	// props; the board itself does not enforce them.
	Required bool
	ID       string
	Name     string

	// MinWidth and MaxWidth bound SetStrokeWidth.
	MinWidth float32
	MaxWidth float32

	DefaultColor       string
	DefaultStrokeWidth float32
	DefaultToolType    state.ToolType

	// BackgroundColor and BackgroundImage apply when the initial history
	// does not already set them.
	BackgroundColor string
	BackgroundImage string

	OnBegin func()
	OnEnd   func()
	OnClear func()
	OnSave  func(dataURL string)

	// OnFrame receives every rendered frame, from the render goroutine.
	OnFrame func(*image.RGBA)

	Logger *logger.Logger
}

func (o *Options) applyDefaults() {
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinWidth
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxWidth < o.MinWidth {
		o.MaxWidth = o.MinWidth
	}
	if o.DefaultColor == "" {
		o.DefaultColor = DefaultColor
	}
	if o.DefaultStrokeWidth <= 0 {
		o.DefaultStrokeWidth = DefaultStrokeWidth
	}
	if !o.DefaultToolType.Valid() {
		o.DefaultToolType = state.ToolBrush
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
}
