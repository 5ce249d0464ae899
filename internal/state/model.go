// Package state holds the drawing surface's value types and the pure
// history transformations behind undo, redo and clear.
package state

import (
	"time"

	"inkboard/internal/geom"
)

// ToolType selects how a stroke composites onto the canvas.
type ToolType string

const (
	// ToolBrush paints with the stroke color.
	ToolBrush ToolType = "brush"
	// ToolEraser punches through existing pixels (destination-out).
	ToolEraser ToolType = "eraser"
)

// Valid reports whether t is a known tool.
func (t ToolType) Valid() bool {
	return t == ToolBrush || t == ToolEraser
}

// Stroke is one freehand gesture. Points are appended only while the
// stroke is in progress; once committed to a History the value is
// treated as immutable everywhere.
type Stroke struct {
	ID      string       `json:"id"`
	Points  []geom.Point `json:"points"`
	Color   string       `json:"color"`
	Width   float32      `json:"width"`
	Tool    ToolType     `json:"tool"`
	Created time.Time    `json:"created"`
}

// History is the committed drawing state: every finished stroke plus
// the background attributes. The in-progress stroke never appears here;
// it lives in transient controller state and is merged at render time.
type History struct {
	Strokes         []Stroke `json:"strokes"`
	BackgroundColor string   `json:"background_color,omitempty"`
	BackgroundImage string   `json:"background_image,omitempty"`
}
