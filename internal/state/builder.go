package state

import (
	"time"

	"github.com/google/uuid"

	"inkboard/internal/geom"
)

// BeginStroke creates a new one-point stroke with the given style.
func BeginStroke(p geom.Point, color string, width float32, tool ToolType) Stroke {
	if !tool.Valid() {
		tool = ToolBrush
	}
	return Stroke{
		ID:      uuid.NewString(),
		Points:  []geom.Point{p},
		Color:   color,
		Width:   width,
		Tool:    tool,
		Created: time.Now(),
	}
}

// ExtendStroke returns a copy of s with p appended. Earlier points are
// never modified, so readers holding the previous value stay valid.
func ExtendStroke(s Stroke, p geom.Point) Stroke {
	pts := make([]geom.Point, len(s.Points), len(s.Points)+1)
	copy(pts, s.Points)
	s.Points = append(pts, p)
	return s
}

// CommitStroke freezes s for insertion into a History. A stroke with a
// single point is legal; the renderer turns it into a dot.
func CommitStroke(s Stroke) Stroke {
	return s
}
