// Package geom converts raw pointer input into canvas-space points.
package geom

import (
	"time"

	"github.com/chewxy/math32"
)

// Point is a single sampled input position in canvas pixel space.
type Point struct {
	X        float32   `json:"x"`
	Y        float32   `json:"y"`
	Pressure float32   `json:"pressure,omitempty"`
	Time     time.Time `json:"time"`
}

// PointerEvent is a raw device event in client coordinates.
type PointerEvent struct {
	PointerID int
	ClientX   float32
	ClientY   float32
	Pressure  float32
	Time      time.Time
}

// ClientRect is the on-screen bounding rectangle of a drawing surface,
// in client (CSS) coordinates.
type ClientRect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Metrics describes a drawing surface: where it sits on screen and how
// large its backing bitmap is. The two can differ, e.g. on high-DPI
// displays or when the surface is stretched by layout.
type Metrics struct {
	Rect        ClientRect
	PixelWidth  int
	PixelHeight int
}

// SurfaceMetrics returns metrics for a surface whose client rectangle
// matches its bitmap size exactly (scale factor 1 on both axes).
func SurfaceMetrics(width, height int) Metrics {
	return Metrics{
		Rect:        ClientRect{Width: float32(width), Height: float32(height)},
		PixelWidth:  width,
		PixelHeight: height,
	}
}

// Sample translates a pointer event into a canvas-space Point, applying
// independent x/y scale factors between the client rectangle and the
// backing bitmap. A degenerate rectangle falls back to scale 1.
func Sample(ev PointerEvent, m Metrics) Point {
	sx, sy := float32(1), float32(1)
	if m.Rect.Width > 0 {
		sx = float32(m.PixelWidth) / m.Rect.Width
	}
	if m.Rect.Height > 0 {
		sy = float32(m.PixelHeight) / m.Rect.Height
	}
	return Point{
		X:        (ev.ClientX - m.Rect.X) * sx,
		Y:        (ev.ClientY - m.Rect.Y) * sy,
		Pressure: ev.Pressure,
		Time:     ev.Time,
	}
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float32 {
	return math32.Hypot(b.X-a.X, b.Y-a.Y)
}
