package geom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleIdentityScale(t *testing.T) {
	m := SurfaceMetrics(100, 100)
	now := time.Now()
	p := Sample(PointerEvent{ClientX: 10, ClientY: 20, Pressure: 0.5, Time: now}, m)

	assert.Equal(t, float32(10), p.X)
	assert.Equal(t, float32(20), p.Y)
	assert.Equal(t, float32(0.5), p.Pressure)
	assert.Equal(t, now, p.Time)
}

func TestSampleNonSquareScale(t *testing.T) {
	// Bitmap twice as wide and four times as tall as the client rect.
	m := Metrics{
		Rect:        ClientRect{X: 5, Y: 5, Width: 100, Height: 50},
		PixelWidth:  200,
		PixelHeight: 200,
	}
	p := Sample(PointerEvent{ClientX: 55, ClientY: 30}, m)

	assert.Equal(t, float32(100), p.X)
	assert.Equal(t, float32(100), p.Y)
}

func TestSampleDegenerateRect(t *testing.T) {
	m := Metrics{PixelWidth: 100, PixelHeight: 100}
	p := Sample(PointerEvent{ClientX: 30, ClientY: 40}, m)

	// Scale falls back to 1 rather than dividing by zero.
	assert.Equal(t, float32(30), p.X)
	assert.Equal(t, float32(40), p.Y)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(-3, 1, 50))
	assert.Equal(t, float32(50), Clamp(900, 1, 50))
	assert.Equal(t, float32(7), Clamp(7, 1, 50))
}

func TestDist(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	assert.Equal(t, float32(5), Dist(a, b))
}
