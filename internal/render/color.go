package render

import (
	"image/color"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor resolves a stroke or background color string: #rgb, #rrggbb,
// #rrggbbaa, or one of a small set of names. Unparseable input yields
// opaque black so a bad color never suppresses ink entirely.
func ParseColor(s string) color.NRGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{A: 255}
	}
	hex := s[1:]
	var digits [8]uint8
	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{A: 255}
	}
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{A: 255}
		}
		digits[i] = d
	}
	if len(hex) == 3 {
		return color.NRGBA{
			R: digits[0] * 17,
			G: digits[1] * 17,
			B: digits[2] * 17,
			A: 255,
		}
	}
	c := color.NRGBA{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
		A: 255,
	}
	if len(hex) == 8 {
		c.A = digits[6]<<4 | digits[7]
	}
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
