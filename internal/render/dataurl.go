package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
)

const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"

	// DefaultQuality matches the conventional canvas serialization default.
	DefaultQuality = 0.92
)

// DataURL serializes img as a base64 data URL. JPEG honors quality in
// (0, 1]; every other mime type, including the empty string, falls back
// to PNG. Returns "" when there is nothing to encode.
func DataURL(img image.Image, mimeType string, quality float64) string {
	if img == nil {
		return ""
	}
	if quality <= 0 || quality > 1 {
		quality = DefaultQuality
	}
	var buf bytes.Buffer
	switch mimeType {
	case MimeJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: int(quality*100 + 0.5)}); err != nil {
			return ""
		}
	default:
		mimeType = MimePNG
		if err := png.Encode(&buf, img); err != nil {
			return ""
		}
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
