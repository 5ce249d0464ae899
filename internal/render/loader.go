package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"
)

// imageFuture is a one-shot result slot: done closes once the decode
// settles, after which img/err are immutable.
type imageFuture struct {
	done chan struct{}
	img  image.Image
	err  error
}

// ImageLoader decodes background image references (file paths or data
// URLs) off the caller's goroutine and caches the result per reference.
type ImageLoader struct {
	mu      sync.Mutex
	entries map[string]*imageFuture
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{entries: make(map[string]*imageFuture)}
}

// Get returns the decoded image for ref, blocking until the load has
// settled. Repeated calls for the same reference share one decode.
func (l *ImageLoader) Get(ref string) (image.Image, error) {
	l.mu.Lock()
	f, ok := l.entries[ref]
	if !ok {
		f = &imageFuture{done: make(chan struct{})}
		l.entries[ref] = f
		go func() {
			f.img, f.err = decodeRef(ref)
			close(f.done)
		}()
	}
	l.mu.Unlock()
	<-f.done
	return f.img, f.err
}

func decodeRef(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "data:") {
		idx := strings.Index(ref, ";base64,")
		if idx < 0 {
			return nil, errors.New("render: unsupported data URL encoding")
		}
		raw, err := base64.StdEncoding.DecodeString(ref[idx+len(";base64,"):])
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		return img, err
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
