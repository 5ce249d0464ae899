package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"inkboard/internal/board"
	"inkboard/internal/config"
	"inkboard/internal/export"
	"inkboard/internal/logger"
	"inkboard/internal/state"
)

// newEngine builds a Board from the configuration. Saves land as PNG
// files in the working directory.
func newEngine(cfg config.Config, log *logger.Logger) *board.Board {
	return board.New(board.Options{
		Width:              cfg.Width,
		Height:             cfg.Height,
		MinWidth:           cfg.MinStrokeWidth,
		MaxWidth:           cfg.MaxStrokeWidth,
		DefaultColor:       cfg.DefaultColor,
		DefaultStrokeWidth: cfg.DefaultStrokeWidth,
		DefaultToolType:    state.ToolType(cfg.DefaultTool),
		BackgroundColor:    cfg.BackgroundColor,
		BackgroundImage:    cfg.BackgroundImage,
		OnSave: func(dataURL string) {
			path, err := writeDataURL(dataURL)
			if err != nil {
				log.Error(err, "save failed")
				return
			}
			log.Info("saved " + path)
		},
		Logger: log,
	})
}

// writeDataURL decodes a base64 data URL into a timestamped file.
func writeDataURL(dataURL string) (string, error) {
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return "", fmt.Errorf("unexpected data URL format")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return "", err
	}
	ext := ".png"
	if strings.HasPrefix(dataURL, "data:image/jpeg") {
		ext = ".jpg"
	}
	path := "inkboard-" + time.Now().Format("20060102-150405") + ext
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// loadInto seeds the engine from a saved board file, if one was given.
func loadInto(eng *board.Board, path string, log *logger.Logger) error {
	if path == "" {
		return nil
	}
	h, err := export.LoadHistoryFile(path)
	if err != nil {
		return err
	}
	eng.SetHistory(h)
	log.Info(fmt.Sprintf("loaded %d strokes from %s", len(h.Strokes), path))
	return nil
}
