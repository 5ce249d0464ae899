package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"inkboard/internal/state"
)

// SaveHistory writes h as indented JSON.
func SaveHistory(w io.Writer, h state.History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// LoadHistory reads a history previously written by SaveHistory.
func LoadHistory(r io.Reader) (state.History, error) {
	var h state.History
	dec := json.NewDecoder(r)
	if err := dec.Decode(&h); err != nil {
		return state.History{}, fmt.Errorf("parse board file: %w", err)
	}
	for _, s := range h.Strokes {
		if !s.Tool.Valid() {
			return state.History{}, fmt.Errorf("board file: unknown tool %q", s.Tool)
		}
	}
	return h, nil
}

// SaveHistoryFile writes h to path.
func SaveHistoryFile(path string, h state.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SaveHistory(f, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadHistoryFile reads a board file from path.
func LoadHistoryFile(path string) (state.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return state.History{}, err
	}
	defer f.Close()
	return LoadHistory(f)
}
