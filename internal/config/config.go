// Package config loads the application shell's YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"inkboard/internal/state"
)

// Config drives the board application: surface size, stroke defaults,
// and the collaboration listen port.
type Config struct {
	Width  int `yaml:"width" validate:"gt=0,lte=8192"`
	Height int `yaml:"height" validate:"gt=0,lte=8192"`

	MinStrokeWidth     float32 `yaml:"min_stroke_width" validate:"gt=0"`
	MaxStrokeWidth     float32 `yaml:"max_stroke_width" validate:"gtefield=MinStrokeWidth"`
	DefaultStrokeWidth float32 `yaml:"default_stroke_width" validate:"gt=0"`
	DefaultColor       string  `yaml:"default_color" validate:"required"`
	DefaultTool        string  `yaml:"default_tool" validate:"oneof=brush eraser"`

	BackgroundColor string `yaml:"background_color"`
	BackgroundImage string `yaml:"background_image"`

	Port     int    `yaml:"port" validate:"gte=0,lte=65535"`
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Width:              1024,
		Height:             768,
		MinStrokeWidth:     1,
		MaxStrokeWidth:     50,
		DefaultStrokeWidth: 2,
		DefaultColor:       "#000000",
		DefaultTool:        string(state.ToolBrush),
		BackgroundColor:    "#ffffff",
		Port:               8888,
		LogLevel:           "info",
	}
}

// Load reads path, overlays it on the defaults, and validates the
// result. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the struct's validation tags.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
