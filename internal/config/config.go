// Package config holds the settings shared by every host.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"touchdebug/internal/overlay"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Touch Debugger"
)

// MarkerNone disables the marker, and with it all drawing.
const MarkerNone = "none"

// Environment overrides, applied before command line flags.
const (
	EnvMarker     = "TOUCHDEBUG_MARKER"
	EnvMarkerSize = "TOUCHDEBUG_MARKER_SIZE"
	EnvFontColor  = "TOUCHDEBUG_FONT_COLOR"
	EnvSound      = "TOUCHDEBUG_SOUND"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// MarkerPath is an image file, empty for the built-in ring, or MarkerNone.
	MarkerPath  string
	MarkerSize  int
	MarkerColor overlay.RGB
	FontColor   overlay.RGB
	LabelScale  float64

	Width, Height int
	Title         string
	Background    overlay.RGB

	Sound   bool
	Volume  float64
	Verbose bool
}

func Default() Config {
	return Config{
		MarkerSize:  overlay.DefaultMarkerSize,
		MarkerColor: overlay.Palette.Marker,
		FontColor:   overlay.Palette.Label,
		LabelScale:  1,
		Width:       WindowWidth,
		Height:      WindowHeight,
		Title:       WindowTitle,
		Background:  overlay.Palette.Background,
		Volume:      0.6,
	}
}

// ApplyEnv overrides fields from the environment. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvMarker); v != "" {
		c.MarkerPath = v
	}
	if v := getenv(EnvMarkerSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMarkerSize, err)
		}
		c.MarkerSize = n
	}
	if v := getenv(EnvFontColor); v != "" {
		col, err := overlay.ParseRGB(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFontColor, err)
		}
		c.FontColor = col
	}
	if v := getenv(EnvSound); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = on
	}
	return nil
}

// FromEnv returns the defaults with environment overrides applied, validated.
// Hosts without a command line use it.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	if err := c.ApplyEnv(getenv); err != nil {
		return Default(), err
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Validate reports every out of range value, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var problems []string
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d", c.Width, c.Height))
	}
	if c.MarkerSize <= 0 || c.MarkerSize > 1024 {
		problems = append(problems, fmt.Sprintf("marker size %d (1..1024)", c.MarkerSize))
	}
	if c.LabelScale <= 0 {
		problems = append(problems, fmt.Sprintf("label scale %v", c.LabelScale))
	}
	if c.Volume < 0 || c.Volume > 1 {
		problems = append(problems, fmt.Sprintf("volume %v (0..1)", c.Volume))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, ", "))
	}
	return nil
}

// Marker builds the configured marker texture. It returns nil for MarkerNone.
func (c Config) Marker() (overlay.Texture, error) {
	switch c.MarkerPath {
	case MarkerNone:
		return nil, nil
	case "":
		return overlay.DefaultMarker(c.MarkerSize, c.MarkerColor), nil
	}
	tex, err := overlay.LoadMarker(c.MarkerPath, c.MarkerSize)
	if err != nil {
		return nil, err
	}
	return tex, nil
}
