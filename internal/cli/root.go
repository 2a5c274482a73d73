// Package cli builds the command line shared by the touchdebug binaries.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"touchdebug/internal/config"
	"touchdebug/internal/overlay"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
)

// RunFunc starts a host with the final configuration and blocks until the
// window closes.
type RunFunc func(cfg config.Config) error

type flagValues struct {
	marker      string
	markerSize  int
	markerColor string
	fontColor   string
	labelScale  float64
	width       int
	height      int
	sound       bool
	volume      float64
	verbose     bool
}

// NewCommand returns the root command for a host binary.
func NewCommand(use, short string, run RunFunc) *cobra.Command {
	var fv flagValues
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `

Every active touch is drawn as a marker with its touch id next to it.
With a mouse, the left button acts as a finger.

Environment: ` + config.EnvMarker + `, ` + config.EnvMarkerSize + `, ` + config.EnvFontColor + `, ` + config.EnvSound + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, fv, os.Getenv)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				log.SetFlags(log.Ltime | log.Lmicroseconds)
			}
			_, _ = infoColor.Fprintf(cmd.ErrOrStderr(), "%s %dx%d, font %s\n", use, cfg.Width, cfg.Height, cfg.FontColor.Hex())
			return run(cfg)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVar(&fv.marker, "marker", "", `marker image (png, jpeg, gif, bmp, webp); "none" hides all markers`)
	f.IntVar(&fv.markerSize, "marker-size", def.MarkerSize, "marker edge in pixels")
	f.StringVar(&fv.markerColor, "marker-color", def.MarkerColor.Hex(), "colour of the built-in marker")
	f.StringVar(&fv.fontColor, "font-color", def.FontColor.Hex(), "colour of the touch id labels (#rrggbb or #rrggbbaa)")
	f.Float64Var(&fv.labelScale, "label-scale", def.LabelScale, "label glyph scale")
	f.IntVar(&fv.width, "width", def.Width, "window width")
	f.IntVar(&fv.height, "height", def.Height, "window height")
	f.BoolVar(&fv.sound, "sound", def.Sound, "click on touch begin and end")
	f.Float64Var(&fv.volume, "volume", def.Volume, "click volume 0..1")
	f.BoolVarP(&fv.verbose, "verbose", "v", false, "log every touch batch")
	return cmd
}

// resolve layers defaults, environment and explicitly set flags.
func resolve(cmd *cobra.Command, fv flagValues, getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("marker") {
		cfg.MarkerPath = fv.marker
	}
	if f.Changed("marker-size") {
		cfg.MarkerSize = fv.markerSize
	}
	if f.Changed("marker-color") {
		col, err := overlay.ParseRGB(fv.markerColor)
		if err != nil {
			return cfg, fmt.Errorf("--marker-color: %w", err)
		}
		cfg.MarkerColor = col
	}
	if f.Changed("font-color") {
		col, err := overlay.ParseRGB(fv.fontColor)
		if err != nil {
			return cfg, fmt.Errorf("--font-color: %w", err)
		}
		cfg.FontColor = col
	}
	if f.Changed("label-scale") {
		cfg.LabelScale = fv.labelScale
	}
	if f.Changed("width") {
		cfg.Width = fv.width
	}
	if f.Changed("height") {
		cfg.Height = fv.height
	}
	if f.Changed("sound") {
		cfg.Sound = fv.sound
	}
	if f.Changed("volume") {
		cfg.Volume = fv.volume
	}
	cfg.Verbose = fv.verbose
	return cfg, cfg.Validate()
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		_, _ = errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
		return 1
	}
	return 0
}
