package cli

import (
	"errors"
	"io"
	"testing"

	"touchdebug/internal/config"
	"touchdebug/internal/overlay"
)

func runWith(t *testing.T, env map[string]string, args ...string) (config.Config, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	var got config.Config
	cmd := NewCommand("touchdebug", "test", func(cfg config.Config) error {
		got = cfg
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestCommand_Defaults(t *testing.T) {
	cfg, err := runWith(t, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	def := config.Default()
	if cfg.Width != def.Width || cfg.FontColor != def.FontColor || cfg.MarkerPath != "" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestCommand_FlagsOverrideEnv(t *testing.T) {
	env := map[string]string{
		config.EnvFontColor:  "#ff0000",
		config.EnvMarkerSize: "32",
	}
	cfg, err := runWith(t, env, "--font-color", "#0000ff", "--width", "1024", "--marker", "none", "-v")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cfg.FontColor != (overlay.RGB{B: 255, A: 255}) {
		t.Errorf("FontColor = %+v, want blue from flag", cfg.FontColor)
	}
	if cfg.MarkerSize != 32 {
		t.Errorf("MarkerSize = %d, want 32 from env", cfg.MarkerSize)
	}
	if cfg.Width != 1024 || cfg.MarkerPath != config.MarkerNone || !cfg.Verbose {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad colour", []string{"--font-color", "blue"}},
		{"invalid size", []string{"--width", "0"}},
		{"positional arg", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runWith(t, nil, tt.args...); err == nil {
				t.Fatal("Execute succeeded")
			}
		})
	}
}

func TestCommand_RunError(t *testing.T) {
	boom := errors.New("no display")
	cmd := NewCommand("touchdebug", "test", func(config.Config) error { return boom })
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Fatalf("Execute = %v, want %v", err, boom)
	}
}
