// Package app wires configuration, the touch manager and the debugger
// together for the host loops.
package app

import (
	"fmt"
	"log"

	"touchdebug/internal/audio"
	"touchdebug/internal/config"
	"touchdebug/internal/overlay"
	"touchdebug/internal/touch"
)

type Session struct {
	Config   config.Config
	Camera   *overlay.Camera
	Manager  *touch.Manager
	Debugger *overlay.Debugger

	detachAudio func()
}

// NewSession builds the marker, starts the debugger against a fresh
// manager and, when enabled, hooks up click feedback.
func NewSession(cfg config.Config) (*Session, error) {
	marker, err := cfg.Marker()
	if err != nil {
		return nil, fmt.Errorf("marker: %w", err)
	}
	s := &Session{
		Config:   cfg,
		Camera:   overlay.NewCamera(cfg.Width, cfg.Height),
		Manager:  touch.NewManager(),
		Debugger: overlay.NewDebugger(marker, cfg.FontColor),
	}
	if cfg.Verbose {
		s.Debugger.Logf = log.Printf
	}
	if err := s.Debugger.Start(s.Camera, s.Manager); err != nil {
		return nil, fmt.Errorf("start debugger: %w", err)
	}

	if cfg.Sound {
		if err := audio.Init(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			audio.SetVolume(cfg.Volume)
			s.detachAudio = audio.Attach(s.Manager)
		}
	}
	return s, nil
}

func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.Resize(width, height)
}

// Frame dispatches the touches reported since the last frame, then runs the
// debugger's update and draw hooks against c.
func (s *Session) Frame(c overlay.Canvas) {
	s.Manager.Flush()
	s.Debugger.Update()
	s.Debugger.Draw(c)
}

func (s *Session) Close() {
	s.Debugger.Stop()
	if s.detachAudio != nil {
		s.detachAudio()
		s.detachAudio = nil
	}
}
