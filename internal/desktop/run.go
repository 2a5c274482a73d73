//go:build !android

// Package desktop runs the touch debugger in a glfw window, with the mouse
// standing in for fingers.
package desktop

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"touchdebug/internal/app"
	"touchdebug/internal/config"
	"touchdebug/internal/glcanvas"
)

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	canvas, err := glcanvas.New()
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	defer canvas.Destroy()
	canvas.LabelSize = float32(cfg.LabelScale)

	mouse := NewMouseTouches(session.Manager)
	var keys keyEdge
	log.Printf("desktop: %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), cfg.Title)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if keys.JustPressed(window, glfw.KeyF1) {
			session.Debugger.SetEnabled(!session.Debugger.Enabled())
			log.Printf("desktop: debugger enabled=%v", session.Debugger.Enabled())
		}

		fbW, fbH := window.GetFramebufferSize()
		if minimized(fbW, fbH) {
			// Block until the window is restored.
			glfw.WaitEvents()
			continue
		}
		session.Resize(fbW, fbH)
		mouse.Apply(pollPointer(window, fbW, fbH), fbH)

		canvas.Begin(session.Camera, cfg.Background)
		session.Frame(canvas)
		canvas.End()
		window.SwapBuffers()
	}
	return nil
}

// minimized reports a framebuffer with nothing to draw into.
func minimized(fbW, fbH int) bool {
	return fbW <= 0 || fbH <= 0
}
