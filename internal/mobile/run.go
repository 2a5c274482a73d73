//go:build android

// Package mobile runs the touch debugger as an x/mobile app.
package mobile

import (
	"log"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	mtouch "golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	appsession "touchdebug/internal/app"
	"touchdebug/internal/config"
	"touchdebug/internal/touch"
)

// Run never returns until the app dies. Touches still held when the app
// leaves the screen are cancelled.
func Run(cfg config.Config) {
	session, err := appsession.NewSession(cfg)
	if err != nil {
		log.Fatalf("mobile: %v", err)
	}
	defer session.Close()
	source := touch.NewMobileSource(session.Manager)

	app.Main(func(a app.App) {
		var glctx gl.Context
		var canvas *glesCanvas

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					c, err := newCanvas(glctx, float32(cfg.LabelScale))
					if err != nil {
						log.Printf("mobile: %v", err)
						glctx = nil
						continue
					}
					canvas = c
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					source.CancelAll()
					session.Manager.Flush()
					if canvas != nil {
						canvas.destroy()
						canvas = nil
					}
					glctx = nil
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				session.Resize(e.WidthPx, e.HeightPx)
				source.Resize(e.HeightPx)

			case mtouch.Event:
				source.Handle(e)

			case paint.Event:
				if glctx == nil || canvas == nil || e.External {
					continue
				}
				canvas.begin(session.Camera, cfg.Background)
				session.Frame(canvas)
				canvas.end()
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
