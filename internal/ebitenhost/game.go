// Package ebitenhost runs the touch debugger on ebiten, which delivers real
// touch screens on every platform it supports and emulates a finger with the
// left mouse button elsewhere.
package ebitenhost

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"touchdebug/internal/app"
	"touchdebug/internal/config"
	"touchdebug/internal/touch"
)

// mouseKey is the tracker key for the emulated finger. Ebiten touch ids are
// never negative.
const mouseKey = -1

type Game struct {
	cfg     config.Config
	session *app.Session
	canvas  *canvas
	tr      *touch.Tracker[int]
	width   int
	height  int

	touchBuf []ebiten.TouchID
}

func NewGame(cfg config.Config) (*Game, error) {
	session, err := app.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		session: session,
		canvas:  newCanvas(cfg.LabelScale),
		tr:      touch.NewTracker[int](session.Manager),
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d := g.session.Debugger
		d.SetEnabled(!d.Enabled())
		log.Printf("ebiten: debugger enabled=%v", d.Enabled())
	}

	g.session.Resize(g.width, g.height)
	g.tr.Resize(g.height)

	if !ebiten.IsFocused() {
		g.tr.CancelAll()
		return nil
	}
	g.pollTouches()
	g.pollMouse()
	return nil
}

func (g *Game) pollTouches() {
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		g.tr.Begin(int(id), float64(x), float64(y))
	}
	g.touchBuf = ebiten.AppendTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.tr.Move(int(id), float64(x), float64(y))
	}
	g.touchBuf = inpututil.AppendJustReleasedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		g.tr.End(int(id))
	}
}

func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.tr.Begin(mouseKey, float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.tr.End(mouseKey)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.tr.Move(mouseKey, float64(x), float64(y))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.canvas.screen = screen
	g.canvas.cam = g.session.Camera
	g.session.Frame(g.canvas)
	g.canvas.screen = nil
}

// Layout keeps one logical pixel per device pixel so touch coordinates and
// marker sizes stay in screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	g.width = int(float64(outsideWidth) * s)
	g.height = int(float64(outsideHeight) * s)
	return g.width, g.height
}

func (g *Game) Close() {
	g.canvas.dispose()
	g.session.Close()
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Printf("ebiten: %dx%d %s", cfg.Width, cfg.Height, cfg.Title)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
