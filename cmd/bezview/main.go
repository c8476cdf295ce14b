// Command bezview is a windowed Bézier curve editor.
//
// Left-click adds a control point, dragging moves one. With four or more
// points the handle lines and the curve are drawn.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sgostarter/i/l"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/config"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
	"github.com/ha1tch/bezier-toolkit/pkg/render"
)

// Game implements ebiten.Game around a frame.Loop.
type Game struct {
	loop        *frame.Loop
	ptr         pointer
	width       int
	height      int
	showHandles bool
}

func newGame(cfg config.Config, logger l.Wrapper) *Game {
	store := editor.NewStore(editor.Options{
		Capacity:   cfg.Capacity,
		MarkerSize: cfg.MarkerSize,
		Logger:     logger,
	})
	return &Game{
		loop: frame.NewLoop(store, frame.Options{
			MinCurvePoints: cfg.MinCurvePoints,
			StepCount:      cfg.StepCount,
			Logger:         logger,
		}),
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		showHandles: true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.showHandles = !g.showHandles
	}

	x, y := ebiten.CursorPosition()
	for _, ev := range g.ptr.events(bezier.Pt(float64(x), float64(y)),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)) {
		g.loop.Post(ev)
	}
	g.loop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor())
	g.loop.Draw(&screenRenderer{dst: screen, showHandles: g.showHandles})

	store := g.loop.Store()
	status := fmt.Sprintf("%d/%d points", store.Len(), store.Cap())
	if idx, ok := store.Selection(); ok {
		status += fmt.Sprintf("  dragging %d", idx)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, g.height-20)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// screenRenderer implements frame.Renderer on an ebiten image.
type screenRenderer struct {
	dst         *ebiten.Image
	showHandles bool
}

var _ frame.Renderer = (*screenRenderer)(nil)

func (r *screenRenderer) DrawSegment(a, b bezier.Point, s frame.Stroke) {
	if s == frame.StrokeHandle && !r.showHandles {
		return
	}
	ebitenutil.DrawLine(r.dst, a.X, a.Y, b.X, b.Y, render.StrokeColor(s))
}

func (r *screenRenderer) DrawMarker(p bezier.Point, size float64, selected bool) {
	ebitenutil.DrawRect(r.dst, p.X-size/2, p.Y-size/2, size, size, render.MarkerColor(selected))
}

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger := l.NewNopLoggerWrapper()
	if cfg.Debug {
		logger = l.NewConsoleLoggerWrapper()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Bezier Curve")
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(newGame(cfg, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithFields(l.ErrorField(err)).Error("run game")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
