//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxlife/internal/render"
	"voxlife/internal/sched"
	"voxlife/internal/ui"
	"voxlife/internal/world"
)

const hudWidth = 230

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world   *world.World
	sched   *sched.Scheduler
	painter *render.Painter
	hud     *ui.HUD
	cam     render.Orbit

	width, height int
	last          time.Time
	clock         float64
	paused        bool
}

// New constructs a Game. painter must be the sink (or part of the sink) the
// world installs its meshes in.
func New(w *world.World, s *sched.Scheduler, painter *render.Painter, width, height int) *Game {
	return &Game{
		world:   w,
		sched:   s,
		painter: painter,
		hud:     ui.NewHUD(w, hudWidth),
		cam:     render.DefaultOrbit(w.Grid().Size()),
		width:   width,
		height:  height,
	}
}

// Update handles per-frame logic and advances the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.world.Reset(0); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.world.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	g.hud.Paused = g.paused
	g.hud.Update()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last)
	g.last = now
	g.clock += dt.Seconds()
	if !g.paused {
		g.sched.Advance(dt)
	}
	return nil
}

// Draw renders the current mesh and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Draw(screen, g.cam, g.clock)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
