package game

import (
	"screensaver/internal/anim"
	"screensaver/internal/config"
	"screensaver/internal/graphics"
	"screensaver/internal/monitoring"
	"screensaver/internal/timing"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the application state driven by Ebitengine. Ebitengine calls
// Update at the poll rate; the animation itself only advances when the
// tick gate opens.
type Game struct {
	config   *config.Config
	anim     *anim.Controller
	renderer *graphics.Renderer
	monitor  *monitoring.TickMonitor

	input Input
	clock timing.Clock
	gate  *timing.Gate

	mode          Mode
	width, height int // current window size, updated by Layout

	pending  bool // a tick happened that has not been drawn yet
	quitting bool // quit seen, stop at the start of the next Update

	started bool // first Update ran
	drawn   bool // first frame drawn
}

// NewGame creates the screensaver with the sprite sized from the renderer's
// frames, reading real input and time.
func NewGame(cfg *config.Config, renderer *graphics.Renderer) *Game {
	w, h := renderer.SpriteSize()
	ctrl := anim.New(cfg.GetFrameCount(), w, h)
	return newGame(cfg, ctrl, renderer, timing.NewSystemClock(), &ebitenInput{})
}

func newGame(cfg *config.Config, ctrl *anim.Controller, renderer *graphics.Renderer, clock timing.Clock, input Input) *Game {
	interval := timing.IntervalForRate(cfg.GetFramerate())
	return &Game{
		config:   cfg,
		anim:     ctrl,
		renderer: renderer,
		monitor:  monitoring.NewTickMonitor(interval),
		input:    input,
		clock:    clock,
		gate:     timing.NewGate(interval, clock.Now()),
		mode:     Animating,
		width:    cfg.GetScreenWidth(),
		height:   cfg.GetScreenHeight(),
		pending:  true,
	}
}

// Update polls input every call and advances the simulation when a full
// tick interval has elapsed since the previous tick.
func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.started = true

	events := g.input.Poll()
	for i := 0; i < events.KeyDowns; i++ {
		g.Toggle()
	}
	if events.Quit {
		g.quitting = true
	}

	now := g.clock.Now()
	elapsed := g.gate.Elapsed(now)
	if !g.gate.Ready(now) {
		g.monitor.Poll(true)
		return nil
	}
	g.monitor.Poll(false)
	g.monitor.Tick(elapsed)
	g.monitor.ProfiledTick(g.step)
	return nil
}

func (g *Game) step() {
	if g.mode == Animating {
		g.anim.Tick(g.width, g.height)
	}
	g.pending = true
}

// Toggle switches between Animating and Paused. Returning to Animating
// restarts the animation from off-screen.
func (g *Game) Toggle() {
	if g.mode == Animating {
		g.mode = Paused
	} else {
		g.mode = Animating
		g.anim.Reset()
	}
	g.monitor.Toggle()
}

// Draw renders the state left by the latest tick. The screen is not
// cleared between frames, so nothing is drawn until the next tick.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.pending {
		return
	}
	g.pending = false
	g.drawn = true

	g.renderer.Clear(screen)
	if g.mode == Animating {
		x, y := g.anim.Position()
		g.renderer.DrawFrame(screen, g.anim.Frame(), x, y)
	}
	// TODO: render normal mode content once Paused has something to show.

	if g.config.Debug.ShowStats {
		lines := append([]string{"mode: " + g.mode.String()}, g.monitor.Snapshot().Lines()...)
		g.renderer.DrawOverlay(screen, lines)
	}
	g.monitor.Draw()
}

// Layout keeps one logical pixel per window pixel and records the window
// size for the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		// A resized screen starts out blank.
		g.pending = true
	}
	return outsideWidth, outsideHeight
}

// Mode returns the current run mode.
func (g *Game) Mode() Mode { return g.mode }

// Animation returns the bounce controller.
func (g *Game) Animation() *anim.Controller { return g.anim }

// WindowSize returns the size the next tick will bounce within.
func (g *Game) WindowSize() (width, height int) { return g.width, g.height }

// Stats returns the loop metrics.
func (g *Game) Stats() monitoring.Metrics { return g.monitor.Snapshot() }
