//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface. It drives
// the simulation through a fixed-step throttle so the tick rate is
// independent of the display frame rate, and repaints through the diff
// after a tick, falling back to a full blit after arbitrary mutations.
type Game struct {
	sim     core.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	timer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64

	frames frameState
}

// New constructs a Game for the provided engine.
func New(sim core.Engine, scale, tps int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		timer:    core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		tps:      tps,
		seed:     seed,
	}
	g.frames.markMutation() // prime the first frame with a full blit
	g.overlay.SetTPS(g.timer.TPS())
	return g
}

// Reset randomizes the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Randomize(seed)
	g.frames.markMutation()
	g.tickOnce = false
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		g.frames.markMutation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps * 2)
	}

	g.handleCursor()
	g.overlay.Update()

	if g.tickOnce {
		g.sim.Step()
		g.frames.markStep()
		g.tickOnce = false
	} else if !g.paused && g.timer.ShouldStep() {
		g.sim.Step()
		g.frames.markStep()
	}
	return nil
}

// handleCursor applies pointer mutations: plain click toggles one cell,
// Ctrl-click stamps a glider, Shift-click stamps a pulsar.
func (g *Game) handleCursor() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	col := x / g.scale
	row := y / g.scale
	size := g.sim.Size()
	if row < 0 || row >= size.H || col < 0 || col >= size.W {
		return
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight):
		g.sim.InsertGlider(row, col)
	case ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight):
		g.sim.InsertPulsar(row, col)
	default:
		g.sim.Toggle(row, col)
	}
	g.frames.markMutation()
}

func (g *Game) setTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	if tps > 240 {
		tps = 240
	}
	g.tps = tps
	g.timer.SetTPS(tps)
	g.overlay.SetTPS(g.timer.TPS())
}

// Draw repaints the grid: a full blit after mutations (or whenever a
// diff went undrawn), a diff patch after a single tick, and a cached
// redraw otherwise.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.frames.next() {
	case drawBlit:
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	case drawPatch:
		g.painter.Patch(screen, g.sim.Cells(), g.sim.Diff(), g.onColor, g.offColor, g.scale)
	default:
		g.painter.Draw(screen, g.scale)
	}
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
