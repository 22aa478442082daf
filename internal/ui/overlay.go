//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() int
}

type populationProvider interface {
	Population() int
}

// Overlay draws a one-line simulation status readout on top of the grid.
// Generation and population are shown when the engine exposes them.
type Overlay struct {
	sim     core.Engine
	visible bool
	tps     int
}

// NewOverlay constructs an overlay for the provided engine.
func NewOverlay(sim core.Engine) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// SetTPS tells the overlay which simulation speed to display.
func (o *Overlay) SetTPS(tps int) { o.tps = tps }

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status line.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.sim == nil {
		return
	}

	line := ""
	if p, ok := o.sim.(generationProvider); ok {
		line += fmt.Sprintf("gen %d  ", p.Generation())
	}
	if p, ok := o.sim.(populationProvider); ok {
		line += fmt.Sprintf("pop %d  ", p.Population())
	}
	line += fmt.Sprintf("tps %d  fps %.0f", o.tps, ebiten.ActualFPS())

	face := basicfont.Face7x13
	// Shadow first so the line stays readable over live cells.
	text.Draw(screen, line, face, 5, 14, color.RGBA{A: 255})
	text.Draw(screen, line, face, 4, 13, color.RGBA{R: 120, G: 220, B: 120, A: 255})
}
