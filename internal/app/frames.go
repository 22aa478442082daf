package app

// drawMode selects how the next frame uploads pixel data.
type drawMode int

const (
	// drawCached re-draws the painter's image without touching pixels.
	drawCached drawMode = iota
	// drawPatch rewrites only the cells named by the pending diff.
	drawPatch
	// drawBlit re-converts and re-uploads the whole board.
	drawBlit
)

// frameState tracks what happened to the board since the last draw.
// The engine rebuilds its diff buffer on every Step, and ebiten may run
// Update more than once between Draws, so a second step while one is
// still undrawn discards the first step's diff: that frame must fall
// back to a full blit.
type frameState struct {
	dirty   bool
	stepped bool
}

// markMutation records a change the diff does not describe (toggle,
// stamp, randomize, clear); the next frame re-uploads everything.
func (f *frameState) markMutation() {
	f.dirty = true
}

// markStep records one engine tick.
func (f *frameState) markStep() {
	if f.stepped {
		f.dirty = true
	}
	f.stepped = true
}

// next consumes the pending events and picks the upload strategy for
// the frame being drawn.
func (f *frameState) next() drawMode {
	switch {
	case f.dirty:
		f.dirty = false
		f.stepped = false
		return drawBlit
	case f.stepped:
		f.stepped = false
		return drawPatch
	default:
		return drawCached
	}
}
