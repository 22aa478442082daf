// Package life implements Conway's Game of Life on a fixed-size toroidal
// grid with per-tick change tracking, so a renderer can repaint only the
// cells that flipped.
package life

import (
	"fmt"

	"lifegrid/internal/core"
)

// Cell states. One byte per cell keeps the whole grid exposable as a
// flat binary buffer.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Default dimensions used by NewDefault.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// DiffEnd terminates the change list returned by Diff.
const DiffEnd int32 = -1

// Universe holds one Life simulation. It owns its cell and diff buffers;
// Cells and Diff hand out borrowed views into them. The Universe performs
// no locking: a caller driving it from more than one goroutine must
// serialize access around the whole instance.
type Universe struct {
	w, h int
	cur  []uint8
	nxt  []uint8
	diff []int32
	// number of live entries in diff, excluding the sentinel
	nDiff int
	gen   int
}

// New returns an all-dead Universe with the provided dimensions.
// Non-positive dimensions are rejected before any allocation.
func New(w, h int) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("life: invalid dimensions %dx%d", w, h)
	}
	cells := make([]uint8, w*h)
	u := &Universe{
		w:    w,
		h:    h,
		cur:  cells,
		nxt:  make([]uint8, len(cells)),
		diff: make([]int32, len(cells)+1),
		gen:  1,
	}
	u.diff[0] = DiffEnd
	return u, nil
}

// NewDefault returns an all-dead 64x64 Universe.
func NewDefault() *Universe {
	u, err := New(DefaultWidth, DefaultHeight)
	if err != nil {
		panic(err) // unreachable with positive constants
	}
	return u
}

// Width returns the fixed grid width.
func (u *Universe) Width() int { return u.w }

// Height returns the fixed grid height.
func (u *Universe) Height() int { return u.h }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Generation returns the current generation number. It starts at 1 and
// is reset to 1 by Randomize and Clear.
func (u *Universe) Generation() int { return u.gen }

// Cells exposes the current grid values as a read-only view. The view is
// invalidated by any mutating call; re-fetch it instead of holding on.
func (u *Universe) Cells() []uint8 { return u.cur }

// Diff exposes the indices of cells changed by the most recent Step, in
// ascending order and terminated by DiffEnd. It is stale after any other
// mutation (Toggle, Insert*, Randomize, Clear): callers must re-read
// Cells in full after those.
func (u *Universe) Diff() []int32 { return u.diff[:u.nDiff+1] }

// Snapshot returns a copy of the current cell buffer, for consumers that
// cannot hold a borrowed view across engine calls.
func (u *Universe) Snapshot() []uint8 {
	out := make([]uint8, len(u.cur))
	copy(out, u.cur)
	return out
}

// DiffSnapshot returns a copy of the sentinel-terminated change list.
func (u *Universe) DiffSnapshot() []int32 {
	out := make([]int32, u.nDiff+1)
	copy(out, u.diff[:u.nDiff+1])
	return out
}

// Population returns the number of living cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

func (u *Universe) index(row, col int) int { return row*u.w + col }

// wrap applies toroidal wrapping to the provided coordinates.
func (u *Universe) wrap(row, col int) (int, int) {
	row = (row%u.h + u.h) % u.h
	col = (col%u.w + u.w) % u.w
	return row, col
}

// Step advances the simulation by one generation under the B3/S23 rule.
// Every cell is evaluated against the generation-n snapshot; the next
// generation is staged in a spare buffer and swapped in at the end, and
// the diff buffer is rebuilt with every index whose state changed.
func (u *Universe) Step() {
	w, h := u.w, u.h
	n := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (row + dr + h) % h
					nc := (col + dc + w) % w
					neighbors += int(u.cur[nr*w+nc])
				}
			}
			idx := row*w + col
			alive := u.cur[idx] == Alive
			u.nxt[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				u.nxt[idx] = Alive
			}
			if u.nxt[idx] != u.cur[idx] {
				u.diff[n] = int32(idx)
				n++
			}
		}
	}
	u.diff[n] = DiffEnd
	u.nDiff = n
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// Toggle flips the state of one cell. Coordinates wrap toroidally, the
// same policy the neighbor lookup uses, so out-of-range input folds back
// onto the grid instead of corrupting anything.
func (u *Universe) Toggle(row, col int) {
	row, col = u.wrap(row, col)
	u.cur[u.index(row, col)] ^= 1
}

// SetCells marks each (row, col) pair alive, wrapping coordinates.
func (u *Universe) SetCells(pairs [][2]int) {
	for _, p := range pairs {
		row, col := u.wrap(p[0], p[1])
		u.cur[u.index(row, col)] = Alive
	}
}

// Randomize assigns every cell independently to Dead or Alive with equal
// probability, using a PCG stream seeded with the given value. The
// generation counter restarts at 1.
func (u *Universe) Randomize(seed int64) {
	core.FillBinary(core.NewRNG(seed).Source(), u.cur)
	u.gen = 1
}

// Clear kills every cell and restarts the generation counter.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i] = Dead
	}
	u.gen = 1
}

var _ core.Engine = (*Universe)(nil)
