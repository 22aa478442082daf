package life

// Pattern is a named set of live-cell offsets relative to the top-left
// corner of the pattern's bounding box.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Glider is the canonical 5-cell glider. Under repeated Steps it
// translates one cell down and one cell right every four generations.
var Glider = Pattern{
	Name: "glider",
	Cells: [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
}

// Pulsar is the canonical 48-cell period-3 oscillator, 13x13 bounding
// box: four 6-cell arms mirrored across both axes.
var Pulsar = Pattern{Name: "pulsar", Cells: pulsarCells()}

func pulsarCells() [][2]int {
	arms := []int{2, 3, 4, 8, 9, 10}
	edges := []int{0, 5, 7, 12}
	cells := make([][2]int, 0, 48)
	for _, e := range edges {
		for _, a := range arms {
			cells = append(cells, [2]int{e, a}, [2]int{a, e})
		}
	}
	return cells
}

// Insert overlays the pattern onto the grid with its bounding box
// anchored at (row, col). Only the pattern's live cells are written;
// everything else is left alone. The anchor and every stamped cell wrap
// toroidally, so patterns may straddle the grid edge.
func (u *Universe) Insert(p Pattern, row, col int) {
	for _, c := range p.Cells {
		r, cc := u.wrap(row+c[0], col+c[1])
		u.cur[u.index(r, cc)] = Alive
	}
}

// InsertGlider stamps a glider anchored at (row, col).
func (u *Universe) InsertGlider(row, col int) { u.Insert(Glider, row, col) }

// InsertPulsar stamps a pulsar anchored at (row, col).
func (u *Universe) InsertPulsar(row, col int) { u.Insert(Pulsar, row, col) }
