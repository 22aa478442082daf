package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Engine is the contract the render and input layers expect from the
// simulation. Cells and Diff return borrowed views into engine-owned
// memory: a Cells view is invalidated by any mutating call, and a Diff
// view is meaningful only immediately after Step.
type Engine interface {
	Size() Size
	Cells() []uint8
	Diff() []int32
	Step()
	Toggle(row, col int)
	InsertGlider(row, col int)
	InsertPulsar(row, col int)
	Randomize(seed int64)
	Clear()
}
