package life

import "testing"

func mustNew(t *testing.T, w, h int) *Universe {
	t.Helper()
	u, err := New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func sameCells(t *testing.T, got, want *Universe) {
	t.Helper()
	g, w := got.Cells(), want.Cells()
	if len(g) != len(w) {
		t.Fatalf("buffer lengths differ: %d vs %d", len(g), len(w))
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("grids diverge at index %d (row %d, col %d)",
				i, i/got.Width(), i%got.Width())
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	u := mustNew(t, 8, 8)
	u.InsertGlider(0, 0)
	if u.Population() != 5 {
		t.Fatalf("glider stamped %d cells, want 5", u.Population())
	}

	for i := 0; i < 4; i++ {
		u.Step()
	}

	want := mustNew(t, 8, 8)
	want.InsertGlider(1, 1)
	sameCells(t, u, want)
}

func TestGliderWrapsAcrossEdge(t *testing.T) {
	u := mustNew(t, 8, 8)
	u.InsertGlider(6, 6)

	for i := 0; i < 4; i++ {
		u.Step()
	}

	want := mustNew(t, 8, 8)
	want.InsertGlider(7, 7)
	sameCells(t, u, want)
}

func TestPulsarPeriodThree(t *testing.T) {
	u := mustNew(t, 17, 17)
	u.InsertPulsar(2, 2)
	if u.Population() != 48 {
		t.Fatalf("pulsar stamped %d cells, want 48", u.Population())
	}
	seed := u.Snapshot()

	u.Step()
	changed := false
	for i, c := range u.Cells() {
		if c != seed[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("pulsar did not oscillate after one step")
	}

	u.Step()
	u.Step()
	for i, c := range u.Cells() {
		if c != seed[i] {
			t.Fatalf("pulsar not back to phase one after three steps, index %d", i)
		}
	}
}

func TestInsertIsOverlay(t *testing.T) {
	u := mustNew(t, 8, 8)
	// (0,0) is inside the glider's bounding box but not part of the
	// pattern; stamping must leave it alone.
	u.SetCells([][2]int{{0, 0}, {5, 5}})
	u.InsertGlider(0, 0)

	cells := u.Cells()
	if cells[0] != Alive {
		t.Fatal("glider stamp cleared a live cell it does not cover")
	}
	if cells[5*u.Width()+5] != Alive {
		t.Fatal("glider stamp cleared a cell outside its footprint")
	}
}
