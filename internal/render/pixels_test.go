package render

import (
	"bytes"
	"image/color"
	"testing"

	"lifegrid/internal/life"
)

func TestPatchMatchesFullFill(t *testing.T) {
	on := color.White
	off := color.Black

	cells := []uint8{0, 1, 0, 1, 1, 0, 0, 1, 0}
	buf := make([]byte, len(cells)*4)
	fillBinaryRGBA(buf, cells, on, off)

	// Flip a few cells and patch only those.
	patched := append([]byte(nil), buf...)
	for _, idx := range []int{1, 4, 6} {
		cells[idx] ^= 1
	}
	patchBinaryRGBA(patched, cells, []int32{1, 4, 6, -1}, on, off)

	want := make([]byte, len(cells)*4)
	fillBinaryRGBA(want, cells, on, off)
	if !bytes.Equal(patched, want) {
		t.Fatal("patched buffer differs from a full refill")
	}
}

func TestPatchSpansOneTickOnly(t *testing.T) {
	// The engine rebuilds its diff on every Step, so a frame last
	// painted two ticks ago cannot be repaired with the latest diff
	// alone; callers must fall back to a full fill. Pin that down so
	// nobody is tempted to patch across multiple ticks.
	on := color.White
	off := color.Black

	u, err := life.New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	u.InsertGlider(2, 2)

	buf := make([]byte, len(u.Cells())*4)
	fillBinaryRGBA(buf, u.Cells(), on, off)

	u.Step()
	u.Step()
	patched := append([]byte(nil), buf...)
	patchBinaryRGBA(patched, u.Cells(), u.Diff(), on, off)

	want := make([]byte, len(u.Cells())*4)
	fillBinaryRGBA(want, u.Cells(), on, off)
	if bytes.Equal(patched, want) {
		t.Fatal("patching the latest diff repaired a two-tick-old frame; the full-blit fallback can go")
	}
	fillBinaryRGBA(patched, u.Cells(), on, off)
	if !bytes.Equal(patched, want) {
		t.Fatal("full refill did not reproduce the board")
	}
}

func TestPatchStopsAtSentinel(t *testing.T) {
	cells := []uint8{1, 1}
	buf := make([]byte, len(cells)*4)
	fillBinaryRGBA(buf, cells, color.White, color.Black)
	before := append([]byte(nil), buf...)

	// Entries after the sentinel must be ignored.
	patchBinaryRGBA(buf, cells, []int32{-1, 0}, color.Black, color.White)
	if !bytes.Equal(buf, before) {
		t.Fatal("patch walked past the sentinel")
	}
}
