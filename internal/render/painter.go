//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter caches the grid as a single RGBA image so that a frame with
// no mutations is a plain draw, a tick is a sparse patch, and only an
// arbitrary mutation forces a full re-upload.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit re-converts the full cell buffer, uploads it, and draws.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.ReplacePixels(gp.buf)
	gp.Draw(dst, scale)
}

// Patch rewrites only the cells named by the sentinel-terminated diff,
// uploads, and draws. The caller must have Blit once beforehand so the
// rest of the image is valid.
func (gp *GridPainter) Patch(dst *ebiten.Image, cells []uint8, diff []int32, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	patchBinaryRGBA(gp.buf, cells, diff, on, off)
	gp.img.ReplacePixels(gp.buf)
	gp.Draw(dst, scale)
}

// Draw renders the cached image without touching pixel data.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
