package render

import "image/color"

// rgba flattens a color.Color into four 8-bit components.
func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	colOn := rgba(on)
	colOff := rgba(off)
	for i, c := range cells {
		base := i * 4
		col := colOff
		if c != 0 {
			col = colOn
		}
		buf[base+0] = col[0]
		buf[base+1] = col[1]
		buf[base+2] = col[2]
		buf[base+3] = col[3]
	}
}

// patchBinaryRGBA rewrites only the pixels named by diff, a -1-terminated
// list of cell indices, reading the new values from cells. Indices outside
// the cell buffer stop the walk.
func patchBinaryRGBA(buf []byte, cells []uint8, diff []int32, on, off color.Color) {
	colOn := rgba(on)
	colOff := rgba(off)
	for _, idx := range diff {
		if idx < 0 || int(idx) >= len(cells) {
			return
		}
		base := int(idx) * 4
		col := colOff
		if cells[idx] != 0 {
			col = colOn
		}
		buf[base+0] = col[0]
		buf[base+1] = col[1]
		buf[base+2] = col[2]
		buf[base+3] = col[3]
	}
}
