package raster

// CopyRect copies a w by h rectangle from src at sx, sy to dst at dx, dy.
//
// The rectangle is shrunk to fit within both dst and src so it never reads
// or writes outside either surface. A rectangle that ends up empty, or any
// negative origin, makes the copy a no-op.
func CopyRect(dst Surface, dx, dy, w, h int, src Surface, sx, sy int) {
	if w <= 0 || h <= 0 {
		return
	}
	if dx < 0 || dy < 0 || sx < 0 || sy < 0 {
		return
	}

	// Clip at edges
	if dx+w > dst.Width {
		w = dst.Width - dx
	}
	if dy+h > dst.Height {
		h = dst.Height - dy
	}
	if sx+w > src.Width {
		w = src.Width - sx
	}
	if sy+h > src.Height {
		h = src.Height - sy
	}
	if w <= 0 || h <= 0 {
		return
	}

	n := w * BytesPerPixel

	// Rows are copied bottom up when moving down within the same buffer
	// so that overlapping source rows are read before being overwritten
	if dy > sy {
		for y := h - 1; y >= 0; y-- {
			d, s := dst.Offset(dx, dy+y), src.Offset(sx, sy+y)
			copy(dst.Pix[d:d+n], src.Pix[s:s+n])
		}
		return
	}

	for y := 0; y < h; y++ {
		d, s := dst.Offset(dx, dy+y), src.Offset(sx, sy+y)
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}
