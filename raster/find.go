package raster

// FindColor scans n pixels of b for px and returns the index of the first
// match or -1. If rgbOnly is set the alpha byte is not compared.
func FindColor(b []byte, px Pixel, n int, rgbOnly bool) int {
	for i, o := 0, 0; i < n; i, o = i+1, o+BytesPerPixel {
		if b[o] != px[0] || b[o+1] != px[1] || b[o+2] != px[2] {
			continue
		}
		if !rgbOnly && b[o+3] != px[3] {
			continue
		}
		return i
	}
	return -1
}

// FindAlpha scans n pixels of b for the first with the given alpha and
// returns its index or -1.
func FindAlpha(b []byte, alpha byte, n int) int {
	for i, o := 0, 3; i < n; i, o = i+1, o+BytesPerPixel {
		if b[o] == alpha {
			return i
		}
	}
	return -1
}

// HasAlpha reports whether any of the n pixels of b has a non-zero alpha.
func HasAlpha(b []byte, n int) bool {
	return FindNonZeroAlpha(b, n) >= 0
}

// FindNonZeroAlpha returns the index of the first of n pixels with a
// non-zero alpha or -1.
func FindNonZeroAlpha(b []byte, n int) int {
	for i, o := 0, 3; i < n; i, o = i+1, o+BytesPerPixel {
		if b[o] != 0 {
			return i
		}
	}
	return -1
}
