package raster

// PackRGB returns the red, green and blue bytes of the first n pixels of b,
// 3 bytes per pixel.
func PackRGB(b []byte, n int) []byte {
	out := make([]byte, 0, n*3)
	for i := 0; n > 0; n, i = n-1, i+BytesPerPixel {
		out = append(out, b[i], b[i+1], b[i+2])
	}
	return out
}

// PackAlpha returns the alpha bytes of the first n pixels of b.
func PackAlpha(b []byte, n int) []byte {
	out := make([]byte, 0, n)
	for i := 3; n > 0; n, i = n-1, i+BytesPerPixel {
		out = append(out, b[i])
	}
	return out
}

// UnpackRGB writes 3 byte RGB triples from rgb into at most size pixels of b
// without touching the destination alpha. It returns the number of pixels
// written.
func UnpackRGB(b []byte, size int, rgb []byte) int {
	n := min(size, len(rgb)/3)
	for i := 0; i < n; i++ {
		copy(b[i*BytesPerPixel:i*BytesPerPixel+3], rgb[i*3:i*3+3])
	}
	return n
}

// UnpackRGBA writes at most size whole pixels from src into b. If rgbOnly is
// set the destination alpha is preserved. It returns the number of pixels
// written.
func UnpackRGBA(b []byte, size int, src []byte, rgbOnly bool) int {
	n := min(size, len(src)/BytesPerPixel)
	if !rgbOnly {
		copy(b, src[:n*BytesPerPixel])
		return n
	}
	for i := 0; i < n; i++ {
		o := i * BytesPerPixel
		copy(b[o:o+3], src[o:o+3])
	}
	return n
}

// UnpackAlpha writes one alpha byte per pixel from alpha into at most size
// pixels of b. It returns the number of pixels written.
func UnpackAlpha(b []byte, size int, alpha []byte) int {
	n := min(size, len(alpha))
	for i := 0; i < n; i++ {
		b[i*BytesPerPixel+3] = alpha[i]
	}
	return n
}

// Invert writes the bitwise complement of n pixels of src into dst. Every
// byte is inverted, alpha included.
func Invert(dst, src []byte, n int) {
	for i := 0; i < n*BytesPerPixel; i++ {
		dst[i] = ^src[i]
	}
}
