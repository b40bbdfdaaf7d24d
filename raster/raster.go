/*
Package raster implements the byte level primitives used by the rgba package.

Pixel data is always stored as 4 bytes per pixel in red, green, blue, alpha
order with rows packed one after the other. Nothing in this package knows
about a cursor or current position; every function is given the exact byte
run to work on and, apart from CopyRect, performs no clipping of its own.
*/
package raster

const (
	// BytesPerPixel is the size of a single RGBA pixel
	BytesPerPixel = 4

	// Opaque is the default alpha value
	Opaque = 0xff
)

// Pixel is a single RGBA pixel.
type Pixel [BytesPerPixel]byte

// Black is the opaque black pixel every new buffer is initialized to.
var Black = Pixel{0x00, 0x00, 0x00, Opaque}

// Surface is a non-owning view of a rectangular pixel buffer.
type Surface struct {
	Pix    []byte
	Width  int
	Height int
}

// Offset returns the byte offset of the pixel at x, y.
func (s Surface) Offset(x, y int) int {
	return (y*s.Width + x) * BytesPerPixel
}

// Reset sets n pixels starting at b to opaque black.
func Reset(b []byte, n int) {
	FillLine(b, Black, n, false)
}
