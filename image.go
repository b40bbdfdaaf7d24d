/*
Package rgba implements an RGBA pixel buffer that can also be treated as a
one dimensional sequence of pixels.

An Image is a width by height grid of pixels stored as 4 bytes per pixel,
red, green, blue and alpha, with rows packed one after the other. Along with
the grid each Image value carries a cursor, a pixel offset into the flattened
grid, which the sequence style operations (Insert, Append, Change, Remove,
Clear, Find, Pick and Poke) are relative to.

Several Image values may share the same storage at different cursor
positions; Head, Tail, At, Skip and Find all return such views. Width,
height and the pixel bytes belong to the shared storage, the cursor belongs
to the individual Image value.

An Image is not safe for concurrent use. Callers that share storage between
goroutines must serialize access themselves.
*/
package rgba

import (
	"slices"

	"github.com/bodgit/rgba/raster"
)

const bytesPerPixel = raster.BytesPerPixel

// series is the storage shared between Image values.
type series struct {
	pix       []byte
	width     int
	height    int
	protected bool
}

// resync recomputes the height after the length of the pixel data has
// changed. The width is never adjusted.
func (s *series) resync() {
	if s.width == 0 {
		s.height = 0
		return
	}
	s.height = len(s.pix) / s.width / bytesPerPixel
}

// expand inserts n opaque black pixels at pixel offset at.
func (s *series) expand(at, n int) {
	if n <= 0 {
		return
	}
	o := at * bytesPerPixel
	s.pix = slices.Insert(s.pix, o, make([]byte, n*bytesPerPixel)...)
	raster.Reset(s.pix[o:], n)
}

func (s *series) surface() raster.Surface {
	return raster.Surface{
		Pix:    s.pix,
		Width:  s.width,
		Height: s.height,
	}
}

// Image is an RGBA pixel buffer with a cursor.
type Image struct {
	s   *series
	pos int
}

// MakeBlackOpaque returns a w by h image with every pixel set to opaque
// black. Negative dimensions are treated as zero.
func MakeBlackOpaque(w, h int) *Image {
	w, h = max(w, 0), max(h, 0)
	s := &series{
		pix:    make([]byte, w*h*bytesPerPixel),
		width:  w,
		height: h,
	}
	raster.Reset(s.pix, w*h)
	return &Image{s: s}
}

// FromBytes returns a w by h image using b as its storage without copying.
// The length of b must be exactly w*h*4.
func FromBytes(b []byte, w, h int) (*Image, error) {
	if w < 0 || h < 0 || len(b) != w*h*bytesPerPixel {
		return nil, newError("make", ErrInvalidSize, Binary{Data: b})
	}
	return &Image{
		s: &series{
			pix:    b,
			width:  w,
			height: h,
		},
	}, nil
}

// FromBytesAt is like FromBytes but also sets the cursor from the 1-based
// index, clamped to the tail of the image.
func FromBytesAt(b []byte, w, h, index int) (*Image, error) {
	if index < 1 {
		return nil, newError("make", ErrRange, Integer(index))
	}
	img, err := FromBytes(b, w, h)
	if err != nil {
		return nil, err
	}
	img.pos = min(index-1, img.tail())
	return img, nil
}

func (img *Image) view(pos int) *Image {
	return &Image{s: img.s, pos: pos}
}

func (img *Image) tail() int {
	return img.s.width * img.s.height
}

// index returns the cursor clipped to the tail.
func (img *Image) index() int {
	return min(img.pos, img.tail())
}

// at returns the pixel data from the cursor to the end of the storage.
func (img *Image) at() []byte {
	o := img.pos * bytesPerPixel
	if o > len(img.s.pix) {
		return nil
	}
	return img.s.pix[o:]
}

func (img *Image) surface() raster.Surface {
	return img.s.surface()
}

func (img *Image) pixel(i int) raster.Pixel {
	var px raster.Pixel
	copy(px[:], img.s.pix[i*bytesPerPixel:])
	return px
}

func (img *Image) isValue() {}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.s.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.s.height
}

// Pos returns the 0-based cursor.
func (img *Image) Pos() int {
	return img.pos
}

// Protect marks the storage as read-only; every subsequent mutation through
// any Image sharing it fails with ErrImmutable.
func (img *Image) Protect() {
	img.s.protected = true
}

// Unprotect reverses Protect.
func (img *Image) Unprotect() {
	img.s.protected = false
}

// Protected reports whether the storage is read-only.
func (img *Image) Protected() bool {
	return img.s.protected
}

func (img *Image) ensureMutable(op string) error {
	if img.s.protected {
		return newError(op, ErrImmutable, img)
	}
	return nil
}

// HasAlpha reports whether any pixel has a non-zero alpha.
func (img *Image) HasAlpha() bool {
	return raster.HasAlpha(img.s.pix, img.tail())
}
