package rgba

import (
	"image"
	"image/draw"
)

// NRGBA returns an *image.NRGBA sharing the storage of the image, so that
// drawing to it modifies the image directly. The cursor is ignored.
func (img *Image) NRGBA() *image.NRGBA {
	s := img.s
	return &image.NRGBA{
		Pix:    s.pix[:s.width*s.height*bytesPerPixel],
		Stride: s.width * bytesPerPixel,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// FromImage returns a new image holding the pixels of m converted to
// non-premultiplied RGBA.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	img := MakeBlackOpaque(b.Dx(), b.Dy())
	draw.Draw(img.NRGBA(), image.Rect(0, 0, b.Dx(), b.Dy()), m, b.Min, draw.Src)
	return img
}
