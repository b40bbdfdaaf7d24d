package rgba

import (
	"github.com/bodgit/rgba/raster"
)

// copyRun returns a new image holding n pixels from the cursor. The run is
// kept as a single row if it fits within the width, otherwise it is cut
// into as many whole rows as fit.
func (img *Image) copyRun(n int) *Image {
	n = clamp(n, 0, img.Length())

	w := max(img.s.width, 1)
	h := 1
	if n <= w {
		w = n
	} else {
		h = n / w
	}
	if w == 0 {
		h = 0
	}

	out := MakeBlackOpaque(w, h)
	copy(out.s.pix, img.at()[:w*h*bytesPerPixel])
	return out
}

// Copy returns a new image copied from the cursor. With a nil part the rest
// of the image is copied. part may be an Integer pixel count, an *Image
// sharing the same storage whose cursor marks the end of the run, or a Pair
// giving a rectangle at the cursor's x, y which is clipped to the image.
func (img *Image) Copy(part Value) (*Image, error) {
	switch p := part.(type) {
	case nil:
		return img.copyRun(img.Length()), nil
	case Integer:
		return img.copyRun(int(p)), nil
	case *Image:
		if p.s != img.s {
			return nil, newError("copy", ErrInvalidArgument, p)
		}
		return img.copyRun(p.pos - img.pos), nil
	case Pair:
		s := img.s
		var x, y int
		if s.width != 0 {
			i := clamp(img.pos, 0, len(s.pix)/bytesPerPixel)
			x, y = i%s.width, i/s.width
		}
		w := min(max(p.X, 0), s.width-x)
		h := min(max(p.Y, 0), s.height-y)
		out := MakeBlackOpaque(w, h)
		raster.CopyRect(out.surface(), 0, 0, out.s.width, out.s.height, img.surface(), x, y)
		return out, nil
	}
	return nil, newError("copy", ErrType, part)
}

// Complement returns a new image of the same size holding the bitwise
// complement of the pixels from the cursor. Alpha is inverted along with
// the colour.
func (img *Image) Complement() *Image {
	out := MakeBlackOpaque(img.s.width, img.s.height)
	raster.Invert(out.s.pix, img.at(), img.Length())
	return out
}
