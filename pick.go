package rgba

import (
	"github.com/bodgit/rgba/raster"
)

// Property words understood by Pick and Poke.
const (
	WordSize  Word = "size"
	WordRGB   Word = "rgb"
	WordAlpha Word = "alpha"
)

// resolve converts a coordinate picker into an absolute pixel index.
//
// Integer and Decimal pickers are 1-based and relative to the cursor; 0
// never matches. Pair pickers are a 0-based x, y offset from the cursor.
func (img *Image) resolve(op string, picker Value) (int, bool, error) {
	var n int
	switch p := picker.(type) {
	case Integer:
		n = int(p)
	case Decimal:
		n = int(p)
	case Pair:
		i := img.pos + p.Y*img.s.width + p.X
		return i, i >= 0 && i < img.tail(), nil
	default:
		return 0, false, newError(op, ErrType, picker)
	}

	i := img.pos + n
	if n > 0 {
		i--
	}
	if n == 0 || i < 0 || i >= img.tail() {
		return 0, false, nil
	}
	return i, true, nil
}

// Pick returns the value selected by picker:
//
//	Word("size")   Pair of the width and height
//	Word("rgb")    Binary of the RGB bytes from the cursor to the tail
//	Word("alpha")  Binary of the alpha bytes from the cursor to the tail
//	Integer        Tuple of the pixel at the 1-based offset from the cursor
//	Decimal        as Integer, truncated
//	Pair           Tuple of the pixel at the 0-based x, y offset
//
// A coordinate outside the image returns nil.
func (img *Image) Pick(picker Value) (Value, error) {
	if w, ok := picker.(Word); ok {
		n := img.Length()
		switch w {
		case WordSize:
			return Pair{img.s.width, img.s.height}, nil
		case WordRGB:
			return Binary{Data: raster.PackRGB(img.at(), n)}, nil
		case WordAlpha:
			return Binary{Data: raster.PackAlpha(img.at(), n)}, nil
		}
		return nil, newError("pick", ErrType, picker)
	}

	i, ok, err := img.resolve("pick", picker)
	if err != nil || !ok {
		return nil, err
	}

	return TupleFromPixel(img.pixel(i)), nil
}

// Poke updates the image at picker with v:
//
//	Word("size")   v is a Pair with a positive x; the existing bytes are
//	               reinterpreted with the new width, the height is limited
//	               to the whole rows available
//	Word("rgb")    v is a Tuple, a grey level Integer or a Binary of RGB
//	               triples written from the cursor to the tail
//	Word("alpha")  v is an Integer or a Binary of alpha bytes written from
//	               the cursor to the tail
//	coordinate     v is a Tuple replacing the pixel, or an Integer alpha
//	               strictly between 0 and 255
func (img *Image) Poke(picker, v Value) error {
	if err := img.ensureMutable("poke"); err != nil {
		return err
	}

	s := img.s

	if w, ok := picker.(Word); ok {
		n := img.Length()
		switch w {
		case WordSize:
			p, ok := v.(Pair)
			if !ok || p.X == 0 {
				return newError("poke", ErrType, v)
			}
			if p.X < 0 {
				return newError("poke", ErrRange, v)
			}
			s.width = p.X
			s.height = clamp(p.Y, 0, len(s.pix)/bytesPerPixel/p.X)
		case WordRGB:
			switch a := v.(type) {
			case Tuple:
				raster.FillLine(img.at(), a.Pixel(), n, true)
			case Integer:
				if a < 0 || a > 0xff {
					return newError("poke", ErrRange, a)
				}
				c := byte(a)
				raster.FillLine(img.at(), raster.Pixel{c, c, c, raster.Opaque}, n, true)
			case Binary:
				raster.UnpackRGB(img.at(), n, a.Bytes())
			default:
				return newError("poke", ErrType, v)
			}
		case WordAlpha:
			switch a := v.(type) {
			case Integer:
				if a < 0 || a > 0xff {
					return newError("poke", ErrRange, a)
				}
				raster.FillAlphaLine(img.at(), byte(a), n)
			case Binary:
				raster.UnpackAlpha(img.at(), n, a.Bytes())
			default:
				return newError("poke", ErrType, v)
			}
		default:
			return newError("poke", ErrType, picker)
		}
		return nil
	}

	i, ok, err := img.resolve("poke", picker)
	if err != nil {
		return err
	}
	if !ok {
		return newError("poke", ErrRange, picker)
	}

	o := i * bytesPerPixel
	switch a := v.(type) {
	case Tuple:
		px := a.Pixel()
		copy(s.pix[o:o+bytesPerPixel], px[:])
	case Integer:
		// Only the alpha is set, and never to either extreme
		if a <= 0 || a >= 0xff {
			return newError("poke", ErrRange, a)
		}
		s.pix[o+3] = byte(a)
	default:
		return newError("poke", ErrType, v)
	}

	return nil
}
