package rgba

import (
	"github.com/bodgit/rgba/raster"
)

// FromFillTuple returns a w by h image with every pixel set to t. The alpha
// is taken from t when it has four components, otherwise it is opaque.
func FromFillTuple(w, h int, t Tuple) *Image {
	img := MakeBlackOpaque(w, h)
	s := img.s
	raster.FillRect(s.pix, t.Pixel(), s.width, s.width, s.height, t.Len() < 4)
	return img
}

// FromFillTupleAlpha is like FromFillTuple but then overrides the alpha of
// every pixel. The alpha must be within 0 to 255.
func FromFillTupleAlpha(w, h int, t Tuple, alpha int) (*Image, error) {
	if alpha < 0 || alpha > 0xff {
		return nil, newError("make", ErrRange, Integer(alpha))
	}
	img := FromFillTuple(w, h, t)
	s := img.s
	raster.FillAlphaRect(s.pix, byte(alpha), s.width, s.width, s.height)
	return img, nil
}

// FromTupleList returns a w by h opaque black image with the tuples in list
// written to it in row-major order. Any tuples beyond w*h are ignored. If
// list contains anything other than a tuple ErrInvalidElement is returned
// and nothing is written.
func FromTupleList(w, h int, list Block) (*Image, error) {
	if v, ok := findNonTuple(list); ok {
		return nil, newError("make", ErrInvalidElement, v)
	}
	img := MakeBlackOpaque(w, h)
	tuplesToRGBA(img.s.pix, img.tail(), list)
	return img, nil
}

// Make creates an image from a specification:
//
//	nil                          0x0 image
//	Pair                         opaque black image of that size
//	*Image                       copy of the image from its cursor
//	Block{Pair}                  opaque black image of that size
//	Block{Pair, Binary}          image using the bytes as-is
//	Block{Pair, Binary, Integer} as above with a 1-based cursor
//	Block{Pair, Tuple}           image filled with the tuple
//	Block{Pair, Tuple, Integer}  as above with the alpha overridden
//	Block{Pair, Block}           image from a list of tuples
func Make(spec Value) (*Image, error) {
	switch v := spec.(type) {
	case nil:
		return MakeBlackOpaque(0, 0), nil
	case Pair:
		return MakeBlackOpaque(v.X, v.Y), nil
	case *Image:
		if v == nil {
			return MakeBlackOpaque(0, 0), nil
		}
		return v.copyRun(v.Length()), nil
	case Block:
		return makeFromBlock(v)
	}
	return nil, newError("make", ErrType, spec)
}

func makeFromBlock(b Block) (*Image, error) {
	if len(b) == 0 {
		return nil, newError("make", ErrInvalidArgument, b)
	}
	size, ok := b[0].(Pair)
	if !ok || size.X < 0 || size.Y < 0 {
		return nil, newError("make", ErrInvalidArgument, b)
	}
	w, h := size.X, size.Y

	rest := b[1:]
	if len(rest) == 0 {
		return MakeBlackOpaque(w, h), nil
	}

	var (
		img *Image
		err error
	)

	switch v := rest[0].(type) {
	case Binary:
		if v.Index != 0 {
			return nil, newError("make", ErrInvalidArgument, v)
		}
		rest = rest[1:]
		if len(rest) > 0 {
			if i, ok := rest[0].(Integer); ok {
				rest = rest[1:]
				img, err = FromBytesAt(v.Data, w, h, int(i))
				break
			}
		}
		img, err = FromBytes(v.Data, w, h)
	case Tuple:
		rest = rest[1:]
		if len(rest) > 0 {
			if i, ok := rest[0].(Integer); ok {
				rest = rest[1:]
				img, err = FromFillTupleAlpha(w, h, v, int(i))
				break
			}
		}
		img = FromFillTuple(w, h, v)
	case Block:
		rest = rest[1:]
		img, err = FromTupleList(w, h, v)
	default:
		return nil, newError("make", ErrInvalidArgument, v)
	}

	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, newError("make", ErrInvalidArgument, rest[0])
	}

	return img, nil
}
