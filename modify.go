package rgba

import (
	"slices"

	"github.com/bodgit/rgba/raster"
)

// ModifyOptions control how much of a value is written by Insert, Append
// and Change.
//
// Dup is nil, an Integer or a Pair. An Integer repeats the value that many
// times along the sequence. A Pair repeats it over a rectangle starting at
// the cursor; the width is clipped to the rest of the row and the height is
// clipped to the rest of the image for Change, whereas Insert grows the
// image by that many whole rows instead.
//
// Part is nil, an Integer, a Pair, an *Image or a Binary and limits how
// much of the value is used. It is only permitted with Binary, Block and
// *Image values.
//
// Only preserves the destination alpha when Change writes a tuple or binary.
type ModifyOptions struct {
	Dup  Value
	Part Value
	Only bool
}

type verb int

const (
	verbInsert verb = iota
	verbAppend
	verbChange
)

func (v verb) String() string {
	switch v {
	case verbInsert:
		return "insert"
	case verbAppend:
		return "append"
	case verbChange:
		return "change"
	}
	return "modify"
}

// Insert writes v at the cursor, growing the image to make room. The
// cursor is unchanged.
func (img *Image) Insert(v Value, opts ModifyOptions) error {
	return img.modify(verbInsert, v, opts)
}

// Append writes v at the tail, growing the image to make room. The cursor
// is always reset to the head.
func (img *Image) Append(v Value, opts ModifyOptions) error {
	return img.modify(verbAppend, v, opts)
}

// Change overwrites the image at the cursor with v. Anything that would
// extend beyond the image is silently clipped.
func (img *Image) Change(v Value, opts ModifyOptions) error {
	return img.modify(verbChange, v, opts)
}

type geometry struct {
	dup, dupX, dupY    int
	part, partX, partY int
	rect               bool
}

func (img *Image) modify(vb verb, arg Value, opts ModifyOptions) error {
	op := vb.String()

	done := func() error {
		if vb == verbAppend {
			img.pos = 0
		}
		return nil
	}

	// Writing nothing is allowed even when protected
	if isEmpty(arg) {
		return done()
	}

	if err := img.ensureMutable(op); err != nil {
		return err
	}

	s := img.s
	w := s.width
	if w == 0 {
		return done()
	}

	tail := img.tail()
	index := img.index()
	if vb == verbAppend {
		index = tail
	}
	insert := vb != verbChange

	x := index % w
	y := index / w

	var alpha byte
	switch a := arg.(type) {
	case Integer:
		if a < 0 || a > 0xff {
			return newError(op, ErrRange, a)
		}
		alpha = byte(a)
	case Tuple, Binary, *Image:
	case Block:
		if v, ok := findNonTuple(a); ok {
			return newError(op, ErrInvalidElement, v)
		}
	default:
		return newError(op, ErrInvalidArgument, arg)
	}

	g := geometry{dup: 1, part: 1}

	switch d := opts.Dup.(type) {
	case nil:
	case Integer:
		g.dup = max(int(d), 0)
		if g.dup == 0 {
			return done()
		}
	case Pair:
		g.rect = true
		g.dupX = clamp(d.X, 0, w-x)
		g.dupY = max(d.Y, 0)
		if insert {
			g.dup = g.dupY * w
		} else {
			g.dupY = min(g.dupY, s.height-y)
		}
		if g.dupX == 0 || g.dupY == 0 {
			return done()
		}
	default:
		return newError(op, ErrType, opts.Dup)
	}

	ok, err := img.partGeometry(op, arg, opts.Part, insert, x, y, &g)
	if err != nil {
		return err
	}
	if !ok {
		return done()
	}

	// Writes are clipped to the rest of the image, or when inserting to the
	// space just made, which may end in a partial row
	limit := tail
	if insert {
		s.expand(index, g.dup*g.part)
		s.resync()
		limit = len(s.pix) / bytesPerPixel
	}

	rgbOnly := opts.Only && !insert
	b := s.pix

	switch a := arg.(type) {
	case Integer:
		if index+g.dup > limit {
			g.dup = limit - index
		}
		if g.rect {
			raster.FillAlphaRect(b[index*bytesPerPixel:], alpha, w, g.dupX, g.dupY)
		} else {
			raster.FillAlphaLine(b[index*bytesPerPixel:], alpha, g.dup)
		}
	case Tuple:
		if index+g.dup > limit {
			g.dup = limit - index
		}
		if g.rect {
			raster.FillRect(b[index*bytesPerPixel:], a.Pixel(), w, g.dupX, g.dupY, rgbOnly)
		} else {
			raster.FillLine(b[index*bytesPerPixel:], a.Pixel(), g.dup, rgbOnly)
		}
	case *Image:
		raster.CopyRect(s.surface(), x, y, g.partX, g.partY, a.surface(), 0, 0)
	case Binary:
		data := a.Bytes()
		part := min(g.part, len(data)/bytesPerPixel)
		for i, left := index, limit-index; g.dup > 0 && left > 0 && part > 0; g.dup-- {
			raster.UnpackRGBA(b[i*bytesPerPixel:], min(part, left), data, rgbOnly)
			i, left = i+part, left-part
		}
	case Block:
		part := min(g.part, limit-index)
		for i, left := index, limit-index; g.dup > 0 && left > 0 && part > 0; g.dup-- {
			tuplesToRGBA(b[i*bytesPerPixel:], min(part, left), a)
			i, left = i+part, left-part
		}
	}

	s.resync()

	return done()
}

// partGeometry works out how much of arg is used. It returns false if the
// result is that nothing is written.
func (img *Image) partGeometry(op string, arg, part Value, insert bool, x, y int, g *geometry) (bool, error) {
	s := img.s
	w := s.width

	rect := func() bool {
		g.partX = clamp(g.partX, 0, w-x)
		g.partY = max(g.partY, 0)
		if insert {
			g.part = g.partY * w
		} else {
			g.partY = min(g.partY, s.height-y)
		}
		return g.partX != 0 && g.partY != 0
	}

	if part == nil {
		switch a := arg.(type) {
		case *Image:
			g.partX = min(a.s.width, w-x)
			g.partY = a.s.height
			if insert {
				g.part = g.partY * w
			} else {
				g.partY = min(g.partY, s.height-y)
			}
		case Binary:
			g.part = len(a.Bytes()) / bytesPerPixel
		case Block:
			g.part = len(a)
		}
		return true, nil
	}

	switch a := arg.(type) {
	case Binary:
		switch p := part.(type) {
		case Integer:
			g.part = int(p)
		case Binary:
			g.part = (p.Index - a.Index) / bytesPerPixel
		default:
			return false, newError(op, ErrType, part)
		}
		g.part = max(g.part, 0)
	case Block:
		p, ok := part.(Integer)
		if !ok {
			return false, newError(op, ErrType, part)
		}
		g.part = clamp(int(p), 0, len(a))
	case *Image:
		switch p := part.(type) {
		case Integer:
			g.part = max(int(p), 0)
		case *Image:
			if p.s.width == 0 {
				return false, newError(op, ErrInvalidArgument, p)
			}
			g.partX = p.pos - a.pos
			g.partY = max(g.partX/p.s.width, 1)
			g.partX = min(g.partX, a.s.width)
			return rect(), nil
		case Pair:
			g.partX, g.partY = p.X, p.Y
			return rect(), nil
		default:
			return false, newError(op, ErrType, part)
		}
	default:
		return false, newError(op, ErrInvalidArgument, arg)
	}

	return true, nil
}

// Remove deletes pixels at the cursor. By default a single pixel is
// removed; part may instead be an Integer count or an *Image whose cursor
// marks the end of the run. Negative counts remove nothing.
func (img *Image) Remove(part Value) error {
	if err := img.ensureMutable("remove"); err != nil {
		return err
	}

	n := 1
	switch p := part.(type) {
	case nil:
	case Integer:
		n = int(p)
	case *Image:
		if p.s.width == 0 {
			return newError("remove", ErrInvalidArgument, p)
		}
		n = p.pos - img.pos
	default:
		return newError("remove", ErrType, part)
	}

	s := img.s
	if img.pos < img.tail() && n > 0 {
		o := img.pos * bytesPerPixel
		n = min(n*bytesPerPixel, len(s.pix)-o)
		s.pix = slices.Delete(s.pix, o, o+n)
	}
	s.resync()

	return nil
}

// Clear truncates the image at the cursor.
func (img *Image) Clear() error {
	if err := img.ensureMutable("clear"); err != nil {
		return err
	}

	s := img.s
	if img.pos < img.tail() {
		s.pix = s.pix[:img.pos*bytesPerPixel]
		s.resync()
	}

	return nil
}
