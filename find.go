package rgba

import (
	"github.com/bodgit/rgba/raster"
)

// FindOptions modify the behaviour of Find. Only Match is meaningful; Case,
// Skip and Part are accepted so they can be rejected with ErrBadRefinement.
type FindOptions struct {
	Match bool
	Case  bool
	Skip  Value
	Part  Value
}

// Find scans from the cursor to the tail for pattern and returns a view
// positioned at the first match, or nil if there is none.
//
// A Tuple pattern matches the colour, ignoring alpha if the tuple only has
// three components. An Integer pattern matches the first pixel with that
// alpha. Image and Binary patterns are not supported and never match.
//
// With Match set the pattern must be found exactly at the cursor and the
// returned view is positioned just past it.
func (img *Image) Find(pattern Value, opts FindOptions) (*Image, error) {
	n := img.Length()
	if n == 0 {
		return nil, nil
	}

	if opts.Case || opts.Skip != nil || opts.Part != nil {
		return nil, newError("find", ErrBadRefinement, pattern)
	}

	b := img.at()
	i := -1

	switch p := pattern.(type) {
	case Tuple:
		i = raster.FindColor(b, p.Pixel(), n, p.Len() < 4)
	case Integer:
		if p < 0 || p > 0xff {
			return nil, newError("find", ErrRange, p)
		}
		i = raster.FindAlpha(b, byte(p), n)
	case *Image, Binary:
	default:
		return nil, newError("find", ErrType, pattern)
	}

	if i < 0 {
		return nil, nil
	}

	if opts.Match {
		if i != 0 {
			return nil, nil
		}
		i++
	}

	return img.view(img.pos + i), nil
}
