// Package resample scales rgba images.
package resample

import (
	"errors"
	"sort"

	"github.com/bodgit/rgba"
	xdraw "golang.org/x/image/draw"
)

var errUnknownInterpolator = errors.New("resample: unknown interpolator")

var interpolators = map[string]xdraw.Interpolator{
	"nearest":         xdraw.NearestNeighbor,
	"approx-bilinear": xdraw.ApproxBiLinear,
	"bilinear":        xdraw.BiLinear,
	"catmull-rom":     xdraw.CatmullRom,
}

// Default is used when no interpolator is given.
var Default xdraw.Interpolator = xdraw.CatmullRom

// Lookup returns the interpolator with the given name.
func Lookup(name string) (xdraw.Interpolator, error) {
	if i, ok := interpolators[name]; ok {
		return i, nil
	}
	return nil, errUnknownInterpolator
}

// Names returns the names accepted by Lookup in sorted order.
func Names() []string {
	names := make([]string, 0, len(interpolators))
	for n := range interpolators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scale returns a new w by h image holding the whole grid of img scaled to
// fit. The source is not modified and the new cursor is at the head. An
// empty source gives an opaque black result.
func Scale(img *rgba.Image, w, h int, interp xdraw.Interpolator) (*rgba.Image, error) {
	if w < 0 || h < 0 {
		return nil, &rgba.OperandError{Op: "scale", Operand: rgba.Pair{X: w, Y: h}, Err: rgba.ErrRange}
	}
	if interp == nil {
		interp = Default
	}

	out := rgba.MakeBlackOpaque(w, h)

	src := img.NRGBA()
	if src.Bounds().Empty() || w == 0 || h == 0 {
		return out, nil
	}

	dst := out.NRGBA()
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return out, nil
}

// Fit is like Scale but keeps the aspect ratio, so the result is no larger
// than w by h and at least one pixel in each direction.
func Fit(img *rgba.Image, w, h int, interp xdraw.Interpolator) (*rgba.Image, error) {
	sw, sh := img.Width(), img.Height()
	if sw == 0 || sh == 0 || w <= 0 || h <= 0 {
		return Scale(img, w, h, interp)
	}

	// Calculate scaling factor
	scale := min(float64(w)/float64(sw), float64(h)/float64(sh))

	// Calculate scaled dimensions
	scaledW := max(int(float64(sw)*scale), 1)
	scaledH := max(int(float64(sh)*scale), 1)

	return Scale(img, scaledW, scaledH, interp)
}
