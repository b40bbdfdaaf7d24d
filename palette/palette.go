// Package palette counts and reduces the colours used by an rgba.Image.
//
// Every function here works on the whole width by height grid of the image;
// the cursor is ignored and left unchanged.
package palette

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/bodgit/rgba"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/lucasb-eyer/go-colorful"
)

var errNoColors = errors.New("palette: number of colours must be positive")

func pixels(img *rgba.Image) []byte {
	return img.Bytes()[:img.Width()*img.Height()*4]
}

func colorAt(b []byte, o int) color.NRGBA {
	return color.NRGBA{b[o], b[o+1], b[o+2], b[o+3]}
}

func less(a, b color.NRGBA) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	if a.B != b.B {
		return a.B < b.B
	}
	return a.A < b.A
}

// Count returns how many pixels of the image use each colour.
func Count(img *rgba.Image) map[color.NRGBA]int {
	colors := make(map[color.NRGBA]int)
	b := pixels(img)
	for o := 0; o < len(b); o += 4 {
		colors[colorAt(b, o)]++
	}
	return colors
}

func byFrequency(counts map[color.NRGBA]int) []color.NRGBA {
	p := make([]color.NRGBA, 0, len(counts))
	for c := range counts {
		p = append(p, c)
	}
	sort.Slice(p, func(i, j int) bool {
		if counts[p[i]] != counts[p[j]] {
			return counts[p[i]] > counts[p[j]]
		}
		return less(p[i], p[j])
	})
	return p
}

// Dominant returns at most n colours of the image, most frequent first.
// Colours used equally often are ordered by their component values.
func Dominant(img *rgba.Image, n int) []color.NRGBA {
	p := byFrequency(Count(img))
	if n < len(p) {
		p = p[:max(n, 0)]
	}
	return p
}

// Copied from color.sqDiff
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

// Closest returns the two closest colors in p, or nil if p has fewer than
// two colors.
func Closest(p color.Palette) (color.Color, color.Color) {
	var rc1, rc2 color.Color
	bestSum := uint32(1<<32 - 1)
	for i, c1 := range p {
		r1, g1, b1, a1 := c1.RGBA()
		for j, c2 := range p {
			r2, g2, b2, a2 := c2.RGBA()
			if i != j { // Ignore comparing ourselves
				sum := sqDiff(r1, r2) + sqDiff(g1, g2) + sqDiff(b1, b2) + sqDiff(a1, a2)
				if sum < bestSum || rc1 == nil {
					bestSum, rc1, rc2 = sum, c1, c2
				}
			}
		}
	}
	return rc1, rc2
}

// Replace all occurrences of one color with another
func replaceColor(b []byte, o, n color.NRGBA) {
	for i := 0; i < len(b); i += 4 {
		if colorAt(b, i) == o {
			b[i], b[i+1], b[i+2], b[i+3] = n.R, n.G, n.B, n.A
		}
	}
}

func protected(op string, img *rgba.Image) error {
	return &rgba.OperandError{Op: op, Operand: img, Err: rgba.ErrImmutable}
}

func toColorful(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 0xff, G: float64(n.G) / 0xff, B: float64(n.B) / 0xff}, float64(n.A) / 0xff
}

// Distance is the perceptual difference between two colours, the CIEDE2000
// difference of their colour plus the difference in alpha.
func Distance(a, b color.Color) float64 {
	ca, aa := toColorful(a)
	cb, ab := toColorful(b)
	d := aa - ab
	if d < 0 {
		d = -d
	}
	return ca.DistanceCIEDE2000(cb) + d
}

// ClosestPerceptual is like Closest but compares colours using Distance.
func ClosestPerceptual(p color.Palette) (color.Color, color.Color) {
	var rc1, rc2 color.Color
	var best float64
	for i, c1 := range p {
		for j, c2 := range p {
			if i == j {
				continue
			}
			if d := Distance(c1, c2); d < best || rc1 == nil {
				best, rc1, rc2 = d, c1, c2
			}
		}
	}
	return rc1, rc2
}

// Merge reduces the image to at most n colours without introducing any new
// ones. The two closest colours are repeatedly merged, keeping whichever
// is used more often, until few enough remain. It returns the colours left,
// most frequent first.
func Merge(img *rgba.Image, n int) (color.Palette, error) {
	return merge("merge", img, n, Closest)
}

// MergePerceptual is like Merge but picks the colours to merge using
// ClosestPerceptual.
func MergePerceptual(img *rgba.Image, n int) (color.Palette, error) {
	return merge("merge", img, n, ClosestPerceptual)
}

func merge(op string, img *rgba.Image, n int, closest func(color.Palette) (color.Color, color.Color)) (color.Palette, error) {
	if n < 1 {
		return nil, errNoColors
	}
	if img.Protected() {
		return nil, protected(op, img)
	}

	b := pixels(img)
	global := Count(img)

	p := make(color.Palette, 0, len(global))
	for _, c := range byFrequency(global) {
		p = append(p, c)
	}

	for len(p) > n {
		// Find the two closest colors
		c1, c2 := closest(p)
		k1, k2 := c1.(color.NRGBA), c2.(color.NRGBA)

		// Keep whichever color appears more frequently in the image
		// and replace any occurrence of the other color
		keep, drop := k2, k1
		if global[k1] > global[k2] {
			keep, drop = k1, k2
		}
		replaceColor(b, drop, keep)
		global[keep] += global[drop]

		// Forget the less frequent color
		i := p.Index(drop)
		p = append(p[:i], p[i+1:]...)
		delete(global, drop)
	}

	out := make(color.Palette, 0, len(p))
	for _, c := range byFrequency(global) {
		out = append(out, c)
	}

	return out, nil
}

// Reduce quantizes the image in place to at most n colours using median
// cut and returns the palette used.
func Reduce(img *rgba.Image, n int) (color.Palette, error) {
	if n < 1 {
		return nil, errNoColors
	}
	if img.Protected() {
		return nil, protected("quantize", img)
	}

	m := img.NRGBA()
	r := m.Bounds()
	if r.Empty() {
		return nil, nil
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), m)

	tmp := image.NewPaletted(r, p)
	draw.Draw(tmp, r, m, r.Min, draw.Src)
	draw.Draw(m, r, tmp, r.Min, draw.Src)

	return p, nil
}
