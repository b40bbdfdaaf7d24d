package rgba

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/rgba/raster"
)

// Value is an argument to, or result from, an image operation. The set of
// implementations is closed: Integer, Decimal, Pair, Tuple, Binary, Block,
// Word, Logic, Text and *Image. A nil Value is the null value.
type Value interface {
	isValue()
}

// Integer is a whole number.
type Integer int

// Decimal is a floating point number.
type Decimal float64

// Pair is an x, y pair used for sizes and coordinates.
type Pair struct {
	X, Y int
}

// Binary is a run of bytes with an index into it.
type Binary struct {
	Data  []byte
	Index int
}

// Bytes returns the bytes from the index onwards.
func (b Binary) Bytes() []byte {
	if b.Index < 0 || b.Index > len(b.Data) {
		return nil
	}
	return b.Data[b.Index:]
}

// Block is a list of values.
type Block []Value

// Word names a property such as "size", "rgb" or "alpha".
type Word string

// Logic is a boolean result.
type Logic bool

// Text is a string result.
type Text string

func (Integer) isValue() {}
func (Decimal) isValue() {}
func (Pair) isValue()    {}
func (Binary) isValue()  {}
func (Block) isValue()   {}
func (Word) isValue()    {}
func (Logic) isValue()   {}
func (Text) isValue()    {}
func (Tuple) isValue()   {}

// Tuple is a colour of three (RGB) or four (RGBA) components.
type Tuple struct {
	b [4]byte
	n int
}

// RGB returns a three component tuple.
func RGB(r, g, b byte) Tuple {
	return Tuple{[4]byte{r, g, b, raster.Opaque}, 3}
}

// RGBA returns a four component tuple.
func RGBA(r, g, b, a byte) Tuple {
	return Tuple{[4]byte{r, g, b, a}, 4}
}

// NewTuple returns a tuple from three or four components.
func NewTuple(c ...byte) (Tuple, error) {
	switch len(c) {
	case 3:
		return RGB(c[0], c[1], c[2]), nil
	case 4:
		return RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return Tuple{}, newError("tuple", ErrInvalidArgument, Binary{Data: c})
}

// ParseTuple parses a dotted tuple such as "255.0.0" or "255.0.0.128".
func ParseTuple(s string) (Tuple, error) {
	fields := strings.Split(s, ".")
	c := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Tuple{}, newError("tuple", ErrInvalidArgument, Text(s))
		}
		c = append(c, byte(n))
	}
	return NewTuple(c...)
}

// TupleFromPixel returns a four component tuple for px.
func TupleFromPixel(px raster.Pixel) Tuple {
	return RGBA(px[0], px[1], px[2], px[3])
}

// Len returns the number of components, 3 or 4.
func (t Tuple) Len() int {
	return t.n
}

// Bytes returns the components.
func (t Tuple) Bytes() []byte {
	return append([]byte(nil), t.b[:t.n]...)
}

// Pixel returns the tuple as a pixel, a missing alpha defaults to opaque.
func (t Tuple) Pixel() raster.Pixel {
	px := raster.Pixel(t.b)
	if t.n < 4 {
		px[3] = raster.Opaque
	}
	return px
}

func (t Tuple) String() string {
	s := make([]string, t.n)
	for i := range s {
		s[i] = strconv.Itoa(int(t.b[i]))
	}
	return strings.Join(s, ".")
}

func (p Pair) String() string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

// Format renders v for use in messages.
func Format(v Value) string {
	const maxBytes = 8

	switch v := v.(type) {
	case nil:
		return "null"
	case Integer:
		return strconv.Itoa(int(v))
	case Decimal:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case Pair:
		return v.String()
	case Tuple:
		return v.String()
	case Binary:
		b := v.Bytes()
		if len(b) > maxBytes {
			return fmt.Sprintf("#{%X...}", b[:maxBytes])
		}
		return fmt.Sprintf("#{%X}", b)
	case Block:
		s := make([]string, len(v))
		for i := range v {
			s[i] = Format(v[i])
		}
		return "[" + strings.Join(s, " ") + "]"
	case Word:
		return string(v)
	case Logic:
		return strconv.FormatBool(bool(v))
	case Text:
		return strconv.Quote(string(v))
	case *Image:
		if v == nil {
			return "null"
		}
		return fmt.Sprintf("image %dx%d", v.s.width, v.s.height)
	}
	return fmt.Sprintf("%v", v)
}

// findNonTuple returns the first element of b that is not a tuple.
func findNonTuple(b Block) (Value, bool) {
	for _, v := range b {
		if _, ok := v.(Tuple); !ok {
			return v, true
		}
	}
	return nil, false
}

// tuplesToRGBA writes up to n tuples from b into sequential pixels.
func tuplesToRGBA(p []byte, n int, b Block) {
	n = min(n, len(b))
	for i := 0; i < n; i++ {
		px := b[i].(Tuple).Pixel()
		copy(p[i*bytesPerPixel:], px[:])
	}
}

func isEmpty(v Value) bool {
	switch v := v.(type) {
	case nil:
		return true
	case Block:
		return len(v) == 0
	case Binary:
		return len(v.Bytes()) == 0
	case *Image:
		return v == nil
	}
	return false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
