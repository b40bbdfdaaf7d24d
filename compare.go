package rgba

import (
	"bytes"
	"cmp"
)

// Compare orders two images by width, then height, then cursor, then the
// pixel bytes from the cursor to the end. Bytes before the cursor take no
// part in the comparison. The result is 0 if a == b, -1 if a < b, and +1 if
// a > b.
func Compare(a, b *Image) int {
	if c := cmp.Compare(a.s.width, b.s.width); c != 0 {
		return c
	}
	if c := cmp.Compare(a.s.height, b.s.height); c != 0 {
		return c
	}
	if c := cmp.Compare(a.pos, b.pos); c != 0 {
		return c
	}
	return bytes.Compare(a.at(), b.at())
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Image) bool {
	return Compare(a, b) == 0
}
