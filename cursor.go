package rgba

// Head returns a view of the image at the first pixel.
func (img *Image) Head() *Image {
	return img.view(0)
}

// Tail returns a view of the image just past the last pixel.
func (img *Image) Tail() *Image {
	return img.view(img.tail())
}

// IsHead reports whether the cursor is at the first pixel.
func (img *Image) IsHead() bool {
	return img.index() == 0
}

// IsTail reports whether the cursor is at or past the last pixel.
func (img *Image) IsTail() bool {
	return img.index() >= img.tail()
}

// XY returns the cursor as a 0-based column and row.
func (img *Image) XY() Pair {
	if img.s.width == 0 {
		return Pair{}
	}
	i := img.index()
	return Pair{i % img.s.width, i / img.s.width}
}

// Index returns the 1-based cursor.
func (img *Image) Index() int {
	return img.index() + 1
}

// Length returns the number of pixels from the cursor to the tail.
func (img *Image) Length() int {
	return max(img.tail()-img.pos, 0)
}

// Bytes returns the storage of the image regardless of the cursor. It is
// not a copy.
func (img *Image) Bytes() []byte {
	return img.s.pix
}

// At returns a view with the cursor moved to n. An Integer or Decimal is a
// 1-based offset from the current cursor, a Pair is a 0-based x, y offset.
// The result is clamped to the image.
func (img *Image) At(n Value) (*Image, error) {
	return img.move("at", n, false)
}

// Skip returns a view with the cursor moved by n pixels, or by x, y for a
// Pair. The result is clamped to the image.
func (img *Image) Skip(n Value) (*Image, error) {
	return img.move("skip", n, true)
}

func (img *Image) move(op string, arg Value, skip bool) (*Image, error) {
	var diff int
	switch a := arg.(type) {
	case Pair:
		skip = true
		diff = a.Y*img.s.width + a.X
	case Integer:
		diff = int(a)
	case Decimal:
		diff = int(a)
	default:
		return nil, newError(op, ErrType, arg)
	}

	i := img.index() + diff
	if !skip && diff > 0 {
		i--
	}

	return img.view(clamp(i, 0, img.tail())), nil
}
