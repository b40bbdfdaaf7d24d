package rgba

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var magic = [4]byte{'R', 'G', 'B', 'A'}

var errBadHeader = errors.New("rgba: invalid binary header")

type header struct {
	Magic  [4]byte
	Width  uint32
	Height uint32
	Pos    uint32
	Length uint32
}

// MarshalBinary encodes the image, including its cursor, into binary form
// and returns the result. All multi-byte values are little endian.
func (img *Image) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)

	h := header{
		Magic:  magic,
		Width:  uint32(img.s.width),
		Height: uint32(img.s.height),
		Pos:    uint32(img.index()),
		Length: uint32(len(img.s.pix)),
	}

	if err := binary.Write(b, binary.LittleEndian, &h); err != nil {
		return nil, err
	}

	if _, err := b.Write(img.s.pix); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the image from binary form. The decoded image
// does not share storage with b.
func (img *Image) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return err
	}

	if h.Magic != magic {
		return errBadHeader
	}

	// A width of zero holds no rows. Otherwise height may be below the
	// rows available after a size poke, never above.
	if r.Len() != int(h.Length) || (h.Width == 0 && h.Height != 0) ||
		uint64(h.Width)*uint64(h.Height)*bytesPerPixel > uint64(h.Length) {
		return newError("make", ErrInvalidSize, Pair{int(h.Width), int(h.Height)})
	}

	pix := make([]byte, h.Length)
	if _, err := io.ReadFull(r, pix); err != nil {
		return err
	}

	s := &series{
		pix:    pix,
		width:  int(h.Width),
		height: int(h.Height),
	}

	*img = Image{s: s, pos: min(int(h.Pos), s.width*s.height)}

	return nil
}
