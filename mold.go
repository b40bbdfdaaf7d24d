package rgba

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const pixelsPerLine = 10

func mold(img *Image, pos int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%dx%d #{", img.s.width, img.s.height)

	n := max(img.tail()-pos, 0)
	b := img.s.pix[min(pos*bytesPerPixel, len(img.s.pix)):]
	for i := 0; i < n; i++ {
		if i%pixelsPerLine == 0 {
			sb.WriteByte('\n')
		}
		o := i * bytesPerPixel
		fmt.Fprintf(&sb, "%X", b[o:o+bytesPerPixel])
	}

	sb.WriteString("\n}")

	return sb.String()
}

// Mold renders the image from the cursor to the tail as text, for example:
//
//	2x1 #{
//	010203FF040506FF
//	}
//
// Each line holds at most ten pixels.
func (img *Image) Mold() string {
	return mold(img, img.index())
}

// MoldAll is like Mold but always renders from the head.
func (img *Image) MoldAll() string {
	return mold(img, 0)
}

// ParseMold is the inverse of MoldAll. The text may optionally be enclosed
// in square brackets.
func ParseMold(text string) (*Image, error) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	size, data, ok := strings.Cut(s, "#{")
	if !ok || !strings.HasSuffix(data, "}") {
		return nil, newError("mold", ErrInvalidArgument, Text(text))
	}

	var w, h int
	if _, err := fmt.Sscanf(strings.TrimSpace(size), "%dx%d", &w, &h); err != nil {
		return nil, newError("mold", ErrInvalidArgument, Text(size))
	}

	b, err := hex.DecodeString(strings.Join(strings.Fields(strings.TrimSuffix(data, "}")), ""))
	if err != nil {
		return nil, newError("mold", ErrInvalidArgument, Text(data))
	}

	return FromBytes(b, w, h)
}

// MarshalText implements encoding.TextMarshaler using MoldAll.
func (img *Image) MarshalText() ([]byte, error) {
	return []byte(img.MoldAll()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMold.
func (img *Image) UnmarshalText(text []byte) error {
	m, err := ParseMold(string(text))
	if err != nil {
		return err
	}
	*img = *m
	return nil
}
