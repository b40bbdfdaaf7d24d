package rgba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = RGBA(0, 0, 0, 255)

func pixelAt(img *Image, i int) Tuple {
	return TupleFromPixel(img.pixel(i))
}

func TestMakeBlackOpaque(t *testing.T) {
	tables := []struct {
		w, h    int
		wantW   int
		wantH   int
		wantLen int
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 4},
		{3, 2, 3, 2, 24},
		{-1, 5, 0, 5, 0},
		{4, -3, 4, 0, 0},
	}

	for _, table := range tables {
		img := MakeBlackOpaque(table.w, table.h)
		assert.Equal(t, table.wantW, img.Width())
		assert.Equal(t, table.wantH, img.Height())
		require.Len(t, img.Bytes(), table.wantLen)
		for i, b := range img.Bytes() {
			if i%4 == 3 {
				assert.Equal(t, byte(255), b)
			} else {
				assert.Equal(t, byte(0), b)
			}
		}
		assert.Equal(t, 0, img.Pos())
	}
}

func TestFromBytes(t *testing.T) {
	b := make([]byte, 2*2*4)
	img, err := FromBytes(b, 2, 2)
	require.NoError(t, err)

	// Storage is adopted, not copied
	b[0] = 0x42
	assert.Equal(t, RGBA(0x42, 0, 0, 0), pixelAt(img, 0))

	for _, size := range [][2]int{{2, 1}, {1, 2}, {3, 3}, {-2, -2}} {
		_, err := FromBytes(b, size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}

	img, err = FromBytesAt(b, 2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Pos())

	img, err = FromBytesAt(b, 2, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Pos())

	_, err = FromBytesAt(b, 2, 2, 0)
	assert.ErrorIs(t, err, ErrRange)
}

func TestProtect(t *testing.T) {
	img := MakeBlackOpaque(2, 2)
	view, err := img.At(Integer(3))
	require.NoError(t, err)

	img.Protect()
	assert.True(t, view.Protected())

	assert.ErrorIs(t, view.Poke(Integer(1), RGB(1, 1, 1)), ErrImmutable)
	assert.ErrorIs(t, view.Insert(RGB(1, 1, 1), ModifyOptions{}), ErrImmutable)
	assert.ErrorIs(t, view.Change(Integer(3), ModifyOptions{}), ErrImmutable)
	assert.ErrorIs(t, view.Remove(nil), ErrImmutable)
	assert.ErrorIs(t, view.Clear(), ErrImmutable)

	// Appending nothing is not a mutation
	assert.NoError(t, view.Append(nil, ModifyOptions{}))
	assert.Equal(t, 0, view.Pos())

	img.Unprotect()
	assert.NoError(t, img.Poke(Integer(1), RGB(1, 1, 1)))
}

func TestHasAlpha(t *testing.T) {
	assert.True(t, MakeBlackOpaque(2, 2).HasAlpha())

	img, err := FromFillTupleAlpha(2, 2, RGB(1, 2, 3), 0)
	require.NoError(t, err)
	assert.False(t, img.HasAlpha())
}

func TestOperandError(t *testing.T) {
	err := MakeBlackOpaque(1, 1).Poke(Word("bogus"), Integer(1))
	require.Error(t, err)

	var oe *OperandError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "poke", oe.Op)
	assert.Equal(t, Word("bogus"), oe.Operand)
	assert.Equal(t, "poke bogus: rgba: invalid type", err.Error())
}
