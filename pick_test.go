package rgba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickPoke(t *testing.T) {
	img := MakeBlackOpaque(2, 2)

	require.NoError(t, img.Poke(Integer(1), RGB(10, 20, 30)))

	v, err := img.Pick(Integer(1))
	require.NoError(t, err)
	assert.Equal(t, RGBA(10, 20, 30, 255), v)

	v, err = img.Pick(Integer(0))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = img.Pick(Integer(5))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = img.Pick(Decimal(1.9))
	require.NoError(t, err)
	assert.Equal(t, RGBA(10, 20, 30, 255), v)

	require.NoError(t, img.Poke(Pair{1, 1}, RGBA(1, 2, 3, 4)))
	assert.Equal(t, RGBA(1, 2, 3, 4), pixelAt(img, 3))

	v, err = img.Pick(Pair{1, 1})
	require.NoError(t, err)
	assert.Equal(t, RGBA(1, 2, 3, 4), v)

	v, err = img.Pick(Pair{2, 1})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPickRelative(t *testing.T) {
	img := distinct(t, 2, 2)

	view, err := img.At(Integer(3))
	require.NoError(t, err)

	v, err := view.Pick(Integer(1))
	require.NoError(t, err)
	assert.Equal(t, RGBA(2, 3, 4, 5), v)

	v, err = view.Pick(Integer(-1))
	require.NoError(t, err)
	assert.Equal(t, RGBA(1, 2, 3, 4), v)

	v, err = view.Pick(Integer(-3))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPickWords(t *testing.T) {
	img := distinct(t, 2, 1)

	v, err := img.Pick(WordSize)
	require.NoError(t, err)
	assert.Equal(t, Pair{2, 1}, v)

	v, err = img.Pick(WordRGB)
	require.NoError(t, err)
	assert.Equal(t, Binary{Data: []byte{0, 1, 2, 1, 2, 3}}, v)

	v, err = img.Pick(WordAlpha)
	require.NoError(t, err)
	assert.Equal(t, Binary{Data: []byte{3, 4}}, v)

	view, err := img.At(Integer(2))
	require.NoError(t, err)

	v, err = view.Pick(WordAlpha)
	require.NoError(t, err)
	assert.Equal(t, Binary{Data: []byte{4}}, v)

	_, err = img.Pick(Word("bogus"))
	assert.ErrorIs(t, err, ErrType)

	_, err = img.Pick(Logic(true))
	assert.ErrorIs(t, err, ErrType)
}

func TestPokeWords(t *testing.T) {
	img := MakeBlackOpaque(2, 2)

	require.NoError(t, img.Poke(WordRGB, RGB(9, 8, 7)))
	require.NoError(t, img.Poke(WordAlpha, Integer(100)))
	for i := 0; i < 4; i++ {
		assert.Equal(t, RGBA(9, 8, 7, 100), pixelAt(img, i))
	}

	require.NoError(t, img.Poke(WordRGB, Integer(128)))
	assert.Equal(t, RGBA(128, 128, 128, 100), pixelAt(img, 0))

	require.NoError(t, img.Poke(WordRGB, Binary{Data: []byte{1, 2, 3, 4, 5, 6}}))
	assert.Equal(t, RGBA(1, 2, 3, 100), pixelAt(img, 0))
	assert.Equal(t, RGBA(4, 5, 6, 100), pixelAt(img, 1))
	assert.Equal(t, RGBA(128, 128, 128, 100), pixelAt(img, 2))

	require.NoError(t, img.Poke(WordAlpha, Binary{Data: []byte{10, 20, 30, 40}}))
	v, err := img.Pick(WordAlpha)
	require.NoError(t, err)
	assert.Equal(t, Binary{Data: []byte{10, 20, 30, 40}}, v)

	assert.ErrorIs(t, img.Poke(WordRGB, Integer(256)), ErrRange)
	assert.ErrorIs(t, img.Poke(WordAlpha, Integer(-1)), ErrRange)
	assert.ErrorIs(t, img.Poke(WordRGB, Pair{}), ErrType)
	assert.ErrorIs(t, img.Poke(WordAlpha, RGB(1, 1, 1)), ErrType)
	assert.ErrorIs(t, img.Poke(Word("bogus"), Integer(1)), ErrType)
}

func TestPokeSize(t *testing.T) {
	img := MakeBlackOpaque(2, 3)

	require.NoError(t, img.Poke(WordSize, Pair{3, 2}))
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())

	// Height is limited to the rows available
	require.NoError(t, img.Poke(WordSize, Pair{4, 5}))
	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 1, img.Height())

	require.NoError(t, img.Poke(WordSize, Pair{6, -1}))
	assert.Equal(t, 0, img.Height())

	assert.ErrorIs(t, img.Poke(WordSize, Pair{0, 1}), ErrType)
	assert.ErrorIs(t, img.Poke(WordSize, Pair{-1, 1}), ErrRange)
	assert.ErrorIs(t, img.Poke(WordSize, Integer(3)), ErrType)
	assert.Len(t, img.Bytes(), 24)
}

func TestPokeAlpha(t *testing.T) {
	img := MakeBlackOpaque(2, 1)

	require.NoError(t, img.Poke(Integer(2), Integer(128)))
	assert.Equal(t, RGBA(0, 0, 0, 128), pixelAt(img, 1))

	for _, a := range []Integer{0, 255, -1, 300} {
		assert.ErrorIs(t, img.Poke(Integer(1), a), ErrRange, "alpha %d", a)
	}

	assert.ErrorIs(t, img.Poke(Integer(3), RGB(1, 1, 1)), ErrRange)
	assert.ErrorIs(t, img.Poke(Integer(0), RGB(1, 1, 1)), ErrRange)
	assert.ErrorIs(t, img.Poke(Integer(1), Text("x")), ErrType)
	assert.ErrorIs(t, img.Poke(Logic(false), RGB(1, 1, 1)), ErrType)

	img.Protect()
	assert.ErrorIs(t, img.Poke(Integer(1), RGB(1, 1, 1)), ErrImmutable)
}
