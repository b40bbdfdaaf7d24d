package rgba

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMold(t *testing.T) {
	img, err := FromBytes([]byte{1, 2, 3, 255, 4, 5, 6, 255}, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "2x1 #{\n010203FF040506FF\n}", img.Mold())

	view, err := img.At(Integer(2))
	require.NoError(t, err)
	assert.Equal(t, "2x1 #{\n040506FF\n}", view.Mold())
	assert.Equal(t, img.Mold(), view.MoldAll())

	assert.Equal(t, "2x1 #{\n}", img.Tail().Mold())
	assert.Equal(t, "0x0 #{\n}", MakeBlackOpaque(0, 0).Mold())
}

func TestMoldLineBreaks(t *testing.T) {
	img := MakeBlackOpaque(11, 1)
	want := "11x1 #{\n" + strings.Repeat("000000FF", 10) + "\n000000FF\n}"
	assert.Equal(t, want, img.Mold())
}

func TestParseMold(t *testing.T) {
	img := distinct(t, 4, 3)

	for _, text := range []string{img.MoldAll(), "[" + img.MoldAll() + "]", "  [ " + img.MoldAll() + " ]\n"} {
		m, err := ParseMold(text)
		require.NoError(t, err)
		assert.True(t, Equal(img, m))
	}

	tables := []struct {
		text string
		err  error
	}{
		{"bogus", ErrInvalidArgument},
		{"2x1 #{00", ErrInvalidArgument},
		{"2 by 1 #{\n}", ErrInvalidArgument},
		{"1x1 #{zz000000}", ErrInvalidArgument},
		{"2x1 #{000000FF}", ErrInvalidSize},
	}

	for _, table := range tables {
		_, err := ParseMold(table.text)
		assert.ErrorIs(t, err, table.err, table.text)
	}
}

func TestMarshalText(t *testing.T) {
	img := distinct(t, 2, 2)

	b, err := img.MarshalText()
	require.NoError(t, err)

	var m Image
	require.NoError(t, m.UnmarshalText(b))
	assert.True(t, Equal(img, &m))

	assert.Error(t, m.UnmarshalText([]byte("nope")))
}
