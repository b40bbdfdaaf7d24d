package main

import (
	"testing"

	"github.com/bodgit/rgba"
	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tables := []struct {
		s    string
		want rgba.Pair
		err  bool
	}{
		{"2x3", rgba.Pair{X: 2, Y: 3}, false},
		{"0x0", rgba.Pair{}, false},
		{"2", rgba.Pair{}, true},
		{"-1x2", rgba.Pair{}, true},
		{"axb", rgba.Pair{}, true},
	}

	for _, table := range tables {
		got, err := parseSize(table.s)
		if table.err {
			assert.Error(t, err, table.s)
			continue
		}
		assert.NoError(t, err, table.s)
		assert.Equal(t, table.want, got)
	}
}

func TestParsePattern(t *testing.T) {
	v, err := parsePattern("1.2.3")
	assert.NoError(t, err)
	assert.Equal(t, rgba.RGB(1, 2, 3), v)

	v, err = parsePattern("128")
	assert.NoError(t, err)
	assert.Equal(t, rgba.Integer(128), v)

	_, err = parsePattern("red")
	assert.Error(t, err)

	_, err = parsePattern("1.2")
	assert.ErrorIs(t, err, rgba.ErrInvalidArgument)
}
