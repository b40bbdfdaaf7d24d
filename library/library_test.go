package library

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/rgba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func newLibrary(t *testing.T) *Library {
	t.Helper()
	l, err := New(filepath.Join(t.TempDir(), "test.db"), Options{Workers: 2})
	require.NoError(t, err)
	t.Cleanup(func() {
		l.Close()
	})
	return l
}

func countPixels(t *testing.T, l *Library) int {
	t.Helper()
	var n int
	require.NoError(t, l.db.db.QueryRow("SELECT COUNT(*) FROM pixels").Scan(&n))
	return n
}

func TestPutGet(t *testing.T) {
	l := newLibrary(t)

	img := rgba.FromFillTuple(3, 2, rgba.RGB(1, 2, 3))
	require.NoError(t, img.Append(rgba.RGB(4, 5, 6), rgba.ModifyOptions{}))
	view, err := img.At(rgba.Integer(4))
	require.NoError(t, err)

	require.NoError(t, l.Put("a", view))

	got, err := l.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Width())
	assert.Equal(t, 2, got.Height())
	assert.Equal(t, 3, got.Pos())
	assert.Equal(t, img.Bytes(), got.Bytes())
	assert.True(t, rgba.Equal(view, got))

	_, err = l.Get("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestPutReplaceAndDedupe(t *testing.T) {
	l := newLibrary(t)

	red := rgba.FromFillTuple(2, 2, rgba.RGB(255, 0, 0))
	blue := rgba.FromFillTuple(2, 2, rgba.RGB(0, 0, 255))

	require.NoError(t, l.Put("one", red))
	require.NoError(t, l.Put("two", red))
	assert.Equal(t, 1, countPixels(t, l))

	require.NoError(t, l.Put("two", blue))
	assert.Equal(t, 2, countPixels(t, l))

	got, err := l.Get("two")
	require.NoError(t, err)
	assert.True(t, rgba.Equal(blue, got))

	list, err := l.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Name)
	assert.Equal(t, "two", list[1].Name)
	assert.Equal(t, 2, list[1].Width)
	assert.Len(t, list[0].SHA1, 40)
	assert.NotEqual(t, list[0].SHA1, list[1].SHA1)

	require.NoError(t, l.Delete("one"))
	assert.Equal(t, 1, countPixels(t, l))
	assert.Equal(t, ErrNotFound, l.Delete("one"))

	list, err = l.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "two", list[0].Name)
}

func TestEncode(t *testing.T) {
	img := rgba.FromFillTuple(2, 1, rgba.RGB(10, 20, 30))
	require.NoError(t, img.Poke(rgba.Integer(2), rgba.RGBA(40, 50, 60, 70)))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, img, FormatPNG))
	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, img.Bytes(), rgba.FromImage(m).Bytes())

	b.Reset()
	require.NoError(t, Encode(b, img, FormatMold))
	assert.Equal(t, img.MoldAll(), b.String())

	opaque := rgba.FromFillTuple(2, 2, rgba.RGB(10, 20, 30))
	b.Reset()
	require.NoError(t, Encode(b, opaque, FormatBMP))
	m, err = bmp.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, opaque.Bytes(), rgba.FromImage(m).Bytes())

	for _, format := range []string{FormatJPEG, FormatGIF} {
		b.Reset()
		require.NoError(t, Encode(b, opaque, format))
		m, _, err := image.Decode(b)
		require.NoError(t, err, format)
		assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())
	}

	assert.Error(t, Encode(b, img, "tiff"))
}

func TestFormatFromExt(t *testing.T) {
	tables := map[string]string{
		"a.png":      FormatPNG,
		"a.PNG":      FormatPNG,
		"b.bmp":      FormatBMP,
		"c.jpg":      FormatJPEG,
		"c.jpeg":     FormatJPEG,
		"d.gif":      FormatGIF,
		"e.mold":     FormatMold,
		"f.tiff":     "",
		"no-ext":     "",
		"dir.png/xx": "",
	}
	for file, want := range tables {
		assert.Equal(t, want, FormatFromExt(file), file)
	}
}

func writeFile(t *testing.T, file string, encode func(*os.File) error) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "red.png"), func(f *os.File) error {
		return png.Encode(f, solid(2, 2, color.NRGBA{255, 0, 0, 255}))
	})
	writeFile(t, filepath.Join(dir, "blue.bmp"), func(f *os.File) error {
		return bmp.Encode(f, solid(3, 1, color.NRGBA{0, 0, 255, 255}))
	})
	writeFile(t, filepath.Join(dir, "grey.mold"), func(f *os.File) error {
		_, err := f.WriteString("[1x2 #{\n808080FF808080FF\n}]")
		return err
	})
	writeFile(t, filepath.Join(dir, "sub", "pal.gif"), func(f *os.File) error {
		m := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.RGBA{1, 2, 3, 255}})
		return gif.Encode(f, m, nil)
	})
	writeFile(t, filepath.Join(dir, ".hidden.png"), func(f *os.File) error {
		return png.Encode(f, solid(1, 1, color.NRGBA{}))
	})
	writeFile(t, filepath.Join(dir, ".git", "x.png"), func(f *os.File) error {
		return png.Encode(f, solid(1, 1, color.NRGBA{}))
	})
	writeFile(t, filepath.Join(dir, "broken.png"), func(f *os.File) error {
		_, err := f.WriteString("not a png")
		return err
	})
	writeFile(t, filepath.Join(dir, "notes.txt"), func(f *os.File) error {
		_, err := f.WriteString("ignored")
		return err
	})

	l := newLibrary(t)

	n, err := l.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	list, err := l.List()
	require.NoError(t, err)

	names := make([]string, len(list))
	for i, info := range list {
		names[i] = info.Name
	}
	assert.Equal(t, []string{"blue.bmp", "grey.mold", "red.png", "sub/pal.gif"}, names)

	tables := []struct {
		name string
		w, h int
		want rgba.Tuple
	}{
		{"red.png", 2, 2, rgba.RGBA(255, 0, 0, 255)},
		{"blue.bmp", 3, 1, rgba.RGBA(0, 0, 255, 255)},
		{"grey.mold", 1, 2, rgba.RGBA(128, 128, 128, 255)},
		{"sub/pal.gif", 1, 1, rgba.RGBA(1, 2, 3, 255)},
	}

	for _, table := range tables {
		img, err := l.Get(table.name)
		require.NoError(t, err, table.name)
		assert.Equal(t, table.w, img.Width(), table.name)
		assert.Equal(t, table.h, img.Height(), table.name)
		v, err := img.Pick(rgba.Integer(1))
		require.NoError(t, err)
		assert.Equal(t, table.want, v, table.name)
	}

	b := new(bytes.Buffer)
	require.NoError(t, l.Export("red.png", b, FormatMold))
	assert.Equal(t, "2x2 #{\nFF0000FFFF0000FFFF0000FFFF0000FF\n}", b.String())

	assert.Equal(t, ErrNotFound, l.Export("missing", b, FormatPNG))
}

func TestScanWalkError(t *testing.T) {
	dir := t.TempDir()

	var files []string
	for name, c := range map[string]color.NRGBA{
		"red.png":   {255, 0, 0, 255},
		"green.png": {0, 255, 0, 255},
		"blue.png":  {0, 0, 255, 255},
	} {
		file := filepath.Join(dir, name)
		writeFile(t, file, func(f *os.File) error {
			return png.Encode(f, solid(2, 2, c))
		})
		files = append(files, file)
	}

	errWalk := errors.New("walk failed")

	defer func(w func(string, filepath.WalkFunc) error) {
		walk = w
	}(walk)
	walk = func(root string, fn filepath.WalkFunc) error {
		for _, file := range files {
			info, err := os.Lstat(file)
			if err := fn(file, info, err); err != nil {
				return err
			}
		}
		return errWalk
	}

	l := newLibrary(t)

	n, err := l.Scan(dir)
	assert.ErrorIs(t, err, errWalk)

	// Everything counted is stored and nothing arrives late
	list, err := l.List()
	require.NoError(t, err)
	assert.Len(t, list, n)
	assert.LessOrEqual(t, n, len(files))

	require.NoError(t, l.Close())
}

func TestScanMissing(t *testing.T) {
	l := newLibrary(t)

	_, err := l.Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
