/*
Package library is a store of named rgba images kept in a SQLite database,
along with an importer that populates it from a directory of image files.
*/
package library

import (
	"errors"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/bodgit/rgba"
	"golang.org/x/image/bmp"
)

const defaultWorkers = 10

var (
	// ErrNotFound is returned when there is no image with the given name
	ErrNotFound = errors.New("library: image not found")

	errUnknownFormat = errors.New("library: unknown format")
)

// Options configure a Library.
type Options struct {
	// Logger receives progress messages, nothing is logged if nil
	Logger *log.Logger
	// Workers is the number of files decoded in parallel by Scan,
	// defaulting to 10
	Workers int
}

// Library is a collection of named images.
type Library struct {
	db      *DB
	logger  *log.Logger
	workers int
}

// New opens the library stored in file, creating it if necessary.
func New(file string, opts Options) (*Library, error) {
	db, err := NewDB(file)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Library{
		db:      db,
		logger:  logger,
		workers: workers,
	}, nil
}

// Close closes the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}

// Put stores img under name, replacing any existing image with that name.
// The whole image is stored, including its cursor.
func (l *Library) Put(name string, img *rgba.Image) error {
	return l.db.Put(name, img)
}

// Get returns the image stored under name or ErrNotFound.
func (l *Library) Get(name string) (*rgba.Image, error) {
	return l.db.Get(name)
}

// List describes every stored image, ordered by name.
func (l *Library) List() ([]Info, error) {
	return l.db.List()
}

// Delete removes the image stored under name or returns ErrNotFound.
func (l *Library) Delete(name string) error {
	return l.db.Delete(name)
}

// Formats accepted by Export.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatMold = "mold"
)

// FormatFromExt returns the export format implied by the extension of
// file, or an empty string.
func FormatFromExt(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".gif":
		return FormatGIF
	case ".mold":
		return FormatMold
	}
	return ""
}

// Encode writes the whole grid of img to w in the given format.
func Encode(w io.Writer, img *rgba.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img.NRGBA())
	case FormatBMP:
		return bmp.Encode(w, img.NRGBA())
	case FormatJPEG:
		return jpeg.Encode(w, img.NRGBA(), nil)
	case FormatGIF:
		return gif.Encode(w, img.NRGBA(), nil)
	case FormatMold:
		_, err := io.WriteString(w, img.MoldAll())
		return err
	}
	return errUnknownFormat
}

// Export writes the image stored under name to w in the given format.
func (l *Library) Export(name string, w io.Writer, format string) error {
	img, err := l.db.Get(name)
	if err != nil {
		return err
	}
	return Encode(w, img, format)
}
