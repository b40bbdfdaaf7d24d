package library

import (
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/rgba"
	_ "golang.org/x/image/bmp"
)

// Ignore any file greater than 64 MB
const maxFileSize = 64 << (10 * 2)

// Replaced in tests to fail the walk part way through.
var walk = filepath.Walk

type entry struct {
	name string
	img  *rgba.Image
}

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".mold":
		return true
	}
	return false
}

func decodeFile(file string) (*rgba.Image, error) {
	if strings.ToLower(filepath.Ext(file)) == ".mold" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return rgba.ParseMold(string(b))
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return rgba.FromImage(m), nil
}

func (l *Library) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			if info.Size() > maxFileSize {
				l.logger.Printf("Skipping \"%s\", too large\n", file)
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (l *Library) decodeWorker(ctx context.Context, base string, in <-chan string) (<-chan entry, <-chan error, error) {
	out := make(chan entry)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for file := range in {
			rel, err := filepath.Rel(base, file)
			if err != nil {
				errc <- err
				return
			}

			img, err := decodeFile(file)
			if err != nil {
				l.logger.Printf("Unable to decode \"%s\": %v\n", file, err)
				continue
			}

			select {
			case out <- entry{filepath.ToSlash(rel), img}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc, nil
}

func (l *Library) storer(in <-chan entry) (<-chan error, <-chan int, error) {
	errc := make(chan error, 1)
	countc := make(chan int, 1)
	go func() {
		var count int
		defer close(errc)
		defer func() {
			countc <- count
			close(countc)
		}()
		for e := range in {
			if err := l.db.Put(e.name, e.img); err != nil {
				errc <- err
				return
			}
			l.logger.Printf("Imported \"%s\" (%dx%d)\n", e.name, e.img.Width(), e.img.Height())
			count++
		}
	}()
	return errc, countc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func mergeEntries(ctx context.Context, cs ...<-chan entry) <-chan entry {
	var wg sync.WaitGroup
	out := make(chan entry)
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan entry) {
			defer wg.Done()
			for e := range c {
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path importing every PNG, JPEG, GIF, BMP and mold file it
// finds. Each image is stored under its slash separated path relative to
// path. Hidden files and directories are skipped, as are files that fail
// to decode. It returns the number of images imported.
func (l *Library) Scan(path string) (int, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := l.findFiles(ctx, dir)
	if err != nil {
		return 0, err
	}
	errcList = append(errcList, errc)

	var entries []<-chan entry
	for i := 0; i < l.workers; i++ {
		out, errc, err := l.decodeWorker(ctx, dir, files)
		if err != nil {
			return 0, err
		}
		entries = append(entries, out)
		errcList = append(errcList, errc)
	}

	errc, countc, err := l.storer(mergeEntries(ctx, entries...))
	if err != nil {
		return 0, err
	}
	errcList = append(errcList, errc)

	err = waitForPipeline(errcList...)

	// Unblock the remaining stages and wait for the storer to finish
	cancelFunc()
	count := <-countc

	return count, err
}
