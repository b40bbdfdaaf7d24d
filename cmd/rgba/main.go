package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/rgba"
	"github.com/bodgit/rgba/library"
	"github.com/bodgit/rgba/palette"
	"github.com/bodgit/rgba/resample"
	"github.com/urfave/cli/v2"
)

const defaultDB = "rgba.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openLibrary(c *cli.Context) (*library.Library, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return library.New(c.String("db"), library.Options{
		Logger:  logger,
		Workers: c.Int("workers"),
	})
}

// withImage runs fn against the named image, storing the result under
// --as if given or the original name.
func withImage(c *cli.Context, fn func(*rgba.Image) (*rgba.Image, error)) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	l, err := openLibrary(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer l.Close()

	name := c.Args().First()
	img, err := l.Get(name)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	out, err := fn(img)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if as := c.String("as"); as != "" {
		name = as
	}

	if err := l.Put(name, out); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

var asFlag = &cli.StringFlag{
	Name:  "as",
	Usage: "store the result under `NAME` rather than replacing the original",
}

func main() {
	app := cli.NewApp()

	app.Name = "rgba"
	app.Usage = "RGBA image library utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"RGBA_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"RGBA_WORKERS"},
			Value:   10,
			Usage:   "number of files to decode in parallel",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "make",
			Usage:       "Create an image",
			Description: "Creates a WIDTHxHEIGHT image, printing it or storing it with --as",
			ArgsUsage:   "WIDTHxHEIGHT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "fill",
					Usage: "fill with `R.G.B[.A]`",
				},
				&cli.IntFlag{
					Name:  "alpha",
					Value: -1,
					Usage: "override the alpha of every pixel",
				},
				asFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				size, err := parseSize(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				spec := rgba.Block{size}
				if fill := c.String("fill"); fill != "" {
					t, err := rgba.ParseTuple(fill)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					spec = append(spec, t)
					if c.Int("alpha") >= 0 {
						spec = append(spec, rgba.Integer(c.Int("alpha")))
					}
				} else if c.Int("alpha") >= 0 {
					spec = append(spec, rgba.RGB(0, 0, 0), rgba.Integer(c.Int("alpha")))
				}

				img, err := rgba.Make(spec)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				as := c.String("as")
				if as == "" {
					fmt.Fprintln(c.App.Writer, img.MoldAll())
					return nil
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				if err := l.Put(as, img); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "mold",
			Usage:     "Print an image as text",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "all",
					Usage: "print from the head rather than the cursor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				img, err := l.Get(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				v, err := rgba.Do(img, rgba.MoldOp{All: c.Bool("all")})
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Fprintln(c.App.Writer, v)

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import images from a directory",
			Description: "Imports PNG, JPEG, GIF, BMP and mold files, named by their path relative to DIRECTORY",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				n, err := l.Scan(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Fprintf(c.App.Writer, "Imported %d images\n", n)

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export an image to a file",
			ArgsUsage: "NAME FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Usage: "one of png, bmp, jpeg, gif or mold, otherwise taken from the extension of FILE",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				file := c.Args().Get(1)
				format := c.String("format")
				if format == "" {
					format = library.FormatFromExt(file)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				f, err := os.Create(file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := l.Export(c.Args().First(), f, format); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List stored images",
			Action: func(c *cli.Context) error {
				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				list, err := l.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, info := range list {
					fmt.Fprintf(c.App.Writer, "%s\t%dx%d\t%d\t%s\n", info.Name, info.Width, info.Height, info.Pos+1, info.SHA1)
				}

				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a stored image",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				if err := l.Delete(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "find",
			Usage:       "Find a colour or alpha value in an image",
			Description: "Prints the 1-based index of the first match from the cursor",
			ArgsUsage:   "NAME R.G.B[.A]|ALPHA",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "match",
					Usage: "only match at the cursor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				pattern, err := parsePattern(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				img, err := l.Get(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				found, err := img.Find(pattern, rgba.FindOptions{Match: c.Bool("match")})
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if found == nil {
					return cli.NewExitError("not found", 1)
				}
				fmt.Fprintln(c.App.Writer, found.Index(), found.XY())

				return nil
			},
		},
		{
			Name:      "quantize",
			Usage:     "Reduce the number of colours in an image",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Value: 16,
					Usage: "maximum number of colours",
				},
				&cli.BoolFlag{
					Name:  "merge",
					Usage: "merge the closest existing colours rather than median cut",
				},
				&cli.BoolFlag{
					Name:  "perceptual",
					Usage: "with --merge, compare colours perceptually",
				},
				asFlag,
			},
			Action: func(c *cli.Context) error {
				return withImage(c, func(img *rgba.Image) (*rgba.Image, error) {
					var err error
					switch {
					case c.Bool("merge") && c.Bool("perceptual"):
						_, err = palette.MergePerceptual(img, c.Int("colors"))
					case c.Bool("merge"):
						_, err = palette.Merge(img, c.Int("colors"))
					default:
						_, err = palette.Reduce(img, c.Int("colors"))
					}
					return img, err
				})
			},
		},
		{
			Name:      "colors",
			Usage:     "List the most frequent colours in an image",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "top",
					Value: 10,
					Usage: "number of colours to list",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				l, err := openLibrary(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer l.Close()

				img, err := l.Get(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				counts := palette.Count(img)
				for _, col := range palette.Dominant(img, c.Int("top")) {
					fmt.Fprintf(c.App.Writer, "%s\t%d\n", rgba.RGBA(col.R, col.G, col.B, col.A), counts[col])
				}

				return nil
			},
		},
		{
			Name:      "scale",
			Usage:     "Resize an image",
			ArgsUsage: "NAME WIDTHxHEIGHT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "filter",
					Value: "catmull-rom",
					Usage: "one of " + strings.Join(resample.Names(), ", "),
				},
				&cli.BoolFlag{
					Name:  "fit",
					Usage: "keep the aspect ratio",
				},
				asFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				size, err := parseSize(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				interp, err := resample.Lookup(c.String("filter"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return withImage(c, func(img *rgba.Image) (*rgba.Image, error) {
					if c.Bool("fit") {
						return resample.Fit(img, size.X, size.Y, interp)
					}
					return resample.Scale(img, size.X, size.Y, interp)
				})
			},
		},
		{
			Name:      "invert",
			Usage:     "Invert the colours and alpha of an image from its cursor",
			ArgsUsage: "NAME",
			Flags:     []cli.Flag{asFlag},
			Action: func(c *cli.Context) error {
				return withImage(c, func(img *rgba.Image) (*rgba.Image, error) {
					return img.Complement(), nil
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
