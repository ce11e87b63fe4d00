package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/romgfx"
	"github.com/bodgit/romgfx/gfx"
	"github.com/urfave/cli/v2"
)

const defaultDB = "romgfx.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func withCatalog(c *cli.Context, fn func(*romgfx.ROMGfx) error) error {
	db, err := romgfx.NewCatalog(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	if err := fn(romgfx.New(db, newLogger(c))); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func renderOptions(c *cli.Context, db *romgfx.Catalog) (romgfx.Options, error) {
	p, err := db.Palette(c.String("palette"))
	if err != nil {
		return romgfx.Options{}, err
	}
	g, err := db.Graphics(c.String("gfx"))
	if err != nil {
		return romgfx.Options{}, err
	}
	return romgfx.Options{
		Palette:      p,
		Graphics:     g,
		StartAddress: c.Int("start"),
		ZeroTile:     c.Int("zero"),
		ViewWidth:    c.Int("width"),
		ViewHeight:   c.Int("height"),
		Zoom:         c.Int("zoom"),
		Selection:    c.String("select"),
	}, nil
}

var renderFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "palette",
		Usage:    "name of imported palette",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "gfx",
		Usage:    "name of imported graphics",
		Required: true,
	},
	&cli.IntFlag{
		Name:  "start",
		Usage: "address of the first tile",
	},
	&cli.IntFlag{
		Name:  "zero",
		Usage: "first tile to draw",
	},
	&cli.IntFlag{
		Name:  "width",
		Usage: "tiles per row",
		Value: 16,
	},
	&cli.IntFlag{
		Name:  "height",
		Usage: "number of rows, 0 draws every tile",
	},
	&cli.IntFlag{
		Name:  "zoom",
		Usage: "zoom factor",
		Value: 1,
	},
	&cli.StringFlag{
		Name:  "select",
		Usage: "dim tiles outside of N, A-B or X1,Y1:X2,Y2",
	},
}

func importCommand(name, usage string, flags []cli.Flag, fn func(*cli.Context, *romgfx.Catalog, string, string) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "NAME FILE",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			return withCatalog(c, func(m *romgfx.ROMGfx) error {
				return fn(c, m.Catalog(), c.Args().Get(0), c.Args().Get(1))
			})
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "romgfx"
	app.Usage = "SNES ROM graphics utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"ROMGFX_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "import",
			Usage: "Import palettes, graphics and object tiles",
			Subcommands: []*cli.Command{
				importCommand("palette", "Import a palette from CGRAM, .pal or image file", nil, func(c *cli.Context, db *romgfx.Catalog, name, file string) error {
					return db.ImportPalette(name, file)
				}),
				importCommand("gfx", "Import graphics tiles from a bitplane or image file", []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "bitplane format, one of 1bpp, 2bpp, 4bpp or 8bpp",
						Value: "4bpp",
					},
				}, func(c *cli.Context, db *romgfx.Catalog, name, file string) error {
					f, err := gfx.ParseFormat(c.String("format"))
					if err != nil {
						return err
					}
					return db.ImportGraphics(name, file, f)
				}),
				importCommand("objects", "Import 16x16 object tile data", nil, func(c *cli.Context, db *romgfx.Catalog, name, file string) error {
					return db.ImportObjects(name, file)
				}),
			},
		},
		{
			Name:        "render",
			Usage:       "Render object tile data to a PNG image",
			Description: "With --objects the data is read from the catalog and only OUTPUT is given",
			ArgsUsage:   "[FILE] OUTPUT",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "objects",
					Usage: "name of imported object tile data",
				},
			}, renderFlags...),
			Action: func(c *cli.Context) error {
				objects := c.String("objects")
				if (objects == "" && c.NArg() < 2) || c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withCatalog(c, func(m *romgfx.ROMGfx) error {
					opts, err := renderOptions(c, m.Catalog())
					if err != nil {
						return err
					}
					if objects != "" {
						return m.RenderObjects(objects, c.Args().First(), opts)
					}
					return m.RenderFile(c.Args().Get(0), c.Args().Get(1), opts)
				})
			},
		},
		{
			Name:        "batch",
			Usage:       "Render every object tile file in a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags:       renderFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withCatalog(c, func(m *romgfx.ROMGfx) error {
					opts, err := renderOptions(c, m.Catalog())
					if err != nil {
						return err
					}
					return m.RenderDirectory(c.Args().First(), opts)
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
