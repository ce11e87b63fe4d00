package romgfx

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register image formats
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/gfx"
	"github.com/bodgit/romgfx/obj16"
	"github.com/bodgit/romgfx/palette"
	_ "github.com/mattn/go-sqlite3" // database/sql driver
)

// ErrNotFound is returned when a named asset is not in the catalog.
var ErrNotFound = errors.New("romgfx: not found")

const (
	tablePalette  = "palette"
	tableGraphics = "graphics"
	tableObjects  = "objects"
)

// Catalog stores named palettes, graphics and object tile data in a SQLite
// database.
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens or creates the catalog in file.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS graphics (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, format INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS objects (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".gif", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Read all of file, returning the contents and their SHA-1
func readFile(file string) ([]byte, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	h := sha1.New()
	b, err := ioutil.ReadAll(io.TeeReader(f, h))
	if err != nil {
		return nil, "", err
	}
	return b, fmt.Sprintf("%X", h.Sum(nil)), nil
}

func decodeImage(b []byte) (image.Image, error) {
	m, _, err := image.Decode(bytes.NewReader(b))
	return m, err
}

func (c *Catalog) put(table, name, sha string, format int, data []byte) error {
	var existing string
	var existingFormat int
	var err error
	if table == tableGraphics {
		err = c.db.QueryRow("SELECT sha1, format FROM graphics WHERE name = ?", name).Scan(&existing, &existingFormat)
	} else {
		err = c.db.QueryRow("SELECT sha1 FROM "+table+" WHERE name = ?", name).Scan(&existing)
	}
	switch err {
	case sql.ErrNoRows:
		if table == tableGraphics {
			_, err = c.db.Exec("INSERT INTO graphics (name, sha1, format, data) VALUES (?, ?, ?, ?)", name, sha, format, data)
		} else {
			_, err = c.db.Exec("INSERT INTO "+table+" (name, sha1, data) VALUES (?, ?, ?)", name, sha, data)
		}
		return err
	case nil:
		if existing == sha && existingFormat == format {
			return nil
		}
		if table == tableGraphics {
			_, err = c.db.Exec("UPDATE graphics SET sha1 = ?, format = ?, data = ? WHERE name = ?", sha, format, data, name)
		} else {
			_, err = c.db.Exec("UPDATE "+table+" SET sha1 = ?, data = ? WHERE name = ?", sha, data, name)
		}
		return err
	default:
		return err
	}
}

func (c *Catalog) get(table, name string) ([]byte, int, error) {
	var data []byte
	var format int
	var err error
	if table == tableGraphics {
		err = c.db.QueryRow("SELECT format, data FROM graphics WHERE name = ?", name).Scan(&format, &data)
	} else {
		err = c.db.QueryRow("SELECT data FROM "+table+" WHERE name = ?", name).Scan(&data)
	}
	switch err {
	case sql.ErrNoRows:
		return nil, 0, fmt.Errorf("%w: %s %q", ErrNotFound, table, name)
	case nil:
		return data, format, nil
	default:
		return nil, 0, err
	}
}

// ImportPalette stores the palette in file under name. An image file is
// reduced to a palette of at most 256 colors, a .pal file is read as RGB
// triples and anything else as raw 15-bit colors.
func (c *Catalog) ImportPalette(name, file string) error {
	b, sha, err := readFile(file)
	if err != nil {
		return err
	}

	var p palette.Palette
	switch {
	case isImage(file):
		m, err := decodeImage(b)
		if err != nil {
			return err
		}
		if p, err = palette.FromImage(m, palette.MaxColors); err != nil {
			return err
		}
	case strings.ToLower(filepath.Ext(file)) == ".pal":
		if p, err = palette.DecodeRGB(b); err != nil {
			return err
		}
	default:
		if p, err = palette.Decode(b); err != nil {
			return err
		}
	}

	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	return c.put(tablePalette, name, sha, 0, data)
}

// ImportGraphics stores the graphics tiles in file under name. An image file
// is cut into tiles, anything else is read in format f.
func (c *Catalog) ImportGraphics(name, file string, f gfx.Format) error {
	b, sha, err := readFile(file)
	if err != nil {
		return err
	}

	var s *gfx.Store
	if isImage(file) {
		m, err := decodeImage(b)
		if err != nil {
			return err
		}
		s, err = gfx.FromImage(m, f)
		if err != nil {
			return err
		}
	} else if s, err = gfx.Decode(b, f); err != nil {
		return err
	}

	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	return c.put(tableGraphics, name, sha, int(f), data)
}

// ImportObjects stores the object tile data in file under name.
func (c *Catalog) ImportObjects(name, file string) error {
	b, sha, err := readFile(file)
	if err != nil {
		return err
	}
	if !obj16.ValidData(b) {
		return fault.Format("romgfx: %s is %d bytes, not a multiple of %d", file, len(b), obj16.SizeOf)
	}
	return c.put(tableObjects, name, sha, 0, b)
}

// Palette returns the palette stored under name.
func (c *Catalog) Palette(name string) (palette.Palette, error) {
	b, _, err := c.get(tablePalette, name)
	if err != nil {
		return nil, err
	}
	return palette.Decode(b)
}

// Graphics returns the graphics tiles stored under name.
func (c *Catalog) Graphics(name string) (*gfx.Store, error) {
	b, f, err := c.get(tableGraphics, name)
	if err != nil {
		return nil, err
	}
	return gfx.Decode(b, gfx.Format(f))
}

// Objects returns the object tile data stored under name.
func (c *Catalog) Objects(name string) ([]byte, error) {
	b, _, err := c.get(tableObjects, name)
	return b, err
}
