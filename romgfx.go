/*
Package romgfx is a library for viewing and editing the graphics stored in
SNES ROM images.

Palettes, graphics tiles and object tile data can be imported into a catalog
and rendered to PNG images, either one file at a time or for a whole directory.
*/
package romgfx

import (
	"io/ioutil"
	"log"
)

// ROMGfx ties a catalog of imported assets to a logger.
type ROMGfx struct {
	db     *Catalog
	logger *log.Logger
}

// New returns a ROMGfx using db. The catalog may be nil if nothing needs to
// be looked up by name, and a nil logger discards everything.
func New(db *Catalog, logger *log.Logger) *ROMGfx {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &ROMGfx{
		db:     db,
		logger: logger,
	}
}

func (m *ROMGfx) Catalog() *Catalog {
	return m.db
}
