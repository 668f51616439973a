package worldmap

import (
	"fmt"
	"io"
	"os"

	"blockworld.dev/internal/world"
)

// Map is a loaded block world: a builder, the start position, and the
// sparse grid of every tile reachable from the start.
type Map struct {
	builder *world.Builder
	start   world.Position
	index   *tileIndex
}

// New builds a map from an in-memory world, running the same consistency
// check a file load runs.
func New(startTile *world.Tile, start world.Position, builder *world.Builder) (*Map, error) {
	idx, err := linkTiles(startTile, start)
	if err != nil {
		return nil, err
	}
	return &Map{builder: builder, start: start, index: idx}, nil
}

// Load reads and validates the map at path. Failures opening the file
// surface untagged, before any parsing; parse and consistency failures
// carry ErrFormat or ErrInconsistent.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses one complete map document from r: header, blank line, tiles,
// blank line, exits, end of input. The parsed graph is then embedded on the
// grid; the map is only returned if that embedding is conflict-free.
func Read(r io.Reader) (*Map, error) {
	sc := newScanner(r)

	header, err := parseBuilderSection(sc)
	if err != nil {
		return nil, err
	}
	if err := parseEmptyLine(sc); err != nil {
		return nil, err
	}
	tiles, err := parseTilesSection(sc, header.tile)
	if err != nil {
		return nil, err
	}
	if err := parseEmptyLine(sc); err != nil {
		return nil, err
	}
	if err := parseExitsSection(sc, tiles); err != nil {
		return nil, err
	}
	if err := sc.atEnd(); err != nil {
		return nil, err
	}

	return New(header.tile, header.start, header.builder)
}

func (m *Map) Builder() *world.Builder { return m.builder }

func (m *Map) StartPosition() world.Position { return m.start }

// Tiles returns every reachable tile in breadth-first order. The order is
// stable across calls and is the id assignment Save uses.
func (m *Map) Tiles() []*world.Tile { return m.index.tiles() }

// TileAt returns the tile occupying p, or nil.
func (m *Map) TileAt(p world.Position) *world.Tile { return m.index.tileAt(p) }

// PositionOf reports the grid position assigned to t during traversal.
func (m *Map) PositionOf(t *world.Tile) (world.Position, bool) {
	p, ok := m.index.posOf[t]
	return p, ok
}
