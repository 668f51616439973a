package worldmap

import (
	"fmt"

	"blockworld.dev/internal/world"
)

// builderSection is the document header: start coordinates, builder name,
// starting inventory. The starting tile is created here, empty; its blocks
// arrive with the tiles section.
type builderSection struct {
	start   world.Position
	tile    *world.Tile
	builder *world.Builder
}

func parseBuilderSection(sc *scanner) (builderSection, error) {
	var sect builderSection

	line, err := sc.readLine()
	if err != nil {
		return sect, err
	}
	x, err := parseInt(line)
	if err != nil {
		return sect, fmt.Errorf("line %d: start x: %w", sc.line, err)
	}

	line, err = sc.readLine()
	if err != nil {
		return sect, err
	}
	y, err := parseInt(line)
	if err != nil {
		return sect, fmt.Errorf("line %d: start y: %w", sc.line, err)
	}

	// The name is free text; an empty line is a valid name.
	name, err := sc.readLine()
	if err != nil {
		return sect, err
	}

	line, err = sc.readLine()
	if err != nil {
		return sect, err
	}
	inventory, err := world.ParseBlockList(line)
	if err != nil {
		return sect, fmt.Errorf("line %d: inventory: %v: %w", sc.line, err, ErrFormat)
	}

	tile := world.NewEmptyTile()
	builder, err := world.NewBuilderWithInventory(name, tile, inventory)
	if err != nil {
		return sect, fmt.Errorf("line %d: inventory: %v: %w", sc.line, err, ErrFormat)
	}

	sect.start = world.Position{X: x, Y: y}
	sect.tile = tile
	sect.builder = builder
	return sect, nil
}

// parseTilesSection reads the total count and every numbered tile row. Rows
// may arrive in any order; they are materialized in id order once the
// section is fully read. Tile 0's blocks land on the starting tile.
func parseTilesSection(sc *scanner, startTile *world.Tile) ([]*world.Tile, error) {
	line, err := sc.readLine()
	if err != nil {
		return nil, err
	}
	counts, err := parseLabeledCounts(line, true)
	if err != nil {
		return nil, fmt.Errorf("line %d: tile count: %w", sc.line, err)
	}
	total, ok := counts["total"]
	if !ok {
		return nil, fmt.Errorf("line %d: tile count: missing total label: %w", sc.line, ErrFormat)
	}
	if total < 1 {
		return nil, fmt.Errorf("line %d: total %d: need at least one tile: %w", sc.line, total, ErrFormat)
	}

	rows := make(map[int][]world.Block, total)
	for i := 0; i < total; i++ {
		line, err := sc.readLine()
		if err != nil {
			return nil, err
		}
		id, rest, err := parseNumberedRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: tile row: %w", sc.line, err)
		}
		if id < 0 || id >= total {
			return nil, fmt.Errorf("line %d: tile id %d out of range [0,%d): %w", sc.line, id, total, ErrFormat)
		}
		if _, dup := rows[id]; dup {
			return nil, fmt.Errorf("line %d: duplicate tile id %d: %w", sc.line, id, ErrFormat)
		}
		blocks, err := world.ParseBlockList(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: tile %d blocks: %v: %w", sc.line, id, err, ErrFormat)
		}
		rows[id] = blocks
	}

	tiles := make([]*world.Tile, total)
	for id := 0; id < total; id++ {
		if id == 0 {
			// The starting tile already exists; a stack past the height
			// rules here came from the file, so it is a format error.
			for _, b := range rows[0] {
				if err := startTile.PlaceBlock(b); err != nil {
					return nil, fmt.Errorf("tile 0 blocks: %v: %w", err, ErrFormat)
				}
			}
			tiles[0] = startTile
			continue
		}
		t, err := world.NewTile(rows[id])
		if err != nil {
			return nil, fmt.Errorf("tile %d blocks: %v: %w", id, err, ErrFormat)
		}
		tiles[id] = t
	}
	return tiles, nil
}

// parseExitsSection wires one-way exits between the materialized tiles.
func parseExitsSection(sc *scanner, tiles []*world.Tile) error {
	line, err := sc.readLine()
	if err != nil {
		return err
	}
	if line != "exits" {
		return fmt.Errorf("line %d: want literal \"exits\", got %q: %w", sc.line, line, ErrFormat)
	}

	seen := make(map[int]bool, len(tiles))
	for i := 0; i < len(tiles); i++ {
		line, err := sc.readLine()
		if err != nil {
			return err
		}
		id, rest, err := parseNumberedRow(line)
		if err != nil {
			return fmt.Errorf("line %d: exit row: %w", sc.line, err)
		}
		if id < 0 || id >= len(tiles) {
			return fmt.Errorf("line %d: exit row id %d out of range [0,%d): %w", sc.line, id, len(tiles), ErrFormat)
		}
		if seen[id] {
			return fmt.Errorf("line %d: duplicate exit row %d: %w", sc.line, id, ErrFormat)
		}
		seen[id] = true

		// Duplicate directions on one row are duplicate labels, already
		// rejected by the grammar.
		pairs, err := parseLabeledCounts(rest, false)
		if err != nil {
			return fmt.Errorf("line %d: exit row %d: %w", sc.line, id, err)
		}
		for label, target := range pairs {
			dir, ok := world.ParseDirection(label)
			if !ok {
				return fmt.Errorf("line %d: exit row %d: unknown direction %q: %w", sc.line, id, label, ErrFormat)
			}
			if target >= len(tiles) {
				return fmt.Errorf("line %d: exit row %d: target %d out of range [0,%d): %w", sc.line, id, target, len(tiles), ErrFormat)
			}
			tiles[id].AddExit(dir, tiles[target])
		}
	}
	return nil
}

func parseEmptyLine(sc *scanner) error {
	line, err := sc.readLine()
	if err != nil {
		return err
	}
	if line != "" {
		return fmt.Errorf("line %d: want blank line, got %q: %w", sc.line, line, ErrFormat)
	}
	return nil
}
