package worldmap

import (
	"fmt"

	"blockworld.dev/internal/world"
)

// tileIndex is the sparse coordinate assignment for every tile reachable
// from the start. Tiles are keyed by identity; the index never owns them.
type tileIndex struct {
	byPos map[world.Position]*world.Tile
	posOf map[*world.Tile]world.Position
	order []*world.Tile // breadth-first visit order
}

// linkTiles walks the exit graph breadth-first from start, assigning each
// reachable tile a grid position. Directions are visited in the canonical
// order, so the visit order is deterministic. A tile implied at two
// different positions, or two tiles implied at one position, is an
// inconsistency. Tiles never reached from the start simply stay unplaced.
func linkTiles(start *world.Tile, origin world.Position) (*tileIndex, error) {
	idx := &tileIndex{
		byPos: make(map[world.Position]*world.Tile),
		posOf: make(map[*world.Tile]world.Position),
	}
	idx.byPos[origin] = start
	idx.posOf[start] = origin
	idx.order = append(idx.order, start)

	queue := []*world.Tile{start}
	for len(queue) > 0 {
		tile := queue[0]
		queue = queue[1:]
		at := idx.posOf[tile]

		for _, dir := range world.Directions {
			neighbor, ok := tile.Exit(dir)
			if !ok {
				continue
			}
			implied := at.Shift(dir)
			if assigned, placed := idx.posOf[neighbor]; placed {
				if assigned != implied {
					return nil, fmt.Errorf("tile at %v: exit %v implies %v, but the neighbor sits at %v: %w",
						at, dir, implied, assigned, ErrInconsistent)
				}
				continue
			}
			// The neighbor is unplaced, so any occupant of the implied
			// cell has to be a different tile.
			if _, occupied := idx.byPos[implied]; occupied {
				return nil, fmt.Errorf("tile at %v: exit %v implies %v, which another tile already occupies: %w",
					at, dir, implied, ErrInconsistent)
			}
			idx.byPos[implied] = neighbor
			idx.posOf[neighbor] = implied
			idx.order = append(idx.order, neighbor)
			queue = append(queue, neighbor)
		}
	}
	return idx, nil
}

func (ix *tileIndex) tileAt(p world.Position) *world.Tile {
	return ix.byPos[p]
}

func (ix *tileIndex) tiles() []*world.Tile {
	out := make([]*world.Tile, len(ix.order))
	copy(out, ix.order)
	return out
}
