// Package report renders a loaded map as a JSON summary for tooling.
package report

import (
	"blockworld.dev/internal/world"
	"blockworld.dev/internal/worldmap"
)

type Report struct {
	Builder   BuilderInfo `json:"builder"`
	Start     Coord       `json:"start"`
	TileCount int         `json:"tile_count"`
	Tiles     []TileInfo  `json:"tiles"`
}

type BuilderInfo struct {
	Name      string   `json:"name"`
	Inventory []string `json:"inventory"`
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileInfo describes one tile by its traversal id. Exits map direction
// names to the target tile's id.
type TileInfo struct {
	ID     int            `json:"id"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Blocks []string       `json:"blocks"`
	Exits  map[string]int `json:"exits,omitempty"`
}

// Build summarizes m. Tile ids follow the order of m.Tiles, so reports for
// the same map are identical across runs.
func Build(m *worldmap.Map) Report {
	tiles := m.Tiles()
	ids := make(map[*world.Tile]int, len(tiles))
	for i, t := range tiles {
		ids[t] = i
	}

	rep := Report{
		Builder: BuilderInfo{
			Name:      m.Builder().Name(),
			Inventory: blockNames(m.Builder().Inventory()),
		},
		Start:     Coord{X: m.StartPosition().X, Y: m.StartPosition().Y},
		TileCount: len(tiles),
		Tiles:     make([]TileInfo, 0, len(tiles)),
	}

	for i, t := range tiles {
		pos, _ := m.PositionOf(t)
		info := TileInfo{
			ID:     i,
			X:      pos.X,
			Y:      pos.Y,
			Blocks: blockNames(t.Blocks()),
		}
		for _, d := range world.Directions {
			target, ok := t.Exit(d)
			if !ok {
				continue
			}
			if info.Exits == nil {
				info.Exits = make(map[string]int, 4)
			}
			info.Exits[d.String()] = ids[target]
		}
		rep.Tiles = append(rep.Tiles, info)
	}
	return rep
}

func blockNames(blocks []world.Block) []string {
	names := make([]string, 0, len(blocks))
	for _, b := range blocks {
		names = append(names, b.String())
	}
	return names
}
