package worldmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"blockworld.dev/internal/world"
)

// Save writes the map to path in the load grammar. Open and write failures
// surface as I/O errors; a partially written file is left for the caller.
func (m *Map) Save(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("save map %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save map %s: %w", path, err)
	}
	return nil
}

// Write emits the map document: header, tiles numbered in breadth-first
// order, then each tile's exits translated to those numbers. A reload of
// the output reproduces the same structure (ids may shift, structure not).
func (m *Map) Write(w io.Writer) error {
	tiles := m.Tiles()
	ids := make(map[*world.Tile]int, len(tiles))
	for i, t := range tiles {
		ids[t] = i
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", m.start.X, m.start.Y)
	fmt.Fprintf(bw, "%s\n", m.builder.Name())
	fmt.Fprintf(bw, "%s\n\n", blockList(m.builder.Inventory()))

	fmt.Fprintf(bw, "total:%d\n", len(tiles))
	for i, t := range tiles {
		writeRow(bw, i, blockList(t.Blocks()))
	}

	bw.WriteString("\nexits\n")
	for i, t := range tiles {
		writeRow(bw, i, exitList(t, ids))
	}
	return bw.Flush()
}

// writeRow emits "<id> <rest>", or a bare "<id>" when rest is empty. Both
// shapes parse back.
func writeRow(bw *bufio.Writer, id int, rest string) {
	if rest == "" {
		fmt.Fprintf(bw, "%d\n", id)
		return
	}
	fmt.Fprintf(bw, "%d %s\n", id, rest)
}

func blockList(blocks []world.Block) string {
	if len(blocks) == 0 {
		return ""
	}
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.String()
	}
	return strings.Join(names, ",")
}

func exitList(t *world.Tile, ids map[*world.Tile]int) string {
	var parts []string
	for _, d := range world.Directions {
		n, ok := t.Exit(d)
		if !ok {
			continue
		}
		id, ok := ids[n]
		if !ok {
			// Traversal indexes every reachable tile, so an unindexed
			// target means the map was mutated behind the index.
			panic("worldmap: exit to a tile outside the map")
		}
		parts = append(parts, fmt.Sprintf("%s:%d", d, id))
	}
	return strings.Join(parts, ",")
}
