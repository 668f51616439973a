package worldmap

import "errors"

var (
	// ErrFormat tags every lexical or structural violation of the map
	// grammar, including entity rules broken by user-supplied data
	// (non-carryable inventory, block stacks past the height limits).
	ErrFormat = errors.New("map format error")

	// ErrInconsistent tags maps that parse cleanly but describe a
	// geometrically impossible tile layout. Telling the two apart needs a
	// full traversal, so it is a separate kind from ErrFormat.
	ErrInconsistent = errors.New("map geometry inconsistent")
)
