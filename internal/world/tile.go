package world

// Tile is an ordered block stack plus one-way exits to neighbors. Exits
// carry no implied inverse: wiring A north to B says nothing about B.
type Tile struct {
	blocks []Block
	exits  map[Direction]*Tile
}

const (
	maxHeight       = 7
	maxGroundHeight = 2
)

func NewEmptyTile() *Tile {
	return &Tile{exits: make(map[Direction]*Tile)}
}

// NewTile stacks blocks bottom to top, applying the same height rules as
// PlaceBlock.
func NewTile(blocks []Block) (*Tile, error) {
	t := NewEmptyTile()
	for _, b := range blocks {
		if err := t.PlaceBlock(b); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tile) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

func (t *Tile) Height() int { return len(t.blocks) }

// Exits returns a copy; mutate through AddExit and RemoveExit.
func (t *Tile) Exits() map[Direction]*Tile {
	out := make(map[Direction]*Tile, len(t.exits))
	for d, n := range t.exits {
		out[d] = n
	}
	return out
}

func (t *Tile) Exit(d Direction) (*Tile, bool) {
	n, ok := t.exits[d]
	return n, ok
}

// AddExit overwrites any existing exit under d. A nil target is a caller
// bug, not bad input.
func (t *Tile) AddExit(d Direction, target *Tile) {
	if target == nil {
		panic("world: nil exit target")
	}
	t.exits[d] = target
}

func (t *Tile) RemoveExit(d Direction) {
	delete(t.exits, d)
}

func (t *Tile) TopBlock() (Block, error) {
	if len(t.blocks) == 0 {
		return 0, ErrTooLow
	}
	return t.blocks[len(t.blocks)-1], nil
}

func (t *Tile) RemoveTopBlock() error {
	if len(t.blocks) == 0 {
		return ErrTooLow
	}
	t.blocks = t.blocks[:len(t.blocks)-1]
	return nil
}

// PlaceBlock rejects ground blocks at height 2 and anything at height 7.
func (t *Tile) PlaceBlock(b Block) error {
	if len(t.blocks) >= maxHeight {
		return ErrTooHigh
	}
	if b.Ground() && len(t.blocks) >= maxGroundHeight {
		return ErrTooHigh
	}
	t.blocks = append(t.blocks, b)
	return nil
}

// Dig removes and returns the top block if it is diggable.
func (t *Tile) Dig() (Block, error) {
	top, err := t.TopBlock()
	if err != nil {
		return 0, err
	}
	if !top.Diggable() {
		return 0, ErrInvalidBlock
	}
	t.blocks = t.blocks[:len(t.blocks)-1]
	return top, nil
}

// MoveBlock pushes the top block through the exit under d. The receiving
// tile must be strictly lower than this one.
func (t *Tile) MoveBlock(d Direction) error {
	target, ok := t.exits[d]
	if !ok {
		return ErrNoExit
	}
	if target.Height() >= t.Height() {
		return ErrTooHigh
	}
	// Height check above guarantees a non-empty stack.
	top := t.blocks[len(t.blocks)-1]
	if !top.Moveable() {
		return ErrInvalidBlock
	}
	t.blocks = t.blocks[:len(t.blocks)-1]
	target.blocks = append(target.blocks, top)
	return nil
}
