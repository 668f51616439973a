package world

import "fmt"

// Builder occupies exactly one tile and carries an ordered inventory.
type Builder struct {
	name      string
	tile      *Tile
	inventory []Block
}

func NewBuilder(name string, tile *Tile) *Builder {
	return &Builder{name: name, tile: tile}
}

// NewBuilderWithInventory rejects blocks the builder cannot carry.
func NewBuilderWithInventory(name string, tile *Tile, inventory []Block) (*Builder, error) {
	for _, b := range inventory {
		if !b.Carryable() {
			return nil, fmt.Errorf("%v is not carryable: %w", b, ErrInvalidBlock)
		}
	}
	inv := make([]Block, len(inventory))
	copy(inv, inventory)
	return &Builder{name: name, tile: tile, inventory: inv}, nil
}

func (b *Builder) Name() string { return b.name }

func (b *Builder) CurrentTile() *Tile { return b.tile }

func (b *Builder) Inventory() []Block {
	out := make([]Block, len(b.inventory))
	copy(out, b.inventory)
	return out
}

// CanEnter reports whether target is joined to the current tile by an exit
// and within one block of height difference.
func (b *Builder) CanEnter(target *Tile) bool {
	if target == nil {
		return false
	}
	diff := target.Height() - b.tile.Height()
	if diff < -1 || diff > 1 {
		return false
	}
	for _, n := range b.tile.exits {
		if n == target {
			return true
		}
	}
	return false
}

func (b *Builder) MoveTo(target *Tile) error {
	if !b.CanEnter(target) {
		return ErrNoExit
	}
	b.tile = target
	return nil
}

// DigOnCurrentTile digs the top block, keeping it when it can be carried.
func (b *Builder) DigOnCurrentTile() error {
	block, err := b.tile.Dig()
	if err != nil {
		return err
	}
	if block.Carryable() {
		b.inventory = append(b.inventory, block)
	}
	return nil
}

// DropFromInventory places item i on the current tile and removes it from
// the inventory on success.
func (b *Builder) DropFromInventory(i int) error {
	if i < 0 || i >= len(b.inventory) {
		return ErrInvalidBlock
	}
	if err := b.tile.PlaceBlock(b.inventory[i]); err != nil {
		return err
	}
	b.inventory = append(b.inventory[:i], b.inventory[i+1:]...)
	return nil
}
