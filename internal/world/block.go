package world

import (
	"fmt"
	"strings"
)

// Block is one of a closed set of kinds. Ground kinds sit low in a stack
// (height limit 2); every kind stops stacking at height 7.
type Block uint8

const (
	Wood Block = iota
	Grass
	Soil
	Stone
)

type blockTraits struct {
	name      string
	ground    bool
	carryable bool
	diggable  bool
	moveable  bool
}

// The registry. Initialized once, never mutated.
var blockTable = [...]blockTraits{
	Wood:  {name: "wood", carryable: true, diggable: true, moveable: true},
	Grass: {name: "grass", ground: true, diggable: true},
	Soil:  {name: "soil", ground: true, carryable: true, diggable: true},
	Stone: {name: "stone"},
}

var blockByName = func() map[string]Block {
	m := make(map[string]Block, len(blockTable))
	for i, t := range blockTable {
		m[t.name] = Block(i)
	}
	return m
}()

func (b Block) String() string  { return blockTable[b].name }
func (b Block) Ground() bool    { return blockTable[b].ground }
func (b Block) Carryable() bool { return blockTable[b].carryable }
func (b Block) Diggable() bool  { return blockTable[b].diggable }
func (b Block) Moveable() bool  { return blockTable[b].moveable }

// Kinds returns every registered block kind in registry order.
func Kinds() []Block {
	out := make([]Block, len(blockTable))
	for i := range blockTable {
		out[i] = Block(i)
	}
	return out
}

func ParseBlock(token string) (Block, error) {
	b, ok := blockByName[token]
	if !ok {
		return 0, fmt.Errorf("%q: %w", token, ErrUnknownBlock)
	}
	return b, nil
}

// ParseBlockList resolves a comma-separated token list. The empty string is
// an empty list, not an error; any unresolvable token fails the whole list.
func ParseBlockList(csv string) ([]Block, error) {
	if csv == "" {
		return nil, nil
	}
	tokens := strings.Split(csv, ",")
	out := make([]Block, 0, len(tokens))
	for _, tok := range tokens {
		b, err := ParseBlock(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
