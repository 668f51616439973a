package world

import (
	"errors"
	"testing"
)

func TestParseBlock(t *testing.T) {
	for _, name := range []string{"wood", "grass", "soil", "stone"} {
		b, err := ParseBlock(name)
		if err != nil {
			t.Fatalf("ParseBlock(%q): %v", name, err)
		}
		if b.String() != name {
			t.Fatalf("ParseBlock(%q) = %v", name, b)
		}
	}
	if _, err := ParseBlock("lava"); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("ParseBlock(lava): want ErrUnknownBlock, got %v", err)
	}
	// Tokens are case-sensitive.
	if _, err := ParseBlock("Wood"); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("ParseBlock(Wood): want ErrUnknownBlock, got %v", err)
	}
}

func TestParseBlockList(t *testing.T) {
	blocks, err := ParseBlockList("wood,soil,wood")
	if err != nil {
		t.Fatalf("ParseBlockList: %v", err)
	}
	want := []Block{Wood, Soil, Wood}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Fatalf("block %d = %v, want %v", i, blocks[i], want[i])
		}
	}

	blocks, err = ParseBlockList("")
	if err != nil {
		t.Fatalf("ParseBlockList(empty): %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("ParseBlockList(empty) = %v, want none", blocks)
	}

	if _, err := ParseBlockList("wood,lava"); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("want ErrUnknownBlock, got %v", err)
	}
	// An interior empty token is not the empty list.
	if _, err := ParseBlockList("wood,,soil"); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("want ErrUnknownBlock, got %v", err)
	}
}

func TestBlockTraits(t *testing.T) {
	cases := []struct {
		block     Block
		ground    bool
		carryable bool
		diggable  bool
		moveable  bool
	}{
		{Wood, false, true, true, true},
		{Grass, true, false, true, false},
		{Soil, true, true, true, false},
		{Stone, false, false, false, false},
	}
	for _, c := range cases {
		if c.block.Ground() != c.ground {
			t.Errorf("%v.Ground() = %v", c.block, c.block.Ground())
		}
		if c.block.Carryable() != c.carryable {
			t.Errorf("%v.Carryable() = %v", c.block, c.block.Carryable())
		}
		if c.block.Diggable() != c.diggable {
			t.Errorf("%v.Diggable() = %v", c.block, c.block.Diggable())
		}
		if c.block.Moveable() != c.moveable {
			t.Errorf("%v.Moveable() = %v", c.block, c.block.Moveable())
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 4 {
		t.Fatalf("Kinds() = %v", kinds)
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		seen[k.String()] = true
	}
	for _, name := range []string{"wood", "grass", "soil", "stone"} {
		if !seen[name] {
			t.Fatalf("Kinds() missing %q", name)
		}
	}
}
