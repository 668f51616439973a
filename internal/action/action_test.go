package action

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"blockworld.dev/internal/world"
	"blockworld.dev/internal/worldmap"
)

func testMap(t *testing.T, lines ...string) *worldmap.Map {
	t.Helper()
	m, err := worldmap.Read(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return m
}

func TestParse(t *testing.T) {
	a, err := Parse("MOVE_BUILDER north")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Kind != MoveBuilder || a.Arg != "north" {
		t.Fatalf("Parse = %+v", a)
	}

	a, err = Parse("DIG")
	if err != nil {
		t.Fatalf("Parse(DIG): %v", err)
	}
	if a.Kind != Dig || a.Arg != "" {
		t.Fatalf("Parse(DIG) = %+v", a)
	}

	bad := []string{
		"",
		"DIG now",
		"MOVE_BUILDER",
		"MOVE_BLOCK",
		"DROP",
		"JUMP north",
		"move_builder north",
		"MOVE_BUILDER north fast",
	}
	for _, line := range bad {
		if _, err := Parse(line); !errors.Is(err, ErrActionFormat) {
			t.Fatalf("Parse(%q): want ErrActionFormat, got %v", line, err)
		}
	}
}

func TestProcessAllScript(t *testing.T) {
	m := testMap(t,
		"0",
		"0",
		"bob",
		"wood,soil",
		"",
		"total:2",
		"0 soil,wood",
		"1 soil",
		"",
		"exits",
		"0 north:1",
		"1 south:0",
	)

	script := strings.Join([]string{
		"MOVE_BLOCK north",
		"MOVE_BUILDER north",
		"DIG",
		"MOVE_BUILDER south",
		"DROP 5",
		"DROP x",
		"DROP 0",
		"MOVE_BLOCK east",
		"DIG",
		"MOVE_BUILDER west",
	}, "\n")

	var out bytes.Buffer
	if err := ProcessAll(strings.NewReader(script), m, &out); err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	want := strings.Join([]string{
		"Moved block north",
		"Moved builder north",
		"Top block on current tile removed",
		"Moved builder south",
		"Cannot use that block",
		"Error: Invalid action",
		"Dropped a block from inventory",
		"No exit this way",
		"Top block on current tile removed",
		"No exit this way",
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s--- want ---\n%s", out.String(), want)
	}

	// The builder ends where it started, richer by one dug block.
	if m.Builder().CurrentTile() != m.Tiles()[0] {
		t.Fatalf("builder is not back on the start tile")
	}
	inv := m.Builder().Inventory()
	if len(inv) != 3 || inv[0] != world.Soil || inv[1] != world.Wood || inv[2] != world.Wood {
		t.Fatalf("inventory = %v", inv)
	}
}

func TestProcessAllAbortsOnBadLine(t *testing.T) {
	m := testMap(t,
		"0", "0", "bob", "", "",
		"total:1", "0 soil", "",
		"exits", "0",
	)
	var out bytes.Buffer
	err := ProcessAll(strings.NewReader("DIG\nHOP\nDIG"), m, &out)
	if !errors.Is(err, ErrActionFormat) {
		t.Fatalf("want ErrActionFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error does not name the line: %v", err)
	}
	// The first action ran before the abort.
	if out.String() != "Top block on current tile removed\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestProcessTooLow(t *testing.T) {
	m := testMap(t,
		"0", "0", "bob", "", "",
		"total:1", "0", "",
		"exits", "0",
	)
	var out bytes.Buffer
	Process(Action{Kind: Dig}, m, &out)
	if out.String() != "Too low\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestProcessTooHigh(t *testing.T) {
	m := testMap(t,
		"0", "0", "bob", "soil", "",
		"total:1", "0 wood,wood", "",
		"exits", "0",
	)
	var out bytes.Buffer
	Process(Action{Kind: Drop, Arg: "0"}, m, &out)
	if out.String() != "Too high\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestProcessMoveBlockNotMoveable(t *testing.T) {
	m := testMap(t,
		"0", "0", "bob", "", "",
		"total:2", "0 soil,grass", "1", "",
		"exits", "0 north:1", "1",
	)
	var out bytes.Buffer
	Process(Action{Kind: MoveBlock, Arg: "north"}, m, &out)
	if out.String() != "Cannot use that block\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestProcessInvalidDirection(t *testing.T) {
	m := testMap(t,
		"0", "0", "bob", "", "",
		"total:1", "0", "",
		"exits", "0",
	)
	var out bytes.Buffer
	Process(Action{Kind: MoveBuilder, Arg: "up"}, m, &out)
	Process(Action{Kind: MoveBlock, Arg: "North"}, m, &out)
	if out.String() != "Error: Invalid action\nError: Invalid action\n" {
		t.Fatalf("output = %q", out.String())
	}
}
