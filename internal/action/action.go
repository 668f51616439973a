// Package action interprets the post-load command language: newline
// separated verbs that move the builder, move blocks, dig, and drop.
package action

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blockworld.dev/internal/world"
	"blockworld.dev/internal/worldmap"
)

// ErrActionFormat tags structurally malformed action lines. World-rule
// violations are not format problems; they are reported to the output
// writer and processing continues.
var ErrActionFormat = errors.New("malformed action")

type Kind uint8

const (
	MoveBuilder Kind = iota
	MoveBlock
	Dig
	Drop
)

var verbs = map[string]Kind{
	"MOVE_BUILDER": MoveBuilder,
	"MOVE_BLOCK":   MoveBlock,
	"DIG":          Dig,
	"DROP":         Drop,
}

// Action is one parsed instruction: a verb and its raw argument. DIG has
// no argument; the argument of DROP is validated later, during processing.
type Action struct {
	Kind Kind
	Arg  string
}

// Parse turns one input line into an Action. The grammar is "VERB" or
// "VERB ARG" with a single space; DIG takes no argument, every other verb
// requires one.
func Parse(line string) (Action, error) {
	fields := strings.Split(line, " ")
	if len(fields) > 2 {
		return Action{}, fmt.Errorf("%q: too many fields: %w", line, ErrActionFormat)
	}
	kind, ok := verbs[fields[0]]
	if !ok {
		return Action{}, fmt.Errorf("%q: unknown verb: %w", line, ErrActionFormat)
	}
	if kind == Dig {
		if len(fields) != 1 {
			return Action{}, fmt.Errorf("%q: DIG takes no argument: %w", line, ErrActionFormat)
		}
		return Action{Kind: Dig}, nil
	}
	if len(fields) != 2 {
		return Action{}, fmt.Errorf("%q: missing argument: %w", line, ErrActionFormat)
	}
	return Action{Kind: kind, Arg: fields[1]}, nil
}

// Process applies one action to the map, writing feedback to out. Bad
// arguments and rejected world rules produce feedback, never errors.
func Process(a Action, m *worldmap.Map, out io.Writer) {
	b := m.Builder()
	switch a.Kind {
	case MoveBuilder:
		dir, ok := world.ParseDirection(a.Arg)
		if !ok {
			fmt.Fprintln(out, "Error: Invalid action")
			return
		}
		target, ok := b.CurrentTile().Exit(dir)
		if !ok {
			fmt.Fprintln(out, "No exit this way")
			return
		}
		if err := b.MoveTo(target); err != nil {
			fmt.Fprintln(out, feedback(err))
			return
		}
		fmt.Fprintf(out, "Moved builder %s\n", dir)
	case MoveBlock:
		dir, ok := world.ParseDirection(a.Arg)
		if !ok {
			fmt.Fprintln(out, "Error: Invalid action")
			return
		}
		if err := b.CurrentTile().MoveBlock(dir); err != nil {
			fmt.Fprintln(out, feedback(err))
			return
		}
		fmt.Fprintf(out, "Moved block %s\n", dir)
	case Dig:
		if err := b.DigOnCurrentTile(); err != nil {
			fmt.Fprintln(out, feedback(err))
			return
		}
		fmt.Fprintln(out, "Top block on current tile removed")
	case Drop:
		i, err := strconv.Atoi(a.Arg)
		if err != nil {
			fmt.Fprintln(out, "Error: Invalid action")
			return
		}
		if err := b.DropFromInventory(i); err != nil {
			fmt.Fprintln(out, feedback(err))
			return
		}
		fmt.Fprintln(out, "Dropped a block from inventory")
	default:
		fmt.Fprintln(out, "Error: Invalid action")
	}
}

// ProcessAll reads actions from r until end of input, applying each in
// turn. The first malformed line aborts with ErrActionFormat; world-rule
// rejections only write feedback and keep going.
func ProcessAll(r io.Reader, m *worldmap.Map, out io.Writer) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		a, err := Parse(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		Process(a, m, out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read actions: %w", err)
	}
	return nil
}

// feedback maps world sentinels to the fixed reporting strings.
func feedback(err error) string {
	switch {
	case errors.Is(err, world.ErrNoExit):
		return "No exit this way"
	case errors.Is(err, world.ErrTooHigh):
		return "Too high"
	case errors.Is(err, world.ErrTooLow):
		return "Too low"
	case errors.Is(err, world.ErrInvalidBlock):
		return "Cannot use that block"
	}
	return err.Error()
}
