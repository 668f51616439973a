package world

import "fmt"

// Position is a cell on the integer grid. Comparable, so it keys the sparse
// tile index directly.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Position) Shift(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions is the canonical iteration order. Traversal and serialization
// both rely on it being fixed.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"north", "east", "south", "west"}

func (d Direction) String() string {
	return directionNames[d]
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset is the unit step for d. North increases y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

// ParseDirection resolves a lowercase compass token. Tokens are
// case-sensitive: "North" is not a direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return 0, false
}
