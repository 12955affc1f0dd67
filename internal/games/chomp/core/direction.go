// Package core implements the maze-chase simulation: grid state, entity
// motion, pursuer decision logic and collision resolution. It is pure
// logic with no rendering or input dependencies so it can be driven by
// any fixed-timestep host and tested deterministically.
package core

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all directions in the fixed enumeration order used
// for candidate scanning and tie-breaking.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// dirVectors maps each direction to its unit vector.
var dirVectors = [4][2]int{
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
	DirUp:    {0, -1},
	DirDown:  {0, 1},
}

// Opposite maps each direction to its reverse.
var Opposite = [4]Direction{
	DirLeft:  DirRight,
	DirRight: DirLeft,
	DirUp:    DirDown,
	DirDown:  DirUp,
}

// Vector returns the unit vector for the direction.
func (d Direction) Vector() (dx, dy int) {
	v := dirVectors[d]
	return v[0], v[1]
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
