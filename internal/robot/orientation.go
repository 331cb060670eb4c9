package robot

import "fmt"

// Orientation is the compass direction the robot faces.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// Next returns the orientation one clockwise step away.
func (o Orientation) Next() Orientation {
	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(fmt.Sprintf("robot: invalid orientation %d", uint8(o)))
}

// Delta is the (row, col) step taken by a move in this orientation.
func (o Orientation) Delta() (dr, dc int) {
	switch o {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	panic(fmt.Sprintf("robot: invalid orientation %d", uint8(o)))
}

// Glyph is used by Render.
func (o Orientation) Glyph() byte {
	switch o {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}
