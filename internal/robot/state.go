package robot

import "fmt"

// Grid bounds, inclusive on both axes.
const (
	MinCoord = 1
	MaxCoord = 10
)

// State is a snapshot of the robot. It is a value; changing a copy never
// changes the robot it came from.
type State struct {
	Orientation Orientation
	Row, Col    int
}

// Initial returns the state of every new robot: bottom-left corner facing
// north.
func Initial() State {
	return State{Orientation: North, Row: MaxCoord, Col: MinCoord}
}

// InBounds reports whether (row, col) lies on the grid.
func InBounds(row, col int) bool {
	return row >= MinCoord && row <= MaxCoord && col >= MinCoord && col <= MaxCoord
}

func (s State) String() string {
	return fmt.Sprintf("%s (%d,%d)", s.Orientation, s.Row, s.Col)
}
