package robot

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Move when the target cell is off the grid.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError describes a rejected move. It matches ErrIllegalMove
// with errors.Is.
type IllegalMoveError struct {
	From     State
	Row, Col int
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%v: %s from (%d,%d) to (%d,%d) leaves the grid",
		ErrIllegalMove, e.From.Orientation, e.From.Row, e.From.Col, e.Row, e.Col)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
