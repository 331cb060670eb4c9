// Package robot implements a single robot on a fixed 10x10 grid that can
// turn, move and undo its last successful command.
package robot

import (
	"log/slog"

	"gridrobot/internal/logging"
)

// Robot holds the current state and the stack of states it replaced.
// It does no locking; use Synced to share one between goroutines.
type Robot struct {
	state   State
	history []State
	log     *slog.Logger
}

// Option configures a Robot.
type Option func(*Robot)

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Robot) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a robot in the Initial state with empty history.
func New(opts ...Option) *Robot {
	r := &Robot{
		state: Initial(),
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Turn rotates the robot one step clockwise.
func (r *Robot) Turn() {
	next := r.state
	next.Orientation = next.Orientation.Next()
	r.push(next)
	r.log.Debug("turn", "state", r.state, "depth", len(r.history))
}

// Move steps one cell forward. If that would leave the grid it returns an
// *IllegalMoveError and nothing changes.
func (r *Robot) Move() error {
	dr, dc := r.state.Orientation.Delta()
	row, col := r.state.Row+dr, r.state.Col+dc
	if !InBounds(row, col) {
		err := &IllegalMoveError{From: r.state, Row: row, Col: col}
		r.log.Debug("move rejected", "state", r.state, "row", row, "col", col)
		return err
	}
	next := r.state
	next.Row, next.Col = row, col
	r.push(next)
	r.log.Debug("move", "state", r.state, "depth", len(r.history))
	return nil
}

// Backtrack restores the state replaced by the most recent successful Turn
// or Move. With no history it does nothing.
func (r *Robot) Backtrack() {
	n := len(r.history)
	if n == 0 {
		return
	}
	r.state = r.history[n-1]
	r.history = r.history[:n-1]
	r.log.Debug("backtrack", "state", r.state, "depth", len(r.history))
}

// State returns a copy of the current state.
func (r *Robot) State() State {
	return r.state
}

// Depth is the number of commands Backtrack can still undo.
func (r *Robot) Depth() int {
	return len(r.history)
}

func (r *Robot) push(next State) {
	r.history = append(r.history, r.state)
	r.state = next
}
