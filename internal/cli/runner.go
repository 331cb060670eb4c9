package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gridrobot/internal/robot"
)

const clearScreen = "\033[H\033[2J"

// Runner applies actions to one robot and reports the result to Out.
type Runner struct {
	Robot      *robot.Robot
	Out        io.Writer
	Log        *slog.Logger
	Strict     bool
	Render     bool
	FrameDelay time.Duration

	sleep func(time.Duration)
}

func NewRunner(r *robot.Robot, out io.Writer, log *slog.Logger) *Runner {
	return &Runner{Robot: r, Out: out, Log: log, sleep: time.Sleep}
}

// Run executes actions in order. An illegal move is logged and skipped
// unless Strict is set, in which case it stops the run and is returned.
func (r *Runner) Run(actions []Action) error {
	for i, a := range actions {
		if err := r.step(a); err != nil {
			if !errors.Is(err, robot.ErrIllegalMove) || r.Strict {
				return fmt.Errorf("action %d (%s): %w", i+1, a, err)
			}
			r.Log.Warn("move skipped", "step", i+1, "error", err)
			continue
		}
		if r.Render {
			if err := r.frame(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) step(a Action) error {
	switch a {
	case ActionTurn:
		r.Robot.Turn()
	case ActionMove:
		return r.Robot.Move()
	case ActionBacktrack:
		r.Robot.Backtrack()
	default:
		return fmt.Errorf("unknown action %s", a)
	}
	return nil
}

func (r *Runner) frame() error {
	if _, err := io.WriteString(r.Out, clearScreen); err != nil {
		return err
	}
	if err := robot.Render(r.Out, r.Robot.State()); err != nil {
		return err
	}
	if r.FrameDelay > 0 && r.sleep != nil {
		r.sleep(r.FrameDelay)
	}
	return nil
}

// Summary prints the final state and history depth, e.g. "NORTH (9,1) depth=1".
func (r *Runner) Summary() error {
	_, err := fmt.Fprintf(r.Out, "%s depth=%d\n", r.Robot.State(), r.Robot.Depth())
	return err
}
