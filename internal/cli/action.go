package cli

import (
	"fmt"
	"strings"
)

// Action names one robot call.
type Action int

const (
	ActionTurn Action = iota
	ActionMove
	ActionBacktrack
)

func (a Action) String() string {
	switch a {
	case ActionTurn:
		return "turn"
	case ActionMove:
		return "move"
	case ActionBacktrack:
		return "backtrack"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseActions maps each argument to an Action. Nothing is returned unless
// every argument is known.
func ParseActions(args []string) ([]Action, error) {
	actions := make([]Action, 0, len(args))
	for i, arg := range args {
		switch strings.ToLower(arg) {
		case "turn", "t":
			actions = append(actions, ActionTurn)
		case "move", "m":
			actions = append(actions, ActionMove)
		case "back", "backtrack", "b":
			actions = append(actions, ActionBacktrack)
		default:
			return nil, fmt.Errorf("argument %d: unknown action %q", i+1, arg)
		}
	}
	return actions, nil
}
