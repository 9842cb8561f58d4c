// internal/command/command.go
//
// Textual command parsing for the terminal input loop.
// Grammar (one line per move, coordinates 1-indexed as displayed):
//   D <row> <col>   dig
//   F <row> <col>   flag / unflag
//   H               hint
//   Q               quit
// Parsing only validates shape; whether coordinates land on the board
// is the engine's call.

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is the move verb carried by a parsed command.
type Action uint8

const (
	Dig Action = iota
	Flag
	Hint
	Quit
)

// Command is one parsed player move. Row and Col are 0-indexed and only
// meaningful for Dig and Flag.
type Command struct {
	Action Action
	Row    int
	Col    int
}

// ErrEmpty marks a blank input line; callers usually just reprompt.
var ErrEmpty = errors.New("command: empty input")

// Parse turns one input line into a Command.
// Coordinates are converted from the displayed 1-indexed grid to the
// engine's 0-indexed one. Malformed input never reaches the engine.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	switch verb := strings.ToUpper(fields[0]); verb {
	case "Q", "QUIT":
		return Command{Action: Quit}, nil
	case "H", "HINT":
		return Command{Action: Hint}, nil
	case "D", "F":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("command: %s needs a row and a column, e.g. %s 5 6", verb, verb)
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("command: row %q is not a number", fields[1])
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{}, fmt.Errorf("command: column %q is not a number", fields[2])
		}
		action := Dig
		if verb == "F" {
			action = Flag
		}
		return Command{Action: action, Row: row - 1, Col: col - 1}, nil
	default:
		return Command{}, fmt.Errorf("command: unknown action %q (use D, F, H or Q)", fields[0])
	}
}
