// internal/game/types.go
//
// Core type definitions for the minesweeper board engine.
// Defines:
//   - CellState: visibility of a single square (hidden/revealed/flagged).
//   - Cell: one grid square (mine flag, state, adjacent mine count).
//   - Outcome: result of a dig (continue/win/loss).
//   - Difficulty: preset board dimensions and mine counts.

package game

import "strings"

// CellState tracks the visibility of a single square.
// A cell starts Hidden and can move to Revealed (permanent) or toggle
// between Hidden and Flagged.
type CellState uint8

const (
	StateHidden CellState = iota
	StateRevealed
	StateFlagged
)

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool      // true if this square hides a mine
	State    CellState // hidden / revealed / flagged
	Adjacent int       // mines among the up-to-8 neighbors, 0–8
}

// Outcome reports the result of a dig.
// Win and Loss are terminal: once returned, the board stops accepting
// moves and every further Dig reports the same outcome.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "continue"
	}
}

// Difficulty is a preset board configuration.
type Difficulty struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

// Difficulties are the selectable presets, ordered easy → hard.
var Difficulties = []Difficulty{
	{Name: "Easy", Rows: 8, Cols: 8, Mines: 10},
	{Name: "Medium", Rows: 15, Cols: 15, Mines: 40},
	{Name: "Hard", Rows: 16, Cols: 30, Mines: 40},
}

// DifficultyByName looks up a preset case-insensitively by full name or
// first letter ("E"/"easy"/"Easy"). Returns false if nothing matches.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(name, d.Name) || strings.EqualFold(name, d.Name[:1]) {
			return d, true
		}
	}
	return Difficulty{}, false
}
