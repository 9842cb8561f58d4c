// internal/game/errors.go
//
// Error types for the board engine. There are exactly two recoverable
// failure categories:
//   - ConfigError: invalid parameters at construction; retry with valid ones.
//   - BoundsError: a position outside the grid; board state is unchanged.
// Digging up a mine is NOT an error — it is a normal terminal outcome.

package game

import "fmt"

// ConfigError reports board parameters that cannot produce a playable
// minefield. The mine count must satisfy 0 < mines < rows*cols.
type ConfigError struct {
	Rows, Cols, Mines int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("game: invalid board config: %dx%d with %d mines", e.Rows, e.Cols, e.Mines)
}

// BoundsError reports a row/column pair outside the grid.
type BoundsError struct {
	Row, Col int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("game: position (%d,%d) is out of bounds", e.Row, e.Col)
}
