// internal/game/board.go
//
// Board engine for a single minesweeper game.
// Responsibilities:
//   - Construct boards with uniformly random mine placement.
//   - Precompute per-cell adjacent mine counts.
//   - Apply digs with worklist-based flood fill of zero-count regions.
//   - Toggle flags, chord revealed numbers, surface safe hints.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Mines are fixed at construction; there is no first-move safety,
//     a first dig can lose.
//   - Flagged cells are protected: digging one is a silent no-op and the
//     flood fill never crosses them.
//   - After Win or Loss the board stops accepting moves; Dig keeps
//     reporting the terminal outcome.

package game

import (
	"math/rand"
	"time"
)

// Board owns the minefield for one game. It is not safe for concurrent
// use; callers that share a board across goroutines must serialize
// access (see internal/store for the HTTP mode).
type Board struct {
	Rows, Cols int
	MineCount  int

	cells    [][]Cell
	revealed int
	flags    int
	status   Outcome
	rng      *rand.Rand
}

// New constructs a board with mineCount mines placed uniformly at
// random. Returns a ConfigError unless 0 < mineCount < rows*cols.
func New(rows, cols, mineCount int) (*Board, error) {
	return NewSeeded(rows, cols, mineCount, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeeded is New with an explicit random source, for deterministic
// boards in tests and simulations.
func NewSeeded(rows, cols, mineCount int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 || mineCount <= 0 || mineCount >= rows*cols {
		return nil, &ConfigError{Rows: rows, Cols: cols, Mines: mineCount}
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	b := &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
		cells:     cells,
		rng:       rng,
	}
	b.placeMines()
	b.computeAdjacency()
	return b, nil
}

// placeMines shuffles every position and mines the first MineCount of
// them, guaranteeing exactly MineCount distinct mines.
func (b *Board) placeMines() {
	positions := make([][2]int, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			positions = append(positions, [2]int{r, c})
		}
	}
	b.rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	for _, p := range positions[:b.MineCount] {
		b.cells[p[0]][p[1]].Mine = true
	}
}

// computeAdjacency fills in Adjacent for every non-mine cell by
// counting mines among its in-bounds neighbors.
func (b *Board) computeAdjacency() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.cells[r][c].Mine {
				continue
			}
			count := 0
			b.around(r, c, func(nr, nc int) {
				if b.cells[nr][nc].Mine {
					count++
				}
			})
			b.cells[r][c].Adjacent = count
		}
	}
}

// in reports whether (row,col) lies on the grid.
func (b *Board) in(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// around invokes fn for each of the up-to-8 in-bounds neighbors of
// (row,col). Edge and corner cells get fewer callbacks.
func (b *Board) around(row, col int, fn func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if b.in(nr, nc) {
				fn(nr, nc)
			}
		}
	}
}

// Dig reveals the cell at (row,col), mutating the board.
// Returns: the outcome of the move, or a BoundsError for positions off
// the grid (board unchanged).
//
// Move resolution:
//   - Finished board, revealed cell, or flagged cell → no-op.
//   - Mine → Loss; the board enters its terminal lost state and
//     RenderView starts exposing every mine.
//   - Otherwise reveal, flood-fill any zero-count region, and declare
//     Win once every non-mine cell is revealed.
func (b *Board) Dig(row, col int) (Outcome, error) {
	if !b.in(row, col) {
		return b.status, &BoundsError{Row: row, Col: col}
	}
	if b.status != Continue {
		return b.status, nil
	}
	cell := &b.cells[row][col]
	if cell.State != StateHidden {
		return Continue, nil
	}
	if cell.Mine {
		b.status = Loss
		return Loss, nil
	}

	b.reveal(row, col)

	if b.revealed == b.Rows*b.Cols-b.MineCount {
		b.status = Win
		return Win, nil
	}
	return Continue, nil
}

// reveal opens (row,col) and cascades through connected zero-count
// cells with an explicit worklist. Each cell is processed at most once
// (revealed cells are skipped on pop), so the fill does O(rows*cols)
// work and terminates even when the whole board is one zero region.
// Flagged cells stop the cascade.
func (b *Board) reveal(row, col int) {
	work := [][2]int{{row, col}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		cell := &b.cells[p[0]][p[1]]
		if cell.State != StateHidden {
			continue
		}
		cell.State = StateRevealed
		b.revealed++

		if cell.Adjacent == 0 {
			b.around(p[0], p[1], func(nr, nc int) {
				if b.cells[nr][nc].State == StateHidden {
					work = append(work, [2]int{nr, nc})
				}
			})
		}
	}
}

// Flag toggles the flag on a hidden cell (hidden ↔ flagged). Revealed
// cells and finished boards are left alone. Flagging can never complete
// a win, so no win check happens here.
func (b *Board) Flag(row, col int) error {
	if !b.in(row, col) {
		return &BoundsError{Row: row, Col: col}
	}
	if b.status != Continue {
		return nil
	}
	switch cell := &b.cells[row][col]; cell.State {
	case StateHidden:
		cell.State = StateFlagged
		b.flags++
	case StateFlagged:
		cell.State = StateHidden
		b.flags--
	}
	return nil
}

// Chord digs every unflagged hidden neighbor of a revealed number whose
// adjacent flag count matches it. A no-op on anything else. Misplaced
// flags make chording lose, same as digging the mine directly.
func (b *Board) Chord(row, col int) (Outcome, error) {
	if !b.in(row, col) {
		return b.status, &BoundsError{Row: row, Col: col}
	}
	if b.status != Continue {
		return b.status, nil
	}
	cell := b.cells[row][col]
	if cell.State != StateRevealed || cell.Adjacent == 0 || b.flagsAround(row, col) != cell.Adjacent {
		return Continue, nil
	}
	b.around(row, col, func(nr, nc int) {
		if b.status == Continue && b.cells[nr][nc].State == StateHidden {
			_, _ = b.Dig(nr, nc)
		}
	})
	return b.status, nil
}

// flagsAround counts flagged neighbors of (row,col).
func (b *Board) flagsAround(row, col int) int {
	count := 0
	b.around(row, col, func(nr, nc int) {
		if b.cells[nr][nc].State == StateFlagged {
			count++
		}
	})
	return count
}

// Hint picks a random hidden, unflagged, mine-free cell. ok is false
// when no such cell remains (finished boards included).
func (b *Board) Hint() (row, col int, ok bool) {
	if b.status != Continue {
		return 0, 0, false
	}
	var options [][2]int
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.cells[r][c]
			if cell.State != StateHidden || cell.Mine {
				continue
			}
			options = append(options, [2]int{r, c})
		}
	}
	if len(options) == 0 {
		return 0, 0, false
	}
	p := options[b.rng.Intn(len(options))]
	return p[0], p[1], true
}

// Status reports the current game state without mutating anything.
func (b *Board) Status() Outcome { return b.status }

// MinesRemaining is the mine count minus placed flags. It can go
// negative when the player over-flags.
func (b *Board) MinesRemaining() int { return b.MineCount - b.flags }
