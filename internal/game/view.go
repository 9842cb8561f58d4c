// internal/game/view.go
//
// Read-only board snapshots for presentation layers.
// RenderView is the ONLY data a display layer may read: it never leaks
// mine positions while the game is still winnable. Only a lost board
// renders Mine tiles.

package game

import "encoding/json"

// TileKind classifies what a display should draw for one cell.
type TileKind uint8

const (
	TileUndug  TileKind = iota // hidden, unflagged
	TileFlag                   // hidden, flagged
	TileMine                   // mine, shown only after a loss
	TileNumber                 // revealed, Number holds the count 0–8
)

// String returns the wire/state name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileFlag:
		return "flag"
	case TileMine:
		return "mine"
	case TileNumber:
		return "number"
	default:
		return "undug"
	}
}

// MarshalJSON encodes the kind as its state name, matching the
// API payloads.
func (k TileKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Tile is the display form of one cell.
type Tile struct {
	Kind   TileKind `json:"kind"`
	Number int      `json:"number"` // meaningful only when Kind == TileNumber
}

// View is a self-contained snapshot of the visible board.
type View struct {
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	Tiles          [][]Tile `json:"tiles"`
	MinesRemaining int      `json:"minesRemaining"`
	Status         string   `json:"status"` // "playing" | "won" | "lost"
}

// RenderView snapshots the grid for display.
//
// Tile resolution per cell:
//   - lost board + mine → Mine (the loss exposes every mine, flagged or not)
//   - revealed → Number with the adjacent count
//   - flagged → Flag
//   - otherwise → Undug
func (b *Board) RenderView() View {
	lost := b.status == Loss
	tiles := make([][]Tile, b.Rows)
	for r := 0; r < b.Rows; r++ {
		tiles[r] = make([]Tile, b.Cols)
		for c := 0; c < b.Cols; c++ {
			cell := b.cells[r][c]
			switch {
			case lost && cell.Mine:
				tiles[r][c] = Tile{Kind: TileMine}
			case cell.State == StateRevealed:
				tiles[r][c] = Tile{Kind: TileNumber, Number: cell.Adjacent}
			case cell.State == StateFlagged:
				tiles[r][c] = Tile{Kind: TileFlag}
			default:
				tiles[r][c] = Tile{Kind: TileUndug}
			}
		}
	}
	return View{
		Rows:           b.Rows,
		Cols:           b.Cols,
		Tiles:          tiles,
		MinesRemaining: b.MinesRemaining(),
		Status:         statusLabel(b.status),
	}
}

// statusLabel maps an Outcome to the session-state vocabulary used by
// view payloads.
func statusLabel(o Outcome) string {
	switch o {
	case Win:
		return "won"
	case Loss:
		return "lost"
	default:
		return "playing"
	}
}
