// Package boardgame provides the storage layer for square-grid board games:
// coordinates, a fixed-size grid of occupants, and boolean square masks.
// It knows nothing about the rules of any particular game.
package boardgame

import "fmt"

// Position is a zero-based (row, column) coordinate on a grid.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Translate returns the position shifted by the given row and column deltas.
func (p Position) Translate(dRow, dColumn int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dColumn}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
