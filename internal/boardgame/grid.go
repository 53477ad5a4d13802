package boardgame

import (
	"github.com/benbeisheim/chess-console/internal/errors"
)

// Occupant is anything that can stand on a grid square. The grid keeps the
// occupant's own position in sync with the slot that references it.
type Occupant interface {
	comparable
	SetPosition(pos *Position)
}

// Grid is a fixed rows x columns array of optional occupants. The zero value of
// P marks an empty slot.
type Grid[P Occupant] struct {
	rows    int
	columns int
	slots   [][]P
}

// NewGrid creates an empty grid.
func NewGrid[P Occupant](rows, columns int) (*Grid[P], error) {
	if rows < 1 || columns < 1 {
		return nil, &errors.BoardError{Err: errors.ErrBoardDimensions, Row: rows, Column: columns}
	}
	slots := make([][]P, rows)
	for i := range slots {
		slots[i] = make([]P, columns)
	}
	return &Grid[P]{rows: rows, columns: columns, slots: slots}, nil
}

func (g *Grid[P]) Rows() int {
	return g.rows
}

func (g *Grid[P]) Columns() int {
	return g.columns
}

// Exists reports whether pos lies inside the grid.
func (g *Grid[P]) Exists(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Column >= 0 && pos.Column < g.columns
}

// Occupant returns whatever stands on pos, or the zero value if the slot is empty.
func (g *Grid[P]) Occupant(pos Position) (P, error) {
	if !g.Exists(pos) {
		var zero P
		return zero, positionError(pos)
	}
	return g.slots[pos.Row][pos.Column], nil
}

// Occupied reports whether pos holds an occupant.
func (g *Grid[P]) Occupied(pos Position) (bool, error) {
	occupant, err := g.Occupant(pos)
	if err != nil {
		return false, err
	}
	var zero P
	return occupant != zero, nil
}

// At is Occupant for callers that already checked Exists. Out-of-range
// positions read as empty.
func (g *Grid[P]) At(pos Position) P {
	occupant, _ := g.Occupant(pos)
	return occupant
}

// Place puts piece on pos and records pos on the piece.
func (g *Grid[P]) Place(piece P, pos Position) error {
	occupied, err := g.Occupied(pos)
	if err != nil {
		return err
	}
	if occupied {
		return &errors.BoardError{Err: errors.ErrSquareOccupied, Row: pos.Row, Column: pos.Column}
	}
	g.slots[pos.Row][pos.Column] = piece
	p := pos
	piece.SetPosition(&p)
	return nil
}

// Remove clears pos and returns its former occupant, whose position is reset.
// Removing from an empty square returns the zero value.
func (g *Grid[P]) Remove(pos Position) (P, error) {
	var zero P
	occupant, err := g.Occupant(pos)
	if err != nil {
		return zero, err
	}
	if occupant == zero {
		return zero, nil
	}
	occupant.SetPosition(nil)
	g.slots[pos.Row][pos.Column] = zero
	return occupant, nil
}

// Snapshot copies the slot layout, row by row.
func (g *Grid[P]) Snapshot() [][]P {
	out := make([][]P, g.rows)
	for i, row := range g.slots {
		out[i] = append([]P(nil), row...)
	}
	return out
}

// NewMask returns an empty mask sized to the grid.
func (g *Grid[P]) NewMask() Mask {
	return NewMask(g.rows, g.columns)
}

func positionError(pos Position) error {
	return &errors.BoardError{Err: errors.ErrPosition, Row: pos.Row, Column: pos.Column}
}
