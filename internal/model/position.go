package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbeisheim/chess-console/internal/boardgame"
	"github.com/benbeisheim/chess-console/internal/errors"
)

// ChessPosition is a square in human notation: column 'a'..'h', row 1..8.
type ChessPosition struct {
	Column byte `json:"column"`
	Row    int  `json:"row"`
}

func NewChessPosition(column byte, row int) (ChessPosition, error) {
	if column < 'a' || column > 'h' || row < 1 || row > 8 {
		return ChessPosition{}, &errors.MoveError{
			Err:    errors.ErrInvalidCoordinate,
			Reason: fmt.Sprintf("%c%d", column, row),
		}
	}
	return ChessPosition{Column: column, Row: row}, nil
}

// ParseChessPosition reads a square such as "e2" or "E2".
func ParseChessPosition(s string) (ChessPosition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return ChessPosition{}, &errors.MoveError{Err: errors.ErrInvalidCoordinate, Reason: strconv.Quote(s)}
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return ChessPosition{}, &errors.MoveError{Err: errors.ErrInvalidCoordinate, Reason: strconv.Quote(s)}
	}
	return NewChessPosition(s[0], row)
}

// FromPosition converts a grid coordinate to chess notation. Rank 8 is row 0.
func FromPosition(pos boardgame.Position) ChessPosition {
	return ChessPosition{Column: byte('a' + pos.Column), Row: boardSize - pos.Row}
}

func (c ChessPosition) ToPosition() boardgame.Position {
	return boardgame.Position{Row: boardSize - c.Row, Column: int(c.Column - 'a')}
}

func (c ChessPosition) String() string {
	return fmt.Sprintf("%c%d", c.Column, c.Row)
}

// squareName formats a grid coordinate in chess notation.
func squareName(pos boardgame.Position) string {
	return FromPosition(pos).String()
}
