package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

// Opponent returns the other side.
func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// pawnDirection is the row delta of a forward pawn step. White moves toward row 0.
func (c PlayerColor) pawnDirection() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

func (c PlayerColor) pawnStartRow() int {
	if c == PlayerColorWhite {
		return 6
	}
	return 1
}

// enPassantRow is the row a pawn must stand on to capture en passant.
func (c PlayerColor) enPassantRow() int {
	if c == PlayerColorWhite {
		return 3
	}
	return 4
}

// promotionRow is the farthest row for the color's pawns.
func (c PlayerColor) promotionRow() int {
	if c == PlayerColorWhite {
		return 0
	}
	return 7
}
