package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

// castlingDestinations returns the squares an unmoved king may castle to. The
// king may not castle out of or across check; landing in check is rejected
// later like any other self-check.
func (m *Match) castlingDestinations(king *Piece) boardgame.Mask {
	mask := m.board.NewMask()
	pos, ok := king.Position()
	if !ok || king.moveCount != 0 || m.isKingInCheck(king.Color) {
		return mask
	}
	opponent := king.Color.Opponent()
	empty := func(offsets ...int) bool {
		for _, offset := range offsets {
			square := pos.Translate(0, offset)
			if !m.board.Exists(square) || m.board.At(square) != nil {
				return false
			}
		}
		return true
	}

	if m.castlingRookReady(king, pos.Translate(0, 3)) && empty(1, 2) &&
		!isSquareAttacked(m.board, opponent, pos.Translate(0, 1)) {
		mask.Set(pos.Translate(0, 2))
	}
	if m.castlingRookReady(king, pos.Translate(0, -4)) && empty(-1, -2, -3) &&
		!isSquareAttacked(m.board, opponent, pos.Translate(0, -1)) {
		mask.Set(pos.Translate(0, -2))
	}
	return mask
}

func (m *Match) castlingRookReady(king *Piece, pos boardgame.Position) bool {
	rook := m.board.At(pos)
	return rook != nil && rook.Type == Rook && rook.Color == king.Color && rook.moveCount == 0
}

// castlingRookSquares returns where the rook starts and lands for a king moving
// two columns from kingFrom to kingTo.
func castlingRookSquares(kingFrom, kingTo boardgame.Position) (from, to boardgame.Position) {
	if kingTo.Column > kingFrom.Column {
		return kingFrom.Translate(0, 3), kingFrom.Translate(0, 1)
	}
	return kingFrom.Translate(0, -4), kingFrom.Translate(0, -1)
}
