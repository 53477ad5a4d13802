package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

func pawnDestinations(board *Board, pawn *Piece, from boardgame.Position, ctx MoveContext, mask boardgame.Mask) {
	dir := pawn.Color.pawnDirection()

	// Forward one, then two from the starting square if both are free.
	one := from.Translate(dir, 0)
	if board.Exists(one) && board.At(one) == nil {
		mask.Set(one)
		two := from.Translate(2*dir, 0)
		if pawn.moveCount == 0 && from.Row == pawn.Color.pawnStartRow() && board.Exists(two) && board.At(two) == nil {
			mask.Set(two)
		}
	}

	for _, side := range []int{-1, 1} {
		diagonal := from.Translate(dir, side)
		if isThereOpponentPiece(board, pawn, diagonal) {
			mask.Set(diagonal)
		}
	}

	if ctx.EnPassantVulnerable == nil || from.Row != pawn.Color.enPassantRow() {
		return
	}
	for _, side := range []int{-1, 1} {
		beside := from.Translate(0, side)
		if board.Exists(beside) && board.At(beside) == ctx.EnPassantVulnerable && isThereOpponentPiece(board, pawn, beside) {
			mask.Set(from.Translate(dir, side))
		}
	}
}
