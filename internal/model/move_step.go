package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

// stepDestinations adds each single offset that lands on an empty or opponent
// square. Knights and kings both move this way.
func stepDestinations(board *Board, piece *Piece, from boardgame.Position, offsets []boardgame.Position, mask boardgame.Mask) {
	for _, offset := range offsets {
		target := from.Translate(offset.Row, offset.Column)
		if canMoveTo(board, piece, target) {
			mask.Set(target)
		}
	}
}
