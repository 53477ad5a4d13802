package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

// slideDestinations walks each direction until the edge or the first occupied
// square, which is included only when it holds an opponent.
func slideDestinations(board *Board, piece *Piece, from boardgame.Position, dirs []boardgame.Position, mask boardgame.Mask) {
	for _, dir := range dirs {
		target := from.Translate(dir.Row, dir.Column)
		for board.Exists(target) {
			occupant := board.At(target)
			if occupant == nil {
				mask.Set(target)
			} else {
				if occupant.Color != piece.Color {
					mask.Set(target)
				}
				break
			}
			target = target.Translate(dir.Row, dir.Column)
		}
	}
}
