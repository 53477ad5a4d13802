package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

// isSquareAttacked reports whether any piece of attackingColor could capture on
// position. It walks outward from the square instead of generating every move.
func isSquareAttacked(board *Board, attackingColor PlayerColor, position boardgame.Position) bool {
	attacker := func(target boardgame.Position, types ...PieceType) bool {
		occupant := board.At(target)
		if occupant == nil || occupant.Color != attackingColor {
			return false
		}
		for _, t := range types {
			if occupant.Type == t {
				return true
			}
		}
		return false
	}
	ray := func(dirs []boardgame.Position, types ...PieceType) bool {
		for _, dir := range dirs {
			target := position.Translate(dir.Row, dir.Column)
			for board.Exists(target) {
				if board.At(target) != nil {
					if attacker(target, types...) {
						return true
					}
					break
				}
				target = target.Translate(dir.Row, dir.Column)
			}
		}
		return false
	}

	if ray(rookDirs, Rook, Queen) || ray(bishopDirs, Bishop, Queen) {
		return true
	}
	for _, dir := range knightDirs {
		if attacker(position.Translate(dir.Row, dir.Column), Knight) {
			return true
		}
	}
	for _, dir := range kingDirs {
		if attacker(position.Translate(dir.Row, dir.Column), King) {
			return true
		}
	}
	// An attacking pawn stands one row behind the square, from its own point of view.
	behind := -attackingColor.pawnDirection()
	for _, side := range []int{-1, 1} {
		if attacker(position.Translate(behind, side), Pawn) {
			return true
		}
	}
	return false
}
