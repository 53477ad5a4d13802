package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

// MoveContext is the match state a piece needs beyond the board contents.
type MoveContext struct {
	// EnPassantVulnerable is the pawn that advanced two squares on the previous ply.
	EnPassantVulnerable *Piece
}

var (
	rookDirs   = []boardgame.Position{{Row: -1}, {Row: 1}, {Column: -1}, {Column: 1}}
	bishopDirs = []boardgame.Position{{Row: -1, Column: -1}, {Row: -1, Column: 1}, {Row: 1, Column: -1}, {Row: 1, Column: 1}}
	queenDirs  = append(append([]boardgame.Position{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []boardgame.Position{
		{Row: -1, Column: -2}, {Row: -2, Column: -1}, {Row: -2, Column: 1}, {Row: -1, Column: 2},
		{Row: 1, Column: 2}, {Row: 2, Column: 1}, {Row: 2, Column: -1}, {Row: 1, Column: -2},
	}
)

// LegalDestinations returns every square the piece may move to, before the
// mover's king safety is considered. Castling is added by the match.
func (p *Piece) LegalDestinations(board *Board, ctx MoveContext) boardgame.Mask {
	mask := board.NewMask()
	from, ok := p.Position()
	if !ok {
		return mask
	}
	switch p.Type {
	case Pawn:
		pawnDestinations(board, p, from, ctx, mask)
	case Knight:
		stepDestinations(board, p, from, knightDirs, mask)
	case Bishop:
		slideDestinations(board, p, from, bishopDirs, mask)
	case Rook:
		slideDestinations(board, p, from, rookDirs, mask)
	case Queen:
		slideDestinations(board, p, from, queenDirs, mask)
	case King:
		stepDestinations(board, p, from, kingDirs, mask)
	}
	return mask
}

func (p *Piece) CanReach(board *Board, ctx MoveContext, target boardgame.Position) bool {
	return p.LegalDestinations(board, ctx).Has(target)
}

func (p *Piece) HasAnyLegalDestination(board *Board, ctx MoveContext) bool {
	return p.LegalDestinations(board, ctx).Any()
}

// canMoveTo reports whether pos is on the board and empty or held by the opponent.
func canMoveTo(board *Board, piece *Piece, pos boardgame.Position) bool {
	if !board.Exists(pos) {
		return false
	}
	occupant := board.At(pos)
	return occupant == nil || occupant.Color != piece.Color
}

func isThereOpponentPiece(board *Board, piece *Piece, pos boardgame.Position) bool {
	occupant := board.At(pos)
	return occupant != nil && occupant.Color != piece.Color
}
