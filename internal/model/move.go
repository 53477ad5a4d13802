package model

import "github.com/benbeisheim/chess-console/internal/boardgame"

type CastleRookMove struct {
	From boardgame.Position `json:"from"`
	To   boardgame.Position `json:"to"`
}

// Ply records one move with enough detail to take it back exactly, compound
// effects included.
type Ply struct {
	Piece          *Piece             `json:"piece"`
	From           boardgame.Position `json:"from"`
	To             boardgame.Position `json:"to"`
	CapturedPiece  *Piece             `json:"capturedPiece"`
	CapturedAt     boardgame.Position `json:"capturedAt"`
	EnPassant      bool               `json:"enPassant"`
	CastleRookMove *CastleRookMove    `json:"castleRookMove"`
	Promotion      PieceType          `json:"promotion"`

	// index of CapturedPiece in the on-board roster before it was taken
	capturedIndex int
}

func (p Ply) isDoublePawnStep() bool {
	return p.Piece.Type == Pawn && abs(p.To.Row-p.From.Row) == 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// String writes the ply as origin and target squares, "e7e8=N" for a promotion.
func (p Ply) String() string {
	s := squareName(p.From) + squareName(p.To)
	if p.Promotion != "" {
		s += "=" + p.Promotion.Code()
	}
	return s
}
