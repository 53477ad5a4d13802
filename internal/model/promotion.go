package model

import (
	"slices"

	"github.com/benbeisheim/chess-console/internal/errors"
)

// ReplacePromotedPiece swaps the piece promoted on the last ply for the type
// named by code (B, N, R or Q). Check and mate are re-evaluated for the new piece.
func (m *Match) ReplacePromotedPiece(code string) (*Piece, error) {
	if m.promoted == nil {
		return nil, &errors.MoveError{Err: errors.ErrPromotion, Turn: m.turn, Reason: "there is no piece to be promoted"}
	}
	pieceType, ok := promotionType(code)
	if !ok {
		return nil, &errors.MoveError{Err: errors.ErrPromotion, Turn: m.turn, Reason: "invalid type for promotion " + code}
	}

	mover := m.promoted.Color
	piece := m.replacePromoted(pieceType)
	m.history[len(m.history)-1].Promotion = pieceType
	m.promotionChosen = true

	// Redo the end-of-ply bookkeeping as if the new piece had been chosen first.
	if m.currentPlayer != mover {
		m.turn--
		m.currentPlayer = mover
	}
	m.settle(m.history[len(m.history)-1])
	return piece, nil
}

// replacePromoted puts a new piece of pieceType where the promoted piece stands
// and takes over its roster slot.
func (m *Match) replacePromoted(pieceType PieceType) *Piece {
	old := m.promoted
	pos, _ := old.Position()
	m.lift(pos)

	piece := newPiece(pieceType, old.Color)
	piece.moveCount = old.moveCount
	m.place(piece, pos)
	m.piecesOnTheBoard[slices.Index(m.piecesOnTheBoard, old)] = piece
	m.promoted = piece
	return piece
}
