package model

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/chess-console/internal/boardgame"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Code returns the single letter used for the piece type.
func (p PieceType) Code() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// promotionType maps a promotion code (B, N, R or Q, any case) to its piece type.
func promotionType(code string) (PieceType, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "B":
		return Bishop, true
	case "N":
		return Knight, true
	case "R":
		return Rook, true
	case "Q":
		return Queen, true
	}
	return "", false
}

// Board is the 8x8 chess grid.
type Board = boardgame.Grid[*Piece]

type Piece struct {
	Type      PieceType   `json:"type"`
	Color     PlayerColor `json:"color"`
	position  *boardgame.Position
	moveCount int
}

func newPiece(pieceType PieceType, color PlayerColor) *Piece {
	return &Piece{Type: pieceType, Color: color}
}

// SetPosition is called by the board whenever the piece is placed or removed.
func (p *Piece) SetPosition(pos *boardgame.Position) {
	p.position = pos
}

// Position returns the square the piece stands on; ok is false while it is off the board.
func (p *Piece) Position() (pos boardgame.Position, ok bool) {
	if p.position == nil {
		return boardgame.Position{}, false
	}
	return *p.position, true
}

func (p *Piece) MoveCount() int {
	return p.moveCount
}

func (p *Piece) increaseMoveCount() {
	p.moveCount++
}

func (p *Piece) decreaseMoveCount() {
	p.moveCount--
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

const boardSize = 8

var backRank = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() *Board {
	board, err := boardgame.NewGrid[*Piece](boardSize, boardSize)
	if err != nil {
		panic(err)
	}
	return board
}

// setupInitialPosition places the standard 32 pieces. Row 0 is black's back rank.
func (m *Match) setupInitialPosition() {
	for column, pieceType := range backRank {
		file := byte('a' + column)
		m.placeNewPiece(file, 8, newPiece(pieceType, PlayerColorBlack))
		m.placeNewPiece(file, 7, newPiece(Pawn, PlayerColorBlack))
		m.placeNewPiece(file, 2, newPiece(Pawn, PlayerColorWhite))
		m.placeNewPiece(file, 1, newPiece(pieceType, PlayerColorWhite))
	}
}

// placeNewPiece puts a fresh piece on the board and registers it in the roster.
func (m *Match) placeNewPiece(column byte, row int, piece *Piece) {
	m.place(piece, ChessPosition{Column: column, Row: row}.ToPosition())
	m.piecesOnTheBoard = append(m.piecesOnTheBoard, piece)
}
