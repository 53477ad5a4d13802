package ui

import (
	"strings"

	"github.com/benbeisheim/chess-console/internal/model"
)

// Glyphs maps a piece to the rune drawn for it.
type Glyphs map[model.PlayerColor]map[model.PieceType]rune

var unicodeGlyphs = Glyphs{
	model.PlayerColorWhite: {
		model.King: '♔', model.Queen: '♕', model.Rook: '♖',
		model.Bishop: '♗', model.Knight: '♘', model.Pawn: '♙',
	},
	model.PlayerColorBlack: {
		model.King: '♚', model.Queen: '♛', model.Rook: '♜',
		model.Bishop: '♝', model.Knight: '♞', model.Pawn: '♟',
	},
}

var asciiGlyphs = Glyphs{
	model.PlayerColorWhite: {
		model.King: 'K', model.Queen: 'Q', model.Rook: 'R',
		model.Bishop: 'B', model.Knight: 'N', model.Pawn: 'P',
	},
	model.PlayerColorBlack: {
		model.King: 'k', model.Queen: 'q', model.Rook: 'r',
		model.Bishop: 'b', model.Knight: 'n', model.Pawn: 'p',
	},
}

// Rune returns the glyph for piece, or a space for an empty square.
func (g Glyphs) Rune(piece *model.Piece) rune {
	if piece == nil {
		return ' '
	}
	if r, ok := g[piece.Color][piece.Type]; ok {
		return r
	}
	return '?'
}

// String draws pieces side by side.
func (g Glyphs) String(pieces []*model.Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteRune(g.Rune(p))
	}
	return sb.String()
}
