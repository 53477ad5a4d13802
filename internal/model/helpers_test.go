package model

import (
	"strings"
	"testing"

	"github.com/benbeisheim/chess-console/internal/boardgame"
)

var codeToType = map[byte]PieceType{
	'K': King, 'Q': Queen, 'R': Rook, 'B': Bishop, 'N': Knight, 'P': Pawn,
}

func posOf(row, column int) boardgame.Position {
	return boardgame.Position{Row: row, Column: column}
}

func mustSquare(s string) ChessPosition {
	cp, err := ParseChessPosition(s)
	if err != nil {
		panic(err)
	}
	return cp
}

func mustPos(s string) boardgame.Position {
	return mustSquare(s).ToPosition()
}

// setupMatch builds a match holding only the given pieces. Upper case codes are
// white, lower case black.
func setupMatch(t *testing.T, pieces map[string]string) *Match {
	t.Helper()
	m := newEmptyMatch()
	for square, code := range pieces {
		color := PlayerColorWhite
		if strings.ToLower(code) == code {
			color = PlayerColorBlack
		}
		pieceType, ok := codeToType[strings.ToUpper(code)[0]]
		if !ok {
			t.Fatalf("unknown piece code %q", code)
		}
		cp := mustSquare(square)
		m.placeNewPiece(cp.Column, cp.Row, newPiece(pieceType, color))
	}
	return m
}

// play performs moves written as "e2e4" and fails the test on the first error.
func play(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.PerformMove(mustSquare(mv[:2]), mustSquare(mv[2:])); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
	}
}

// layout draws the board one rank per line, upper case for white.
func layout(m *Match) string {
	var sb strings.Builder
	for _, row := range m.Pieces() {
		for _, p := range row {
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.Color == PlayerColorWhite:
				sb.WriteString(p.Type.Code())
			default:
				sb.WriteString(strings.ToLower(p.Type.Code()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// assertConsistent checks that the rosters and the board agree.
func assertConsistent(t *testing.T, m *Match) {
	t.Helper()
	onBoard := make(map[*Piece]bool)
	for _, p := range m.OnBoard() {
		pos, ok := p.Position()
		if !ok {
			t.Fatalf("%v is on the roster but has no position", p)
		}
		if m.board.At(pos) != p {
			t.Fatalf("%v claims %v but the board holds %v", p, pos, m.board.At(pos))
		}
		onBoard[p] = true
	}
	count := 0
	for _, row := range m.Pieces() {
		for _, p := range row {
			if p == nil {
				continue
			}
			count++
			if !onBoard[p] {
				t.Fatalf("%v is on the board but not on the roster", p)
			}
		}
	}
	if count != len(onBoard) {
		t.Fatalf("board holds %d pieces, roster %d", count, len(onBoard))
	}
	for _, p := range m.Captured() {
		if onBoard[p] {
			t.Fatalf("%v is both captured and on the board", p)
		}
		if _, ok := p.Position(); ok {
			t.Fatalf("captured %v still has a position", p)
		}
	}
}
