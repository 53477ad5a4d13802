package model

import (
	"testing"

	chesserrors "github.com/benbeisheim/chess-console/internal/errors"
	"github.com/benbeisheim/chess-console/internal/testutil"
)

func TestPromotion_AutoQueenThenKnight(t *testing.T) {
	m := setupMatch(t, map[string]string{"a7": "P", "e1": "K", "h5": "k"})
	pawn := m.board.At(mustPos("a7"))

	play(t, m, "a7a8")

	queen := m.board.At(mustPos("a8"))
	if queen == nil || queen.Type != Queen || queen.Color != PlayerColorWhite {
		t.Fatalf("a8 = %v; want white queen", queen)
	}
	if m.Promoted() != queen {
		t.Errorf("Promoted() = %v; want the new queen", m.Promoted())
	}
	testutil.AssertTrue(t, m.PromotionPending(), "promotion pending after auto-queen")
	for _, p := range m.OnBoard() {
		if p == pawn {
			t.Error("promoted pawn still on the roster")
		}
	}
	testutil.AssertEqual(t, m.History()[0].Promotion, Queen)
	testutil.AssertEqual(t, m.CurrentPlayer(), PlayerColorBlack)

	knight, err := m.ReplacePromotedPiece("N")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, knight.Type, Knight)
	testutil.AssertEqual(t, knight.Color, PlayerColorWhite)
	testutil.AssertEqual(t, knight.MoveCount(), 1)
	if m.board.At(mustPos("a8")) != knight {
		t.Errorf("a8 = %v; want the knight", m.board.At(mustPos("a8")))
	}
	for _, p := range m.OnBoard() {
		if p.Type == Queen {
			t.Errorf("queen %v still on the roster", p)
		}
	}
	testutil.AssertEqual(t, len(m.OnBoard()), 3)
	testutil.AssertEqual(t, m.History()[0].Promotion, Knight)
	testutil.AssertFalse(t, m.PromotionPending(), "promotion pending after replacement")
	testutil.AssertEqual(t, m.Turn(), 2)
	testutil.AssertEqual(t, m.CurrentPlayer(), PlayerColorBlack)
	assertConsistent(t, m)
}

func TestPromotion_BlackPawn(t *testing.T) {
	m := setupMatch(t, map[string]string{"h2": "p", "e8": "k", "a4": "K", "c3": "P"})
	play(t, m, "c3c4", "h2h1")

	testutil.AssertEqual(t, m.board.At(mustPos("h1")).Type, Queen)
	testutil.AssertEqual(t, m.board.At(mustPos("h1")).Color, PlayerColorBlack)

	rook, err := m.ReplacePromotedPiece("r")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rook.Type, Rook)
}

func TestPromotion_ReplacementGivesCheck(t *testing.T) {
	m := setupMatch(t, map[string]string{"e7": "P", "a1": "K", "g7": "k"})
	play(t, m, "e7e8")
	testutil.AssertFalse(t, m.Check(), "queen on e8 does not reach g7")

	_, err := m.ReplacePromotedPiece("N")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.Check(), "knight on e8 checks g7")
	testutil.AssertFalse(t, m.Checkmate(), "checkmate")
	testutil.AssertEqual(t, m.CurrentPlayer(), PlayerColorBlack)
	testutil.AssertEqual(t, m.Turn(), 2)
}

func TestPromotion_Errors(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		m := NewMatch()
		_, err := m.ReplacePromotedPiece("Q")
		testutil.AssertErrorIs(t, err, chesserrors.ErrPromotion)
	})

	for _, code := range []string{"K", "P", "", "queen", "X"} {
		t.Run("code "+code, func(t *testing.T) {
			m := setupMatch(t, map[string]string{"a7": "P", "e1": "K", "h5": "k"})
			play(t, m, "a7a8")
			before := layout(m)

			_, err := m.ReplacePromotedPiece(code)
			testutil.AssertErrorIs(t, err, chesserrors.ErrPromotion)
			testutil.AssertEqual(t, layout(m), before)
		})
	}

	t.Run("cleared by the next move", func(t *testing.T) {
		m := setupMatch(t, map[string]string{"a7": "P", "e1": "K", "h5": "k"})
		play(t, m, "a7a8", "h5h4")
		testutil.AssertTrue(t, m.Promoted() == nil, "promotion still pending")

		_, err := m.ReplacePromotedPiece("N")
		testutil.AssertErrorIs(t, err, chesserrors.ErrPromotion)
	})
}

func TestPromotion_ReplacementLiftsMate(t *testing.T) {
	m := setupMatch(t, map[string]string{"a7": "P", "e1": "K", "h8": "k", "g7": "p", "h7": "p"})
	play(t, m, "a7a8")
	testutil.AssertTrue(t, m.Checkmate(), "back rank mate by the queen")
	testutil.AssertEqual(t, m.Turn(), 1)

	_, err := m.ReplacePromotedPiece("N")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, m.Over(), "match still over")
	testutil.AssertFalse(t, m.Check(), "check")
	testutil.AssertEqual(t, m.Turn(), 2)
	testutil.AssertEqual(t, m.CurrentPlayer(), PlayerColorBlack)

	play(t, m, "h8g8")
}

func TestPromotion_PendingLifecycle(t *testing.T) {
	m := setupMatch(t, map[string]string{"a7": "P", "e1": "K", "h5": "k"})
	testutil.AssertFalse(t, m.PromotionPending(), "pending before any move")

	play(t, m, "a7a8")
	testutil.AssertTrue(t, m.PromotionPending(), "pending after auto-queen")

	_, err := m.ReplacePromotedPiece("N")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, m.PromotionPending(), "pending after knight chosen")

	// The choice can still be revised until the next move.
	rook, err := m.ReplacePromotedPiece("R")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rook.Type, Rook)
	testutil.AssertFalse(t, m.PromotionPending(), "pending after rook chosen")

	play(t, m, "h5h4")
	testutil.AssertFalse(t, m.PromotionPending(), "pending after the next move")
	assertConsistent(t, m)
}
