// Package service exposes a chess match in string coordinates ("e2") for the
// console front end.
package service

import (
	"log/slog"

	"github.com/benbeisheim/chess-console/internal/boardgame"
	"github.com/benbeisheim/chess-console/internal/errors"
	"github.com/benbeisheim/chess-console/internal/model"
)

// GameStatus is everything a front end needs to describe the match besides the
// board itself.
type GameStatus struct {
	MatchID          string
	Turn             int
	CurrentPlayer    model.PlayerColor
	Check            bool
	Checkmate        bool
	Stalemate        bool
	Winner           model.PlayerColor
	PendingPromotion bool
	CapturedByWhite  []*model.Piece
	CapturedByBlack  []*model.Piece
	LastMove         string
}

// GameService owns the current match of a session. It is not safe for
// concurrent use.
type GameService struct {
	gameManager *GameManager
	match       *model.Match
	log         *slog.Logger
}

// NewGameService starts a first game right away.
func NewGameService(gameManager *GameManager) *GameService {
	gs := &GameService{
		gameManager: gameManager,
		log:         slog.Default().With("package", "service"),
	}
	gs.NewGame()
	return gs
}

// NewGame discards the current match and starts a new one. It returns the new
// match id.
func (gs *GameService) NewGame() string {
	if gs.match != nil {
		gs.gameManager.EndGame(gs.match.ID)
	}
	gs.match = gs.gameManager.CreateGame()
	return gs.match.ID
}

func (gs *GameService) MatchID() string {
	return gs.match.ID
}

// Board returns the layout indexed [row][column], rank 8 first.
func (gs *GameService) Board() [][]*model.Piece {
	return gs.match.Pieces()
}

// PossibleMoves returns the destinations of the piece on square.
func (gs *GameService) PossibleMoves(square string) (boardgame.Mask, error) {
	source, err := model.ParseChessPosition(square)
	if err != nil {
		return nil, err
	}
	mask, err := gs.match.PossibleMoves(source)
	if err != nil {
		gs.log.Debug("no moves", "match", gs.match.ID, "turn", gs.match.Turn(), "square", square, "err", err)
		return nil, err
	}
	return mask, nil
}

// Move plays source to target and returns the captured piece, if any.
func (gs *GameService) Move(source, target string) (*model.Piece, error) {
	from, err := model.ParseChessPosition(source)
	if err != nil {
		return nil, errors.Wrap(err, "source")
	}
	to, err := model.ParseChessPosition(target)
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}

	turn := gs.match.Turn()
	captured, err := gs.match.PerformMove(from, to)
	if err != nil {
		gs.log.Info("move rejected", "match", gs.match.ID, "turn", turn, "from", from, "to", to, "err", err)
		return nil, err
	}

	args := []any{"match", gs.match.ID, "turn", turn, "from", from, "to", to}
	if captured != nil {
		args = append(args, "captured", captured.String())
	}
	gs.log.Info("move", args...)
	gs.logOutcome()
	return captured, nil
}

// Promote replaces the piece promoted on the last move. code is one of B, N, R
// or Q.
func (gs *GameService) Promote(code string) (*model.Piece, error) {
	piece, err := gs.match.ReplacePromotedPiece(code)
	if err != nil {
		gs.log.Info("promotion rejected", "match", gs.match.ID, "code", code, "err", err)
		return nil, err
	}
	gs.log.Info("promotion", "match", gs.match.ID, "piece", piece.String())
	gs.logOutcome()
	return piece, nil
}

func (gs *GameService) Status() GameStatus {
	m := gs.match
	status := GameStatus{
		MatchID:          m.ID,
		Turn:             m.Turn(),
		CurrentPlayer:    m.CurrentPlayer(),
		Check:            m.Check(),
		Checkmate:        m.Checkmate(),
		Stalemate:        m.Stalemate(),
		PendingPromotion: m.PromotionPending(),
		CapturedByWhite:  m.CapturedBy(model.PlayerColorWhite),
		CapturedByBlack:  m.CapturedBy(model.PlayerColorBlack),
	}
	if winner, ok := m.Winner(); ok {
		status.Winner = winner
	}
	if history := m.History(); len(history) > 0 {
		status.LastMove = history[len(history)-1].String()
	}
	return status
}

func (gs *GameService) logOutcome() {
	m := gs.match
	switch {
	case m.Checkmate():
		winner, _ := m.Winner()
		gs.log.Info("checkmate", "match", m.ID, "turn", m.Turn(), "winner", winner)
	case m.Stalemate():
		gs.log.Info("stalemate", "match", m.ID, "turn", m.Turn())
	case m.Check():
		gs.log.Debug("check", "match", m.ID, "turn", m.Turn(), "player", m.CurrentPlayer())
	}
}
