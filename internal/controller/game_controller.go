// Package controller runs the console game loop.
package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/benbeisheim/chess-console/internal/boardgame"
	"github.com/benbeisheim/chess-console/internal/errors"
	"github.com/benbeisheim/chess-console/internal/model"
	"github.com/benbeisheim/chess-console/internal/service"
)

// View draws the match and reads the player's input. Reads return ErrQuit when
// the player leaves.
type View interface {
	Render(pieces [][]*model.Piece, highlight boardgame.Mask, status []string)
	ReadChessPosition(prompt string) (model.ChessPosition, error)
	ReadPromotion() (string, error)
	ReadKey(prompt string) (rune, error)
	Glyphs(pieces []*model.Piece) string
}

type GameController struct {
	gameService *service.GameService
	view        View
	message     string
	log         *slog.Logger
}

func NewGameController(gameService *service.GameService, view View) *GameController {
	return &GameController{
		gameService: gameService,
		view:        view,
		log:         slog.Default().With("package", "controller"),
	}
}

// Run plays matches until the player quits or ctx is cancelled. Cancellation is
// noticed between prompts. Quitting is not an error.
func (gc *GameController) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		status := gc.gameService.Status()
		if status.Checkmate || status.Stalemate {
			again, err := gc.gameOver()
			if err != nil {
				return quitIsNil(err)
			}
			if !again {
				return nil
			}
			gc.log.Info("new game requested", "previous", status.MatchID)
			gc.gameService.NewGame()
			continue
		}

		err := gc.playTurn()
		switch {
		case err == nil:
			gc.message = ""
		case errors.IsRuleViolation(err):
			gc.message = err.Error()
		default:
			return quitIsNil(err)
		}
	}
}

// playTurn reads one move: the origin, then the target with the origin's
// destinations highlighted.
func (gc *GameController) playTurn() error {
	gc.render(nil)
	source, err := gc.view.ReadChessPosition("Source: ")
	if err != nil {
		return err
	}
	mask, err := gc.gameService.PossibleMoves(source.String())
	if err != nil {
		return err
	}

	gc.message = ""
	gc.render(mask)
	target, err := gc.view.ReadChessPosition("Target: ")
	if err != nil {
		return err
	}
	if _, err := gc.gameService.Move(source.String(), target.String()); err != nil {
		return err
	}

	if gc.gameService.Status().PendingPromotion {
		return gc.promote()
	}
	return nil
}

// promote asks for the promoted piece until a valid code is given.
func (gc *GameController) promote() error {
	gc.message = ""
	for {
		gc.render(nil)
		code, err := gc.view.ReadPromotion()
		if err != nil {
			return err
		}
		if _, err := gc.gameService.Promote(code); err != nil {
			if !errors.IsRuleViolation(err) {
				return err
			}
			gc.message = err.Error()
			continue
		}
		return nil
	}
}

// gameOver shows the result and reports whether the player wants another game.
func (gc *GameController) gameOver() (bool, error) {
	gc.render(nil)
	for {
		key, err := gc.view.ReadKey("New game? (y/n): ")
		if err != nil {
			return false, err
		}
		switch key {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N', 'q', 'Q':
			return false, nil
		}
	}
}

func (gc *GameController) render(highlight boardgame.Mask) {
	gc.view.Render(gc.gameService.Board(), highlight, gc.statusLines())
}

func (gc *GameController) statusLines() []string {
	status := gc.gameService.Status()

	turn := fmt.Sprintf("Turn %d", status.Turn)
	if status.LastMove != "" {
		turn += fmt.Sprintf(" (last move %s)", status.LastMove)
	}
	lines := []string{
		turn,
		"Captured by white: " + gc.view.Glyphs(status.CapturedByWhite),
		"Captured by black: " + gc.view.Glyphs(status.CapturedByBlack),
	}

	switch {
	case status.Checkmate:
		lines = append(lines, "CHECKMATE!", fmt.Sprintf("Winner: %s", status.Winner))
	case status.Stalemate:
		lines = append(lines, "STALEMATE!")
	case status.PendingPromotion:
		// The turn has already passed to the opponent of the promoting player.
		lines = append(lines, fmt.Sprintf("Promotion for %s", status.CurrentPlayer.Opponent()))
	default:
		lines = append(lines, fmt.Sprintf("Waiting for %s", status.CurrentPlayer))
		if status.Check {
			lines = append(lines, "CHECK!")
		}
	}

	if gc.message != "" {
		lines = append(lines, gc.message)
	}
	return lines
}

func quitIsNil(err error) error {
	if errors.Is(err, errors.ErrQuit) {
		return nil
	}
	return err
}
