package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/benbeisheim/chess-console/internal/model"
)

// GameManager keeps the matches of a session by id. It is the only type in the
// service package that is safe for concurrent use.
type GameManager struct {
	games map[string]*model.Match
	mu    sync.RWMutex
	log   *slog.Logger
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Match),
		log:   slog.Default().With("package", "service"),
	}
}

// CreateGame starts a match in the standard position and returns it.
func (gm *GameManager) CreateGame() *model.Match {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	match := model.NewMatch()
	gm.games[match.ID] = match
	gm.log.Info("game created", "match", match.ID, "games", len(gm.games))
	return match
}

func (gm *GameManager) GetGame(gameID string) (*model.Match, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	match, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return match, nil
}

// EndGame discards the match. Unknown ids are ignored.
func (gm *GameManager) EndGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return
	}
	delete(gm.games, gameID)
	gm.log.Info("game ended", "match", gameID, "games", len(gm.games))
}

func (gm *GameManager) Size() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
