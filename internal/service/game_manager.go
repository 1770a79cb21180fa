package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/google/uuid"
)

// GameManager owns every live game and the matchmaking queue.
type GameManager struct {
	games   map[string]*model.Game
	queue   *model.Queue
	matches map[string]model.MatchFoundEvent // playerID -> pending match
	mu      sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:   make(map[string]*model.Game),
		queue:   model.NewQueue(),
		matches: make(map[string]model.MatchFoundEvent),
	}
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.matchPlayers()
		}
	}
}

// matchPlayers creates a game for every pair in the queue and records a
// MatchFoundEvent for both players.
func (gm *GameManager) matchPlayers() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	created := 0
	for {
		player1, player2, ok := gm.queue.GetNextPair()
		if !ok {
			return created
		}

		gameID := uuid.New().String()
		game := model.NewGame(gameID)
		p1Color, err := game.AddPlayer(player1.ID)
		if err != nil {
			log.Printf("matchmaking: adding player %s: %v", player1.ID, err)
			continue
		}
		p2Color, err := game.AddPlayer(player2.ID)
		if err != nil {
			log.Printf("matchmaking: adding player %s: %v", player2.ID, err)
			continue
		}
		gm.games[gameID] = game
		gm.matches[player1.ID] = model.MatchFoundEvent{GameID: gameID, Color: p1Color}
		gm.matches[player2.ID] = model.MatchFoundEvent{GameID: gameID, Color: p2Color}
		log.Printf("matchmaking: %s (%s) vs %s (%s) in game %s", player1.ID, p1Color, player2.ID, p2Color, gameID)
		created++
	}
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matches, playerID)
	if err := gm.queue.AddPlayer(model.Player{ID: playerID}); err != nil {
		return fmt.Errorf("join matchmaking: %w", err)
	}
	return nil
}

// MatchStatus returns the match found for playerID, if any. queued reports
// whether the player is still waiting.
func (gm *GameManager) MatchStatus(playerID string) (event model.MatchFoundEvent, found bool, queued bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	event, found = gm.matches[playerID]
	return event, found, gm.queue.Contains(playerID)
}

// QueueWait reports how long playerID has been waiting for an opponent.
func (gm *GameManager) QueueWait(playerID string) (time.Duration, bool) {
	return gm.queue.WaitTime(playerID, time.Now())
}

func (gm *GameManager) AddGame(game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[game.ID]; exists {
		return fmt.Errorf("game %s already exists", game.ID)
	}
	gm.games[game.ID] = game
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.Move) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gm *GameManager) Resign(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Resign(playerID)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
