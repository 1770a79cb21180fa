package service

import (
	"fmt"
	"time"

	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a game from the standard position, or from fen when it
// is non-empty.
func (gs *GameService) CreateGame(fen string) (string, error) {
	board := model.NewBoard()
	if fen != "" {
		b, err := model.ParseFEN(fen)
		if err != nil {
			return "", fmt.Errorf("failed to create game: %w", err)
		}
		board = b
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.AddGame(model.NewGameFromBoard(gameID, board)); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (model.MatchFoundEvent, bool, bool) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) QueueWait(playerID string) (time.Duration, bool) {
	return gs.gameManager.QueueWait(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RenderBoard(gameID string) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.Render(), nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) error {
	m, err := move.Move()
	if err != nil {
		return err
	}
	return gs.gameManager.MakeMove(gameID, playerID, m)
}

func (gs *GameService) Resign(gameID string, playerID string) error {
	return gs.gameManager.Resign(gameID, playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
