package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/benbeisheim/consolechess/internal/service"
	"github.com/benbeisheim/consolechess/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	if gameID == "" {
		gameID = c.Params("gameId")
	}
	playerID, _ := c.Locals("playerID").(string)

	// Broadcasts write to the same connection from other goroutines.
	out := model.NewLockedConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, playerID, out); err != nil {
		log.Printf("failed to register connection: %v", err)
		out.WriteJSON(ws.NewErrorMessage(err.Error()))
		out.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			out.WriteJSON(ws.NewErrorMessage(model.ErrInvalidFormat.Error()))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			out.WriteJSON(ws.NewErrorMessage(err.Error()))
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidFormat, err)
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)
	case ws.MessageTypeResign:
		return wsc.gameService.Resign(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
