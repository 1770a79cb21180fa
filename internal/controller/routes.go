package controller

import (
	"github.com/benbeisheim/consolechess/internal/middleware"
	"github.com/benbeisheim/consolechess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api/game and the live game socket
// under /ws/game/:gameId. origins is the allowed browser origin list.
func SetupRoutes(app *fiber.App, gameService *service.GameService, origins []string) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Use("/ws", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())
	gameController.Register(api.Group("/game"))
}
