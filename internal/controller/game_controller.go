package controller

import (
	"errors"

	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/benbeisheim/consolechess/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrNotInGame),
		errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case model.IsRejection(err):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), playerID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetBoard(c *fiber.Ctx) error {
	rendered, err := gc.gameService.RenderBoard(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(rendered)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	gameID := c.Params("gameId")
	if err := gc.gameService.HandleMove(gameID, playerID(c), move); err != nil {
		return errorResponse(c, err)
	}
	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Resign(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if err := gc.gameService.Resign(gameID, playerID(c)); err != nil {
		return errorResponse(c, err)
	}
	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	if err := gc.gameService.JoinMatchmaking(playerID(c)); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	id := playerID(c)
	event, found, queued := gc.gameService.MatchStatus(id)
	switch {
	case found:
		return c.JSON(fiber.Map{
			"status": "matched",
			"match":  event,
		})
	case queued:
		wait, _ := gc.gameService.QueueWait(id)
		return c.JSON(fiber.Map{
			"status":      "queued",
			"waitSeconds": int(wait.Seconds()),
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "not in matchmaking",
	})
}

// Register mounts the game routes on router.
func (gc *GameController) Register(router fiber.Router) {
	router.Post("/matchmaking/join", gc.JoinMatchmaking)
	router.Get("/matchmaking/status", gc.MatchmakingStatus)
	router.Post("/create", gc.CreateGame)
	router.Post("/join/:gameId", gc.JoinGame)
	router.Get("/:gameId", gc.GetGameState)
	router.Get("/:gameId/board", gc.GetBoard)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Post("/:gameId/resign", gc.Resign)
}
