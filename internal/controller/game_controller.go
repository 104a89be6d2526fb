package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
	"github.com/benbeisheim/chessmodel/internal/ws"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createRequest struct {
	Computer string `json:"computer"`
	FEN      string `json:"fen"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, err)
		}
	}

	opts := service.CreateOptions{FEN: req.FEN}
	if req.Computer != "" {
		side, err := model.ParsePlayer(req.Computer)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, err)
		}
		opts.Computer = &side
	}

	view, err := gc.gameService.CreateGame(opts)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": view.ID,
		"game":    view,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	view, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	m, err := parseMove(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	view, err := gc.gameService.HandleMove(c.Params("gameId"), m)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) ValidateMove(c *fiber.Ctx) error {
	m, err := parseMove(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	res, err := gc.gameService.ValidateMove(c.Params("gameId"), m)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	view, err := gc.gameService.Undo(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) Castle(c *fiber.Ctx) error {
	var req ws.CastlePayload
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	view, err := gc.gameService.Castle(c.Params("gameId"), service.CastleSide(req.Side))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) ComputerMove(c *fiber.Ctx) error {
	view, err := gc.gameService.ComputerMove(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) FindPieces(c *fiber.Ctx) error {
	owner, err := model.ParsePlayer(c.Query("owner"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	kind, err := model.ParseKind(c.Query("kind"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	squares, err := gc.gameService.FindPieces(c.Params("gameId"), owner, kind)
	if err != nil {
		return respondError(c, err)
	}
	if squares == nil {
		squares = []model.Coord{}
	}
	return c.JSON(fiber.Map{
		"owner":   owner,
		"kind":    kind,
		"squares": squares,
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game deleted",
	})
}

func parseMove(c *fiber.Ctx) (model.Move, error) {
	var p ws.MovePayload
	if err := c.BodyParser(&p); err != nil {
		return model.Move{}, err
	}
	return p.Move()
}

// statusFor maps service and model errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotYourTurn), errors.Is(err, service.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrIllegalMove),
		errors.Is(err, service.ErrCannotCastle),
		errors.Is(err, service.ErrNoMove),
		errors.Is(err, model.ErrEmptyHistory):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrMalformedMove), errors.Is(err, model.ErrOutOfBounds):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return fail(c, status, errors.New("internal error"))
	}
	return fail(c, status, err)
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
