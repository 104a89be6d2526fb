package service

import (
	"fmt"

	"github.com/benbeisheim/chessmodel/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(opts CreateOptions) (GameView, error) {
	s, err := gs.gameManager.CreateGame(opts)
	if err != nil {
		return GameView{}, fmt.Errorf("failed to create game: %w", err)
	}
	return s.View(), nil
}

func (gs *GameService) GetGameState(gameID string) (GameView, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return s.View(), nil
}

func (gs *GameService) ValidateMove(gameID string, m model.Move) (Validation, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return Validation{}, err
	}
	return s.Validate(m), nil
}

func (gs *GameService) HandleMove(gameID string, m model.Move) (GameView, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return s.Play(m)
}

func (gs *GameService) Undo(gameID string) (GameView, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return s.Undo()
}

func (gs *GameService) Castle(gameID string, side CastleSide) (GameView, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return s.Castle(side)
}

func (gs *GameService) ComputerMove(gameID string) (GameView, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return GameView{}, err
	}
	return s.ComputerMove()
}

func (gs *GameService) FindPieces(gameID string, owner model.Player, kind model.Kind) ([]model.Coord, error) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	return s.FindPieces(owner, kind), nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) Subscribe(gameID, subscriberID string, fn Observer) error {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	s.Subscribe(subscriberID, fn)
	return nil
}

func (gs *GameService) Unsubscribe(gameID, subscriberID string) {
	s, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	s.Unsubscribe(subscriberID)
}
