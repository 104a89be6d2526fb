package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
)

// CreateOptions configures a new session. The zero value is a two-player game
// from the standard position.
type CreateOptions struct {
	Computer *model.Player
	FEN      string
}

type GameManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(opts CreateOptions) (*Session, error) {
	g := model.NewGame()
	if opts.FEN != "" {
		var err error
		if g, err = fen.Decode(opts.FEN); err != nil {
			return nil, err
		}
	}
	s := NewSession(g, opts.Computer)

	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, exists := gm.sessions[s.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, s.ID)
	}
	gm.sessions[s.ID] = s
	log.Printf("created game %s (%s)", s.ID, s.Name)
	return s, nil
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.sessions[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return s, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.sessions, gameID)
	log.Printf("deleted game %s", gameID)
	return nil
}

func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.sessions)
}
