package service

import (
	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
)

// Square is one occupied cell of a GameView board.
type Square struct {
	Kind  model.Kind   `json:"kind"`
	Owner model.Player `json:"owner"`
}

// GameView is a read-only snapshot of a session, safe to hand to clients.
// Version grows with every change, so a client can drop stale pushes.
type GameView struct {
	ID           string                          `json:"id"`
	Name         string                          `json:"name"`
	Version      uint64                          `json:"version"`
	Board        [model.Size][model.Size]*Square `json:"board"`
	ToMove       model.Player                    `json:"toMove"`
	InCheck      bool                            `json:"inCheck"`
	Complete     bool                            `json:"complete"`
	Winner       *model.Player                   `json:"winner,omitempty"`
	LastValidity model.Validity                  `json:"lastValidity"`
	Message      string                          `json:"message,omitempty"`
	HistoryLen   int                             `json:"historyLen"`
	FEN          string                          `json:"fen"`
	LastMove     *model.Move                     `json:"lastMove,omitempty"`
	LastMoveText string                          `json:"lastMoveText,omitempty"`
	Computer     *model.Player                   `json:"computer,omitempty"`
}

// Validation is the answer to a dry-run move check.
type Validation struct {
	Move     model.Move     `json:"move"`
	Valid    bool           `json:"valid"`
	Validity model.Validity `json:"validity"`
	Message  string         `json:"message,omitempty"`
}

// view must be called with s.mu held.
func (s *Session) view() GameView {
	v := GameView{
		ID:           s.ID,
		Name:         s.Name,
		Version:      s.version,
		ToMove:       s.game.CurrentPlayer(),
		InCheck:      s.game.InCheck(s.game.CurrentPlayer()),
		Complete:     s.game.IsComplete(),
		LastValidity: s.game.LastValidity(),
		Message:      s.game.LastValidity().Message(),
		HistoryLen:   s.game.HistoryLen(),
		FEN:          fen.Encode(s.game),
	}

	b := s.game.Board()
	b.Each(func(c model.Coord, p model.Piece) {
		v.Board[c.Row][c.Col] = &Square{Kind: p.Kind(), Owner: p.Owner()}
	})

	if v.Complete {
		winner := model.White
		if s.game.InCheck(model.White) {
			winner = model.Black
		}
		v.Winner = &winner
	}
	if n := len(s.turns); n > 0 {
		m := s.turns[n-1].move
		v.LastMove = &m
		v.LastMoveText = m.Algebraic()
	}
	if s.computer != nil {
		c := *s.computer
		v.Computer = &c
	}
	return v
}
