package ws

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessmodel/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeCastle    MessageType = "castle"
	MessageTypeAI        MessageType = "ai"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload names a move either by algebraic squares ("e2", "e4") or by
// grid coordinates. Squares win when both are present.
type MovePayload struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	FromRow *int   `json:"fromRow,omitempty"`
	FromCol *int   `json:"fromCol,omitempty"`
	ToRow   *int   `json:"toRow,omitempty"`
	ToCol   *int   `json:"toCol,omitempty"`
}

func (p MovePayload) Move() (model.Move, error) {
	if p.From != "" || p.To != "" {
		from, err := model.ParseSquare(p.From)
		if err != nil {
			return model.Move{}, err
		}
		to, err := model.ParseSquare(p.To)
		if err != nil {
			return model.Move{}, err
		}
		return model.NewMove(from, to), nil
	}
	if p.FromRow == nil || p.FromCol == nil || p.ToRow == nil || p.ToCol == nil {
		return model.Move{}, fmt.Errorf("%w: missing coordinates", model.ErrMalformedMove)
	}
	m := model.Move{FromRow: *p.FromRow, FromCol: *p.FromCol, ToRow: *p.ToRow, ToCol: *p.ToCol}
	if !m.From().Valid() || !m.To().Valid() {
		return model.Move{}, fmt.Errorf("%w: %s", model.ErrOutOfBounds, m)
	}
	return m, nil
}

type CastlePayload struct {
	Side string `json:"side"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes payload into a Message of type t.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
