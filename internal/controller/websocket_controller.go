package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/benbeisheim/chessmodel/internal/service"
	"github.com/benbeisheim/chessmodel/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// sender delivers one typed message to a client.
type sender func(t ws.MessageType, payload any)

// pushState forwards every session change to send as a gameState message.
func pushState(send sender) service.Observer {
	return func(v service.GameView) {
		send(ws.MessageTypeGameState, v)
	}
}

// conn serializes writes: session observers run on whichever goroutine
// changed the game.
type conn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(t ws.MessageType, payload any) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		log.Printf("encode %s: %v", t, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.WriteJSON(msg); err != nil {
		log.Printf("write %s: %v", t, err)
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	subscriberID := playerID + "/" + uuid.New().String()
	cc := &conn{Conn: c}

	state, err := wsc.gameService.GetGameState(gameID)
	if err != nil {
		cc.send(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
		c.Close()
		return
	}
	if err := wsc.gameService.Subscribe(gameID, subscriberID, pushState(cc.send)); err != nil {
		log.Printf("subscribe %s: %v", gameID, err)
		c.Close()
		return
	}
	defer wsc.gameService.Unsubscribe(gameID, subscriberID)
	log.Printf("player %s connected to game %s", playerID, gameID)
	cc.send(ws.MessageTypeGameState, state)

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
			cc.send(ws.MessageTypeError, ws.ErrorPayload{Error: "malformed message"})
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			cc.send(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
		}
	}
}

// handleMessage applies one client request. Successful changes reach every
// subscriber, this connection included, through the session observers.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	var err error
	switch msg.Type {
	case ws.MessageTypeMove:
		var p ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		m, err := p.Move()
		if err != nil {
			return err
		}
		_, err = wsc.gameService.HandleMove(gameID, m)
		return err
	case ws.MessageTypeUndo:
		_, err = wsc.gameService.Undo(gameID)
	case ws.MessageTypeCastle:
		var p ws.CastlePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		_, err = wsc.gameService.Castle(gameID, service.CastleSide(p.Side))
	case ws.MessageTypeAI:
		_, err = wsc.gameService.ComputerMove(gameID)
	default:
		err = fmt.Errorf("unknown message type: %s", msg.Type)
	}
	return err
}
