package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
	"github.com/benbeisheim/chessmodel/internal/ws"
)

type push struct {
	kind ws.MessageType
	view service.GameView
}

func wsMessage(t ws.MessageType, payload string) ws.Message {
	msg := ws.Message{Type: t}
	if payload != "" {
		msg.Payload = json.RawMessage(payload)
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	gs := service.NewGameService(service.NewGameManager())
	wsc := NewWebSocketController(gs)

	start, err := gs.CreateGame(service.CreateOptions{FEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1"})
	if err != nil {
		t.Fatal(err)
	}
	id := start.ID

	var pushes []push
	if err := gs.Subscribe(id, "test", pushState(func(kind ws.MessageType, payload any) {
		pushes = append(pushes, push{kind: kind, view: payload.(service.GameView)})
	})); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		msg     ws.Message
		wantErr error
		errText string
		check   func(t *testing.T, v service.GameView)
	}{
		{
			name: "move",
			msg:  wsMessage(ws.MessageTypeMove, `{"from":"e2","to":"e4"}`),
			check: func(t *testing.T, v service.GameView) {
				if v.LastMoveText != "e2e4" || v.ToMove != model.Black {
					t.Fatalf("unexpected state %+v", v)
				}
			},
		},
		{
			name:    "illegal move",
			msg:     wsMessage(ws.MessageTypeMove, `{"from":"e7","to":"e4"}`),
			wantErr: service.ErrIllegalMove,
		},
		{
			name:    "malformed move",
			msg:     wsMessage(ws.MessageTypeMove, `{"from":"z9","to":"e4"}`),
			wantErr: model.ErrMalformedMove,
		},
		{
			name: "undo",
			msg:  wsMessage(ws.MessageTypeUndo, ""),
			check: func(t *testing.T, v service.GameView) {
				if v.HistoryLen != 0 || v.FEN != start.FEN {
					t.Fatalf("undo did not restore the start: %+v", v)
				}
			},
		},
		{
			name: "castle",
			msg:  wsMessage(ws.MessageTypeCastle, `{"side":"queen"}`),
			check: func(t *testing.T, v service.GameView) {
				if v.FEN != "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b - - 0 1" || v.HistoryLen != 2 {
					t.Fatalf("unexpected position %s", v.FEN)
				}
			},
		},
		{
			name:    "castle unknown side",
			msg:     wsMessage(ws.MessageTypeCastle, `{"side":"middle"}`),
			wantErr: service.ErrCannotCastle,
		},
		{
			name:    "castle bad payload",
			msg:     wsMessage(ws.MessageTypeCastle, `"oops"`),
			errText: "cannot unmarshal",
		},
		{
			name: "ai",
			msg:  wsMessage(ws.MessageTypeAI, ""),
			check: func(t *testing.T, v service.GameView) {
				if v.HistoryLen != 3 || v.ToMove != model.White {
					t.Fatalf("computer move not applied: %+v", v)
				}
			},
		},
		{
			name:    "unknown type",
			msg:     wsMessage("resign", ""),
			errText: "unknown message type: resign",
		},
	}

	for _, tt := range tests {
		before, _ := gs.GetGameState(id)
		err := wsc.handleMessage(id, tt.msg)

		switch {
		case tt.wantErr != nil:
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("%s: got %v, want %v", tt.name, err, tt.wantErr)
			}
		case tt.errText != "":
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Fatalf("%s: got %v, want an error containing %q", tt.name, err, tt.errText)
			}
		case err != nil:
			t.Fatalf("%s: %v", tt.name, err)
		}

		after, _ := gs.GetGameState(id)
		if tt.check == nil {
			if after.Version != before.Version {
				t.Fatalf("%s: a rejected message changed the game", tt.name)
			}
			continue
		}
		tt.check(t, after)
		if len(pushes) == 0 || pushes[len(pushes)-1].view.Version != after.Version {
			t.Fatalf("%s: no gameState push for the change", tt.name)
		}
	}

	if len(pushes) != 4 {
		t.Fatalf("expected one push per accepted message, got %d", len(pushes))
	}
	for _, p := range pushes {
		if p.kind != ws.MessageTypeGameState {
			t.Fatalf("pushed %s, want %s", p.kind, ws.MessageTypeGameState)
		}
	}
}

func TestHandleMessageUnknownGame(t *testing.T) {
	wsc := NewWebSocketController(service.NewGameService(service.NewGameManager()))
	err := wsc.handleMessage("missing", wsMessage(ws.MessageTypeUndo, ""))
	if !errors.Is(err, service.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
