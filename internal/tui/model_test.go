package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
)

func newTestModel(computer *model.Player) Model {
	return NewModel(service.NewSession(model.NewGame(), computer), computer)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func lastLog(m Model) string { return m.logLines[len(m.logLines)-1] }

func TestCommands(t *testing.T) {
	m := newTestModel(nil)

	m.execCommand("e2e4")
	if v := m.session.View(); v.HistoryLen != 1 || v.ToMove != model.Black {
		t.Fatalf("move not applied: %+v", v)
	}
	if lastLog(m) != "last move e2e4" {
		t.Fatalf("unexpected log %q", lastLog(m))
	}

	m.execCommand("e2e4")
	if !strings.Contains(lastLog(m), "Invalid move.") {
		t.Fatalf("expected a rejection, got %q", lastLog(m))
	}

	m.execCommand("undo")
	m.execCommand("undo")
	if lastLog(m) != "nothing to undo" {
		t.Fatalf("unexpected log %q", lastLog(m))
	}

	m.execCommand("ai")
	if v := m.session.View(); v.LastMoveText != "e2e4" {
		t.Fatalf("computer move not applied: %+v", v)
	}

	m.execCommand("fly away")
	if lastLog(m) != "unknown command: fly" {
		t.Fatalf("unexpected log %q", lastLog(m))
	}
}

func TestFenAndNew(t *testing.T) {
	m := newTestModel(nil)
	m.execCommand("fen 4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if got := m.session.View().FEN; got != "4k3/8/8/8/8/8/8/4K2R w - - 0 1" {
		t.Fatalf("position not loaded: %s", got)
	}

	m.execCommand("castle king")
	if got := m.session.View().FEN; got != "4k3/8/8/8/8/8/8/5RK1 b - - 0 1" {
		t.Fatalf("castle not applied: %s", got)
	}

	m.execCommand("fen")
	if lastLog(m) != "4k3/8/8/8/8/8/8/5RK1 b - - 0 1" {
		t.Fatalf("unexpected log %q", lastLog(m))
	}

	m.execCommand("new")
	if got := m.session.View().FEN; got != fen.Start {
		t.Fatalf("new did not reset: %s", got)
	}
}

func TestComputerAnswers(t *testing.T) {
	black := model.Black
	m := newTestModel(&black)
	m.execCommand("e2e4")
	if v := m.session.View(); v.HistoryLen != 2 || v.LastMoveText != "e7e6" {
		t.Fatalf("computer did not answer: %+v", v)
	}
}

func TestKeys(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, key("i"))
	if m.m != modeInput {
		t.Fatalf("expected input mode")
	}
	m = send(t, m, key("d"), key("2"), key("d"), key("4"), key("enter"))
	if m.m != modeNormal {
		t.Fatalf("expected normal mode after enter")
	}
	if v := m.session.View(); v.LastMoveText != "d2d4" {
		t.Fatalf("typed move not played: %+v", v)
	}

	m = send(t, m, key("u"))
	if v := m.session.View(); v.HistoryLen != 0 {
		t.Fatalf("u should undo: %+v", v)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatalf("q should quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"white to move", "♔", "♚", "a  b  c"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view is missing %q:\n%s", want, out)
		}
	}
}
