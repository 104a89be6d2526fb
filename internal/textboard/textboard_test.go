package textboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
)

func TestBoardPlain(t *testing.T) {
	b := model.NewGame().Board()
	out := New(true).Board(b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	if lines[1] != "8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜  8" {
		t.Fatalf("unexpected back rank %q", lines[1])
	}
	if lines[8] != "1  ♖  ♘  ♗  ♕  ♔  ♗  ♘  ♖  1" {
		t.Fatalf("unexpected white rank %q", lines[8])
	}
	if !strings.Contains(lines[4], " ·  ·  · ") {
		t.Fatalf("expected empty cells on rank 5, got %q", lines[4])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escape codes")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{fen.Start, "white to move"},
		{"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", "white to move (check)"},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1", "checkmate, black wins"},
	}
	for _, tt := range tests {
		g, err := fen.Decode(tt.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := Status(g); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.fen, got, tt.want)
		}
	}
}

func TestSelfPlay(t *testing.T) {
	var buf bytes.Buffer
	g := model.NewGame()
	n, err := SelfPlay(&buf, g, 4, New(true))
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || g.HistoryLen() != 4 {
		t.Fatalf("expected 4 plies, got %d (history %d)", n, g.HistoryLen())
	}
	out := buf.String()
	if !strings.Contains(out, "1. white e2e4") || !strings.Contains(out, "2. black e7e6") {
		t.Fatalf("unexpected transcript:\n%s", out)
	}
}

func TestSelfPlayStopsWithoutMoves(t *testing.T) {
	g, err := fen.Decode("7k/8/6Q1/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := SelfPlay(&buf, g, 10, New(true))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || !strings.Contains(buf.String(), "no valid move found for black") {
		t.Fatalf("played %d:\n%s", n, buf.String())
	}
}
