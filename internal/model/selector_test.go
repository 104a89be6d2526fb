package model

import "testing"

func TestSelectorOpeningIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		g := NewGame()
		m, tier, ok := g.ChooseMove()
		if !ok {
			t.Fatalf("expected a move from the starting position")
		}
		if m != mv(6, 4, 4, 4) {
			t.Fatalf("run %d: got %s (%s), want e2e4", i, m.Algebraic(), m)
		}
		if tier != Advance {
			t.Fatalf("run %d: expected the advance tier, got %s", i, tier)
		}
	}
}

func TestSelectMoveApplies(t *testing.T) {
	g := NewGame()
	m, ok := g.SelectMove()
	if !ok || m.Algebraic() != "e2e4" {
		t.Fatalf("white: got %s, %v", m.Algebraic(), ok)
	}
	if g.CurrentPlayer() != Black || g.HistoryLen() != 1 {
		t.Fatalf("selection was not applied as a turn")
	}
	if p := g.PieceAt(4, 4); p == nil || p.Kind() != Pawn {
		t.Fatalf("expected the pawn on e4")
	}

	m, ok = g.SelectMove()
	if !ok || m.Algebraic() != "e7e6" {
		t.Fatalf("black: got %s, %v", m.Algebraic(), ok)
	}
}

func TestChooseMoveDoesNotMutate(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "e2e4")
	g.IsValidMove(mv(0, 0, 5, 0))
	before := stateOf(g)

	if _, _, ok := g.ChooseMove(); !ok {
		t.Fatalf("expected a move")
	}
	if stateOf(g) != before {
		t.Fatalf("ChooseMove changed the game")
	}
	if g.LastValidity() != Invalid {
		t.Fatalf("ChooseMove overwrote the diagnostic: %s", g.LastValidity())
	}
}

func TestSelectorTiers(t *testing.T) {
	tests := []struct {
		name     string
		setup    placed
		toMove   Player
		want     Move
		wantTier Tier
	}{
		{
			name: "escapes check",
			setup: placed{
				{2, 4}: NewPiece(Black, Rook),
			},
			toMove:   White,
			want:     mv(7, 4, 7, 3),
			wantTier: StopCheck,
		},
		{
			name: "delivers check",
			setup: placed{
				{7, 0}: NewPiece(White, Rook),
			},
			toMove:   White,
			want:     mv(7, 0, 0, 0),
			wantTier: MakeCheck,
		},
		{
			name: "saves a threatened piece",
			setup: placed{
				{5, 7}: NewPiece(White, Knight),
				{5, 0}: NewPiece(Black, Rook),
			},
			toMove:   White,
			want:     mv(5, 7, 6, 5),
			wantTier: StopThreat,
		},
		{
			name: "black delivers check",
			setup: placed{
				{0, 7}: NewPiece(Black, Rook),
			},
			toMove:   Black,
			want:     mv(0, 7, 7, 7),
			wantTier: MakeCheck,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := kingsOnly(t)
			for c, p := range tt.setup {
				mustSet(t, g, c.Row, c.Col, p)
			}
			g.SetCurrentPlayer(tt.toMove)

			m, tier, ok := g.ChooseMove()
			if !ok {
				t.Fatalf("expected a move")
			}
			if m != tt.want || tier != tt.wantTier {
				t.Fatalf("got %s via %s, want %s via %s", m, tier, tt.want, tt.wantTier)
			}
		})
	}
}

func TestSelectorNoMove(t *testing.T) {
	g := NewEmptyGame()
	mustSet(t, g, 0, 7, NewPiece(Black, King))
	mustSet(t, g, 2, 6, NewPiece(White, Queen))
	mustSet(t, g, 7, 0, NewPiece(White, King))
	g.SetCurrentPlayer(Black)
	before := stateOf(g)

	if m, ok := g.SelectMove(); ok {
		t.Fatalf("stalemated side should have no move, got %s", m)
	}
	if stateOf(g) != before {
		t.Fatalf("a failed selection must not change the game")
	}
}

func TestCandidatesAdvanceOrder(t *testing.T) {
	g := NewGame()
	moves := g.Candidates(Advance)
	if len(moves) != 20 {
		t.Fatalf("expected 20 opening moves, got %d", len(moves))
	}
	for i, m := range moves[:16] {
		if p := g.PieceAt(m.FromRow, m.FromCol); p == nil || p.Kind() != Pawn {
			t.Fatalf("move %d (%s) should be a pawn move", i, m)
		}
	}
	for i, m := range moves[16:] {
		if p := g.PieceAt(m.FromRow, m.FromCol); p == nil || p.Kind() != Knight {
			t.Fatalf("move %d (%s) should be a knight move", 16+i, m)
		}
	}
	if got := g.Candidates(MakeCheck); len(got) != 0 {
		t.Fatalf("no opening move gives check, got %v", got)
	}
}
