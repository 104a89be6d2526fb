package model

import "fmt"

// Tier is a class of candidate moves the selector considers, in priority
// order.
type Tier uint8

const (
	// StopCheck: any valid move while in check. Validity already excludes
	// moves that stay in check.
	StopCheck Tier = iota
	// MakeCheck: valid moves that put the opponent in check.
	MakeCheck
	// StopThreat: valid moves of pieces an opposing piece could capture.
	StopThreat
	// Advance: every valid move.
	Advance
)

func (t Tier) String() string {
	switch t {
	case StopCheck:
		return "stopCheck"
	case MakeCheck:
		return "makeCheck"
	case StopThreat:
		return "stopThreat"
	case Advance:
		return "advance"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// selectionOrder is the order kinds are offered in, cheapest first.
var selectionOrder = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// ChooseMove picks a move for the side to move without applying it.
//
// The first tier that has any candidate wins. Inside it, kinds are tried in
// selectionOrder, and the first kind with candidates supplies the answer: the
// median (index len/2) of its moves, listed by piece square and then
// destination square, both row-major. The result is deterministic. ok is
// false when the side to move has no valid move at all.
func (g *Game) ChooseMove() (m Move, tier Tier, ok bool) {
	defer g.keepValidity()()

	side := g.current
	tiers := []Tier{MakeCheck, StopThreat, Advance}
	if g.InCheck(side) {
		tiers = []Tier{StopCheck}
	}
	for _, t := range tiers {
		for _, kind := range selectionOrder {
			if moves := g.candidates(side, t, kind); len(moves) > 0 {
				return moves[len(moves)/2], t, true
			}
		}
	}
	return Move{}, Advance, false
}

// SelectMove chooses a move with ChooseMove and plays it.
func (g *Game) SelectMove() (Move, bool) {
	m, _, ok := g.ChooseMove()
	if !ok {
		return Move{}, false
	}
	if err := g.Move(m); err != nil {
		return Move{}, false
	}
	return m, true
}

// Candidates lists every move tier t offers the side to move, grouped by kind
// in selection order.
func (g *Game) Candidates(t Tier) []Move {
	defer g.keepValidity()()

	var out []Move
	for _, kind := range selectionOrder {
		out = append(out, g.candidates(g.current, t, kind)...)
	}
	return out
}

func (g *Game) candidates(side Player, t Tier, kind Kind) []Move {
	opp := side.Opponent()
	var out []Move
	for _, from := range g.FindPieces(side, kind) {
		if t == StopThreat && !g.attacked(from, opp) {
			continue
		}
		for _, m := range g.validMovesFrom(from, 0) {
			if t == MakeCheck && !g.try(m, func() bool { return g.exposed(opp) }) {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}

// exposed is InCheck without the king precondition: a side with no king is
// not in check.
func (g *Game) exposed(p Player) bool {
	k, ok := g.kingOf(p)
	return ok && g.attacked(k, p.Opponent())
}
