package model

import "fmt"

// snapshot is the position as it stood before a move was applied.
type snapshot struct {
	board Board
	mover Player
}

// Game holds the board, the side to move and the undo history.
//
// A Game is not safe for concurrent use. IsValidMove and the selector validate
// by applying a move and rolling it back, so even read-looking calls mutate
// the game transiently.
type Game struct {
	board    Board
	current  Player
	history  []snapshot
	validity Validity
}

// NewGame returns a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		board:   standardBoard(),
		current: White,
	}
}

// NewEmptyGame returns a game with no pieces and White to move. Callers must
// place both kings before asking about check.
func NewEmptyGame() *Game {
	return &Game{current: White}
}

func (g *Game) CurrentPlayer() Player { return g.current }

// SetCurrentPlayer hands the move to p without touching the board or history.
func (g *Game) SetCurrentPlayer(p Player) { g.current = p }

// LastValidity is the diagnostic left by the most recent IsValidMove call.
func (g *Game) LastValidity() Validity { return g.validity }

func (g *Game) HistoryLen() int { return len(g.history) }

// Board returns a copy of the grid.
func (g *Game) Board() Board { return g.board }

// PieceAt returns the occupant of (row, col). Off-board coordinates yield nil
// rather than an error.
func (g *Game) PieceAt(row, col int) Piece { return g.board.At(row, col) }

func (g *Game) SetPiece(row, col int, p Piece) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if p == nil {
		return ErrNilPiece
	}
	g.board.cells[row][col] = p
	return nil
}

func (g *Game) RemovePiece(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	g.board.cells[row][col] = nil
	return nil
}

// Move applies m without checking legality: the caller is expected to have
// called IsValidMove first. A pawn reaching the far rank becomes a queen.
// Only structurally impossible moves are refused, and they leave the game
// untouched.
func (g *Game) Move(m Move) error {
	if !m.inBounds() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, m)
	}
	p := g.board.cells[m.FromRow][m.FromCol]
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNoPiece, m.From())
	}

	g.history = append(g.history, snapshot{board: g.board, mover: g.current})

	g.board.cells[m.ToRow][m.ToCol] = p
	g.board.cells[m.FromRow][m.FromCol] = nil
	if p.Kind() == Pawn && m.ToRow == p.Owner().promotionRow() {
		g.board.cells[m.ToRow][m.ToCol] = NewPiece(p.Owner(), Queen)
	}

	g.current = g.current.Opponent()
	return nil
}

// Undo restores the position and side to move from before the latest move.
// Undoing a promotion brings the pawn back.
func (g *Game) Undo() error {
	n := len(g.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	last := g.history[n-1]
	g.history[n-1] = snapshot{}
	g.history = g.history[:n-1]

	g.board = last.board
	g.current = last.mover
	return nil
}

// try applies m, evaluates fn on the resulting position and undoes m on the
// way out. It returns false without calling fn when m cannot be applied.
func (g *Game) try(m Move, fn func() bool) bool {
	if err := g.Move(m); err != nil {
		return false
	}
	defer func() { _ = g.Undo() }()
	return fn()
}

// IsValidMove reports whether m is legal for the piece on its source square
// and does not leave that piece's king in check. It records the reason in
// LastValidity. The board, side to move and history are unchanged on return.
func (g *Game) IsValidMove(m Move) bool {
	p := g.board.At(m.FromRow, m.FromCol)
	if p == nil || !p.IsLegalMove(m, &g.board) {
		g.validity = Invalid
		return false
	}

	owner := p.Owner()
	wasInCheck := g.InCheck(owner)
	exposed := g.try(m, func() bool { return g.InCheck(owner) })

	switch {
	case !exposed:
		g.validity = Valid
		return true
	case wasInCheck:
		g.validity = StayingInCheck
	default:
		g.validity = MovingIntoCheck
	}
	return false
}

// InCheck reports whether any piece of p's opponent could capture p's king.
// p must have a king on the board; InCheck panics otherwise.
func (g *Game) InCheck(p Player) bool {
	k, ok := g.kingOf(p)
	if !ok {
		panic(fmt.Sprintf("model: no %s king on the board", p))
	}
	return g.attacked(k, p.Opponent())
}

func (g *Game) kingOf(p Player) (Coord, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			q := g.board.cells[row][col]
			if q != nil && q.Kind() == King && q.Owner() == p {
				return Coord{Row: row, Col: col}, true
			}
		}
	}
	return Coord{}, false
}

// attacked reports whether some piece owned by by could legally move onto
// target.
func (g *Game) attacked(target Coord, by Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			q := g.board.cells[row][col]
			if q == nil || q.Owner() != by {
				continue
			}
			if q.IsLegalMove(NewMove(Coord{Row: row, Col: col}, target), &g.board) {
				return true
			}
		}
	}
	return false
}

// IsComplete reports checkmate: the first side found in check (White is
// examined first) has no valid reply. A side that is not in check is never
// complete, even without legal moves.
func (g *Game) IsComplete() bool {
	defer g.keepValidity()()
	for _, side := range [...]Player{White, Black} {
		if g.InCheck(side) {
			return !g.hasValidMove(side)
		}
	}
	return false
}

func (g *Game) hasValidMove(side Player) bool {
	for _, from := range g.piecesOf(side) {
		if len(g.validMovesFrom(from, 1)) > 0 {
			return true
		}
	}
	return false
}

// ValidMoves lists the valid moves of the piece on from, destinations in
// row-major order. LastValidity is left as it was.
func (g *Game) ValidMoves(from Coord) []Move {
	defer g.keepValidity()()
	return g.validMovesFrom(from, 0)
}

// validMovesFrom collects up to limit valid moves from a square; limit <= 0
// means no limit.
func (g *Game) validMovesFrom(from Coord, limit int) []Move {
	if g.board.At(from.Row, from.Col) == nil {
		return nil
	}
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			m := NewMove(from, Coord{Row: row, Col: col})
			if !g.IsValidMove(m) {
				continue
			}
			moves = append(moves, m)
			if limit > 0 && len(moves) >= limit {
				return moves
			}
		}
	}
	return moves
}

// FindPieces returns the squares holding owner's pieces of the given kind in
// row-major order.
func (g *Game) FindPieces(owner Player, kind Kind) []Coord {
	var out []Coord
	g.board.Each(func(c Coord, p Piece) {
		if p.Owner() == owner && p.Kind() == kind {
			out = append(out, c)
		}
	})
	return out
}

func (g *Game) piecesOf(side Player) []Coord {
	var out []Coord
	g.board.Each(func(c Coord, p Piece) {
		if p.Owner() == side {
			out = append(out, c)
		}
	})
	return out
}

func (g *Game) keepValidity() func() {
	v := g.validity
	return func() { g.validity = v }
}
