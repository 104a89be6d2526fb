package model

import (
	"fmt"
	"strings"
)

// Coord addresses a board cell. Row 0 is Black's back rank.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Valid() bool { return InBounds(c.Row, c.Col) }

// Square returns the algebraic name of the cell, e.g. (6,4) is "e2".
func (c Coord) Square() string {
	if !c.Valid() {
		return "?"
	}
	return string([]byte{byte('a' + c.Col), byte('0' + Size - c.Row)})
}

func (c Coord) String() string { return c.Square() }

// ParseSquare converts an algebraic square such as "e2" into a Coord.
func ParseSquare(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: square %q", ErrMalformedMove, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file >= 'a'+Size || rank < '1' || rank >= '1'+Size {
		return Coord{}, fmt.Errorf("%w: square %q", ErrMalformedMove, s)
	}
	return Coord{Row: Size - int(rank-'0'), Col: int(file - 'a')}, nil
}

// Move is a plain from/to pair. It is never validated on its own; see
// Game.IsValidMove.
type Move struct {
	FromRow int `json:"fromRow"`
	FromCol int `json:"fromCol"`
	ToRow   int `json:"toRow"`
	ToCol   int `json:"toCol"`
}

func NewMove(from, to Coord) Move {
	return Move{FromRow: from.Row, FromCol: from.Col, ToRow: to.Row, ToCol: to.Col}
}

func (m Move) From() Coord { return Coord{Row: m.FromRow, Col: m.FromCol} }

func (m Move) To() Coord { return Coord{Row: m.ToRow, Col: m.ToCol} }

func (m Move) inBounds() bool { return m.From().Valid() && m.To().Valid() }

// Algebraic returns the long algebraic form ("e2e4"), or "" when either end is
// off the board.
func (m Move) Algebraic() string {
	if !m.inBounds() {
		return ""
	}
	return m.From().Square() + m.To().Square()
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// ParseMove reads long algebraic notation: "e2e4", "e2-e4" or "e2 e4".
func ParseMove(s string) (Move, error) {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(s))
	if len(cleaned) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
	}
	from, err := ParseSquare(cleaned[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(cleaned[2:])
	if err != nil {
		return Move{}, err
	}
	return NewMove(from, to), nil
}
