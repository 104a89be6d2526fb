package model

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Notation is the single upper-case letter used for the kind in algebraic
// notation and board diagrams.
func (k Kind) Notation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	default:
		return "?"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, nil
	case "queen", "q":
		return Queen, nil
	case "rook", "r":
		return Rook, nil
	case "bishop", "b":
		return Bishop, nil
	case "knight", "n":
		return Knight, nil
	case "pawn", "p":
		return Pawn, nil
	default:
		return Pawn, fmt.Errorf("invalid piece kind %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Piece is one of the six chess piece variants. The set is closed: only this
// package can implement it.
//
// A piece knows nothing about its own position. IsLegalMove only accepts moves
// whose source cell holds this exact piece value.
type Piece interface {
	Owner() Player
	Kind() Kind
	// IsLegalMove reports whether m is geometrically legal for this piece on b,
	// ignoring whose turn it is and whether the move exposes a king.
	IsLegalMove(m Move, b *Board) bool
	String() string
	sealed()
}

// NewPiece returns a fresh piece. Each call yields a distinct identity.
// kind must be one of the six kinds; NewPiece panics otherwise.
func NewPiece(owner Player, kind Kind) Piece {
	b := base{owner: owner}
	switch kind {
	case King:
		return &king{b}
	case Queen:
		return &queen{b}
	case Rook:
		return &rook{b}
	case Bishop:
		return &bishop{b}
	case Knight:
		return &knight{b}
	case Pawn:
		return &pawn{b}
	default:
		panic(fmt.Sprintf("model: unknown piece kind %d", uint8(kind)))
	}
}

func SamePieceType(a, b Piece) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Owner() == b.Owner() && a.Kind() == b.Kind()
}

type base struct {
	owner Player
}

func (b base) Owner() Player { return b.owner }

func (base) sealed() {}

// admits checks the rules shared by every kind: both ends on the board, a real
// displacement, p sitting on the source cell, and no capture of its own side.
func admits(p Piece, m Move, b *Board) bool {
	if !InBounds(m.FromRow, m.FromCol) || !InBounds(m.ToRow, m.ToCol) {
		return false
	}
	if m.FromRow == m.ToRow && m.FromCol == m.ToCol {
		return false
	}
	if b.cells[m.FromRow][m.FromCol] != p {
		return false
	}
	if dst := b.cells[m.ToRow][m.ToCol]; dst != nil && dst.Owner() == p.Owner() {
		return false
	}
	return true
}

func straight(m Move, b *Board) bool {
	if m.FromRow != m.ToRow && m.FromCol != m.ToCol {
		return false
	}
	return b.clearBetween(m)
}

func diagonal(m Move, b *Board) bool {
	if abs(m.ToRow-m.FromRow) != abs(m.ToCol-m.FromCol) {
		return false
	}
	return b.clearBetween(m)
}

type king struct{ base }

func (*king) Kind() Kind { return King }

func (p *king) IsLegalMove(m Move, b *Board) bool {
	if !admits(p, m, b) {
		return false
	}
	return max(abs(m.ToRow-m.FromRow), abs(m.ToCol-m.FromCol)) == 1
}

func (p *king) String() string { return describe(p) }

type queen struct{ base }

func (*queen) Kind() Kind { return Queen }

func (p *queen) IsLegalMove(m Move, b *Board) bool {
	if !admits(p, m, b) {
		return false
	}
	return straight(m, b) || diagonal(m, b)
}

func (p *queen) String() string { return describe(p) }

type rook struct{ base }

func (*rook) Kind() Kind { return Rook }

func (p *rook) IsLegalMove(m Move, b *Board) bool {
	return admits(p, m, b) && straight(m, b)
}

func (p *rook) String() string { return describe(p) }

type bishop struct{ base }

func (*bishop) Kind() Kind { return Bishop }

func (p *bishop) IsLegalMove(m Move, b *Board) bool {
	return admits(p, m, b) && diagonal(m, b)
}

func (p *bishop) String() string { return describe(p) }

type knight struct{ base }

func (*knight) Kind() Kind { return Knight }

func (p *knight) IsLegalMove(m Move, b *Board) bool {
	if !admits(p, m, b) {
		return false
	}
	dr, dc := abs(m.ToRow-m.FromRow), abs(m.ToCol-m.FromCol)
	return min(dr, dc) == 1 && max(dr, dc) == 2
}

func (p *knight) String() string { return describe(p) }

type pawn struct{ base }

func (*pawn) Kind() Kind { return Pawn }

func (p *pawn) IsLegalMove(m Move, b *Board) bool {
	if !admits(p, m, b) {
		return false
	}
	dir := p.owner.forward()
	dr := m.ToRow - m.FromRow
	dc := m.ToCol - m.FromCol
	dst := b.cells[m.ToRow][m.ToCol]

	switch {
	case dc == 0 && dr == dir:
		return dst == nil
	case dc == 0 && dr == 2*dir:
		return m.FromRow == p.owner.pawnStartRow() &&
			b.cells[m.FromRow+dir][m.FromCol] == nil &&
			dst == nil
	case abs(dc) == 1 && dr == dir:
		// capture only; admits already rejected friendly occupants
		return dst != nil
	default:
		return false
	}
}

func (p *pawn) String() string { return describe(p) }

func describe(p Piece) string {
	return p.Owner().String() + " " + p.Kind().String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
