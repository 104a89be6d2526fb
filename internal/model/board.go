package model

import "strings"

const Size = 8

// Board is the 8x8 grid. The zero value is an empty board. Copying a Board
// copies the grid, so a copy handed to a caller cannot reach the original.
type Board struct {
	cells [Size][Size]Piece
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the piece on (row, col), or nil when the cell is empty or off the
// board.
func (b *Board) At(row, col int) Piece {
	if !InBounds(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// Each calls fn for every occupied cell in row-major order.
func (b *Board) Each(fn func(c Coord, p Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b.cells[row][col]; p != nil {
				fn(Coord{Row: row, Col: col}, p)
			}
		}
	}
}

// clearBetween reports whether every cell strictly between the two ends of an
// aligned move is empty.
func (b *Board) clearBetween(m Move) bool {
	stepR := sign(m.ToRow - m.FromRow)
	stepC := sign(m.ToCol - m.FromCol)
	row, col := m.FromRow+stepR, m.FromCol+stepC
	for row != m.ToRow || col != m.ToCol {
		if b.cells[row][col] != nil {
			return false
		}
		row += stepR
		col += stepC
	}
	return true
}

// String draws the board as eight lines of notation letters, upper case for
// White, lower case for Black and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b.cells[row][col]
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.Owner() == White:
				sb.WriteString(p.Kind().Notation())
			default:
				sb.WriteString(strings.ToLower(p.Kind().Notation()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func standardBoard() Board {
	var b Board
	for col, kind := range backRank {
		b.cells[0][col] = NewPiece(Black, kind)
		b.cells[Size-1][col] = NewPiece(White, kind)
		b.cells[1][col] = NewPiece(Black, Pawn)
		b.cells[Size-2][col] = NewPiece(White, Pawn)
	}
	return b
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
