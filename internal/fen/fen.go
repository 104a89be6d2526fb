// Package fen converts games to and from Forsyth-Edwards Notation.
//
// Only piece placement and the side to move carry meaning here. Castling
// rights, en passant and the move clocks are ignored on input and written as
// "- - 0 1" on output.
package fen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/benbeisheim/chessmodel/internal/model"
)

// Start is the standard starting position.
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var (
	ErrMissingKing  = errors.New("each side needs exactly one king")
	ErrIdleInCheck  = errors.New("side not to move is in check")
	ErrUnknownPiece = errors.New("unsupported piece")
)

var kinds = map[chess.PieceType]model.Kind{
	chess.King:   model.King,
	chess.Queen:  model.Queen,
	chess.Rook:   model.Rook,
	chess.Bishop: model.Bishop,
	chess.Knight: model.Knight,
	chess.Pawn:   model.Pawn,
}

var pieces = map[model.Player][model.Pawn + 1]chess.Piece{
	model.White: {chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook, chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn},
	model.Black: {chess.BlackKing, chess.BlackQueen, chess.BlackRook, chess.BlackBishop, chess.BlackKnight, chess.BlackPawn},
}

// square maps a grid cell to the library's square index, a1 = 0.
func square(row, col int) chess.Square {
	return chess.Square((model.Size-1-row)*model.Size + col)
}

func cell(sq chess.Square) (row, col int) {
	return model.Size - 1 - int(sq)/model.Size, int(sq) % model.Size
}

// Decode builds a game from a FEN record. The position must hold exactly one
// king per side, and the side that just moved must not be left in check.
func Decode(s string) (*model.Game, error) {
	s = strings.TrimSpace(s)
	opt, err := chess.FEN(s)
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	// The library assumes both kings when it looks for check.
	placement := strings.Fields(s)[0]
	if strings.Count(placement, "K") != 1 || strings.Count(placement, "k") != 1 {
		return nil, fmt.Errorf("fen: %w", ErrMissingKing)
	}
	pos := chess.NewGame(opt).Position()

	g := model.NewEmptyGame()
	for sq, p := range pos.Board().SquareMap() {
		kind, ok := kinds[p.Type()]
		if !ok {
			return nil, fmt.Errorf("fen: %w: %v", ErrUnknownPiece, p)
		}
		owner := model.White
		if p.Color() == chess.Black {
			owner = model.Black
		}
		row, col := cell(sq)
		if err := g.SetPiece(row, col, model.NewPiece(owner, kind)); err != nil {
			return nil, fmt.Errorf("fen: %w", err)
		}
	}
	toMove := model.White
	if pos.Turn() == chess.Black {
		toMove = model.Black
	}
	g.SetCurrentPlayer(toMove)
	if g.InCheck(toMove.Opponent()) {
		return nil, fmt.Errorf("fen: %w", ErrIdleInCheck)
	}
	return g, nil
}

// Encode writes the placement and side to move of g.
func Encode(g *model.Game) string {
	b := g.Board()
	placed := make(map[chess.Square]chess.Piece)
	b.Each(func(c model.Coord, p model.Piece) {
		placed[square(c.Row, c.Col)] = pieces[p.Owner()][p.Kind()]
	})

	turn := "w"
	if g.CurrentPlayer() == model.Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", chess.NewBoard(placed).String(), turn)
}
