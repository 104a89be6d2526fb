// Package textboard draws games as ANSI-colored text.
package textboard

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/benbeisheim/chessmodel/internal/model"
)

var glyphs = map[model.Player][model.Pawn + 1]string{
	model.White: {"♔", "♕", "♖", "♗", "♘", "♙"},
	model.Black: {"♚", "♛", "♜", "♝", "♞", "♟"},
}

// Glyph is the chess symbol for p.
func Glyph(p model.Piece) string {
	return glyphs[p.Owner()][p.Kind()]
}

type Renderer struct {
	light, dark, label *color.Color
}

// New returns a renderer. With noColor set the output is plain text.
func New(noColor bool) *Renderer {
	r := &Renderer{
		light: color.New(color.BgHiWhite, color.FgBlack),
		dark:  color.New(color.BgGreen, color.FgBlack),
		label: color.New(color.FgHiBlack),
	}
	if noColor {
		r.light.DisableColor()
		r.dark.DisableColor()
		r.label.DisableColor()
	}
	return r
}

const files = "   a  b  c  d  e  f  g  h"

// Board draws the grid with rank and file labels, White at the bottom.
func (r *Renderer) Board(b model.Board) string {
	var sb strings.Builder
	sb.WriteString(r.label.Sprint(files))
	sb.WriteByte('\n')
	for row := 0; row < model.Size; row++ {
		rank := model.Size - row
		sb.WriteString(r.label.Sprintf("%d ", rank))
		for col := 0; col < model.Size; col++ {
			cell := " · "
			if p := b.At(row, col); p != nil {
				cell = " " + Glyph(p) + " "
			}
			if (row+col)%2 == 0 {
				sb.WriteString(r.light.Sprint(cell))
			} else {
				sb.WriteString(r.dark.Sprint(cell))
			}
		}
		sb.WriteString(r.label.Sprintf(" %d", rank))
		sb.WriteByte('\n')
	}
	sb.WriteString(r.label.Sprint(files))
	sb.WriteByte('\n')
	return sb.String()
}

// Status summarizes whose turn it is and whether the game is over.
func Status(g *model.Game) string {
	toMove := g.CurrentPlayer()
	if g.IsComplete() {
		loser := model.White
		if !g.InCheck(model.White) {
			loser = model.Black
		}
		return fmt.Sprintf("checkmate, %s wins", loser.Opponent())
	}
	if g.InCheck(toMove) {
		return fmt.Sprintf("%s to move (check)", toMove)
	}
	return fmt.Sprintf("%s to move", toMove)
}
