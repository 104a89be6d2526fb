package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
)

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("0"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("0"))
	lastSquare  = lipgloss.NewStyle().Background(lipgloss.Color("143")).Foreground(lipgloss.Color("0"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var glyphs = map[model.Player][model.Pawn + 1]string{
	model.White: {"♔", "♕", "♖", "♗", "♘", "♙"},
	model.Black: {"♚", "♛", "♜", "♝", "♞", "♟"},
}

// RenderBoard draws v with White at the bottom and the last move's squares
// highlighted.
func RenderBoard(v service.GameView) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("   a  b  c  d  e  f  g  h"))
	b.WriteString("\n")

	for row := 0; row < model.Size; row++ {
		b.WriteString(labelStyle.Render(string(rune('0'+model.Size-row)) + " "))
		for col := 0; col < model.Size; col++ {
			b.WriteString(cell(v, row, col))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cell returns a fixed-width 3-char cell.
func cell(v service.GameView, row, col int) string {
	s := "   "
	if sq := v.Board[row][col]; sq != nil {
		s = " " + glyphs[sq.Owner][sq.Kind] + " "
	}

	style := lightSquare
	if (row+col)%2 == 1 {
		style = darkSquare
	}
	if m := v.LastMove; m != nil &&
		((m.FromRow == row && m.FromCol == col) || (m.ToRow == row && m.ToCol == col)) {
		style = lastSquare
	}
	return style.Render(s)
}
