package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
)

func Run(g *model.Game, computer *model.Player) error {
	p := tea.NewProgram(NewModel(service.NewSession(g, computer), computer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
