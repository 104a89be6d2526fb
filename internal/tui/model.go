package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/service"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

type Model struct {
	session  *service.Session
	computer *model.Player

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel plays s. computer is the side the selector answers for, or nil.
func NewModel(s *service.Session, computer *model.Player) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4, undo, ai, castle king, new, fen ..., help"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 60

	return Model{
		session:  s,
		computer: computer,
		m:        modeNormal,
		input:    ti,
		logLines: []string{
			fmt.Sprintf("game %s (press i to type a command, ? for help)", s.Name),
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i", ":":
				m.m = modeInput
				m.input.SetValue("")
				return m, m.input.Focus()
			case "u":
				m.execCommand("undo")
			case "a":
				m.execCommand("ai")
			case "?":
				m.execCommand("help")
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line == "q" || line == "quit" {
					return m, tea.Quit
				}
				if line != "" {
					m.execCommand(line)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	var (
		v   service.GameView
		err error
	)
	switch parts[0] {
	case "undo", "u":
		v, err = m.session.Undo()
	case "ai", "a":
		v, err = m.session.ComputerMove()
	case "castle":
		if len(parts) != 2 {
			m.appendLog("usage: castle king|queen")
			return
		}
		v, err = m.session.Castle(service.CastleSide(parts[1]))
	case "new":
		m.session = service.NewSession(model.NewGame(), m.computer)
		m.appendLog("new game " + m.session.Name)
		return
	case "fen":
		if len(parts) == 1 {
			m.appendLog(m.session.View().FEN)
			return
		}
		g, derr := fen.Decode(strings.Join(parts[1:], " "))
		if derr != nil {
			m.appendLog(derr.Error())
			return
		}
		m.session = service.NewSession(g, m.computer)
		m.appendLog("loaded position as " + m.session.Name)
		return
	case "help":
		m.appendLog("moves: e2e4 | undo | ai | castle king|queen | new | fen [FEN] | q")
		return
	default:
		mv, perr := model.ParseMove(line)
		if perr != nil {
			m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
			return
		}
		v, err = m.session.Play(mv)
	}

	if err != nil {
		m.appendLog(describe(err))
		return
	}
	if v.LastMoveText != "" {
		m.appendLog(fmt.Sprintf("last move %s", v.LastMoveText))
	}
	if v.Complete {
		m.appendLog(fmt.Sprintf("checkmate, %s wins", *v.Winner))
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyHistory):
		return "nothing to undo"
	case errors.Is(err, service.ErrNoMove):
		return "No valid move found."
	default:
		return err.Error()
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	v := m.session.View()
	status := fmt.Sprintf("%s to move", v.ToMove)
	switch {
	case v.Complete:
		status = fmt.Sprintf("checkmate, %s wins", *v.Winner)
	case v.InCheck:
		status += " (check)"
	}
	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("chessterm  %s  [%s]  mode:%s", v.Name, status, modeStr))

	board := boxStyle.Render(RenderBoard(v))

	logHeight := max(5, m.height-lipgloss.Height(board)-6)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-lipgloss.Width(board)-4)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "i: command  u: undo  a: computer move  ?: help  q: quit"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, logBox)
	return header + "\n" + body + "\n" + inputBox + "\n"
}
