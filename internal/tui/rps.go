package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimul/internal/rps"
)

type rpsKeys struct {
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Continue key.Binding
	Quit     key.Binding
}

func (k rpsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Paper, k.Scissors, k.Continue, k.Quit}
}

func (k rpsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RPSModel implements the Bubble Tea rock-paper-scissors UI.
type RPSModel struct {
	game *rps.Game
	log  zerolog.Logger
	last *rps.Round

	keys rpsKeys
	help help.Model

	width  int
	height int
}

// NewRPSModel constructs a rock-paper-scissors TUI model.
func NewRPSModel(g *rps.Game, log zerolog.Logger) *RPSModel {
	return &RPSModel{
		game: g,
		log:  log,
		keys: rpsKeys{
			Rock:     key.NewBinding(key.WithKeys("r", "1"), key.WithHelp("r", "rock")),
			Paper:    key.NewBinding(key.WithKeys("p", "2"), key.WithHelp("p", "paper")),
			Scissors: key.NewBinding(key.WithKeys("s", "3"), key.WithHelp("s", "scissors")),
			Continue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
			Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m *RPSModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *RPSModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Continue):
			if m.last != nil {
				m.last = nil
			} else if m.game.Over() {
				m.game.Retry()
			}
		case m.last != nil:
			// The round result stays up until it is dismissed.
		case key.Matches(msg, m.keys.Rock):
			m.play(rps.Rock)
		case key.Matches(msg, m.keys.Paper):
			m.play(rps.Paper)
		case key.Matches(msg, m.keys.Scissors):
			m.play(rps.Scissors)
		}
	}
	return m, nil
}

func (m *RPSModel) play(move rps.Move) {
	round, ok := m.game.Play(move)
	if !ok {
		return
	}
	m.last = &round
	m.log.Debug().
		Str("app", round.AppMove.String()).
		Str("user", round.UserMove.String()).
		Str("outcome", round.Outcome.String()).
		Int("score", m.game.Score()).
		Msg("rps round")
}

// View implements tea.Model.
func (m *RPSModel) View() string {
	var content string
	switch {
	case m.last != nil:
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Info"),
			"",
			m.last.Message(),
			"",
			buttonOn.Render("Continue"),
		)
	case m.game.Over():
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Game Over"),
			fmt.Sprintf("Your score: %d", m.game.Score()),
			"",
			buttonOn.Render("Retry"),
		)
	default:
		content = lipgloss.JoinVertical(lipgloss.Center,
			subtleStyle.Render(fmt.Sprintf("Round %d/%d", m.game.Played()+1, rps.Rounds)),
			"I chose my move. Select a move to:",
			selectedStyle.Render(m.game.Prompt().String()),
			"",
			buttonOn.Render("Rock")+"  "+buttonOn.Render("Paper")+"  "+buttonOn.Render("Scissors"),
		)
	}
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.width == 0 || m.height < 3 {
		return content + "\n\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}
