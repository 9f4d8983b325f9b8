// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/game"
	"github.com/verte-zerg/tuimul/internal/model"
	"github.com/verte-zerg/tuimul/internal/report"
)

// PreferenceSaver remembers the last used settings.
type PreferenceSaver interface {
	SavePreferences(ctx context.Context, prefs model.Preferences) error
}

// Model implements the Bubble Tea quiz UI.
type Model struct {
	machine  *game.Machine
	prefs    PreferenceSaver
	log      zerolog.Logger
	settings game.Settings
	snap     game.Snapshot
	errMsg   string

	keys keyMap
	help help.Model

	width  int
	height int
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#16864F"))
	answerBox     = lipgloss.NewStyle().
			Width(24).
			Align(lipgloss.Center).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true)
	inputBox   = answerBox.BorderForeground(lipgloss.Color("#F0F0F0"))
	correctBox = answerBox.BorderForeground(lipgloss.Color("#16864F")).Foreground(lipgloss.Color("#16864F"))
	wrongBox   = answerBox.BorderForeground(lipgloss.Color("#FF4D4F")).Foreground(lipgloss.Color("#FF4D4F"))
	buttonOn   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#8A2BE2")).
			Padding(0, 3)
	buttonOff   = buttonOn.Background(lipgloss.Color("#3D2456")).Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a quiz TUI model. prefs may be nil.
func NewModel(machine *game.Machine, settings game.Settings, prefs PreferenceSaver, log zerolog.Logger) *Model {
	return &Model{
		machine:  machine,
		prefs:    prefs,
		log:      log,
		settings: settings,
		snap:     machine.Snapshot(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Snapshot returns the state last rendered by the model.
func (m *Model) Snapshot() game.Snapshot {
	return m.snap
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.snap.Phase {
		case game.PhaseSettings:
			return m.updateSettings(msg)
		case game.PhaseActive:
			return m.updateActive(msg)
		case game.PhaseFinished:
			return m.updateFinished(msg)
		}
	}
	return m, nil
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevTable):
		if m.settings.TableIndex > 0 {
			m.settings.TableIndex--
		}
	case key.Matches(msg, m.keys.NextTable):
		if m.settings.TableIndex < catalog.TableCount-1 {
			m.settings.TableIndex++
		}
	case key.Matches(msg, m.keys.MoreQs):
		m.settings.Count = m.settings.Count.Next()
	case key.Matches(msg, m.keys.FewerQs):
		m.settings.Count = m.settings.Count.Prev()
	case key.Matches(msg, m.keys.Start):
		m.start()
	}
	return m, nil
}

func (m *Model) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Digit):
		m.snap = m.machine.PressDigit(msg.Runes[0])
	case key.Matches(msg, m.keys.Backspace):
		m.snap = m.machine.PressBackspace()
	case key.Matches(msg, m.keys.Submit):
		if m.snap.Button == game.ButtonNext {
			m.snap = m.machine.PressNext()
		} else {
			m.snap = m.machine.PressCheck()
		}
	case key.Matches(msg, m.keys.Abandon):
		m.snap = m.machine.Abandon()
	}
	return m, nil
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		snap, err := m.machine.Restart()
		m.setResult(snap, err)
	case key.Matches(msg, m.keys.Settings):
		m.snap = m.machine.BackToSettings()
	}
	return m, nil
}

func (m *Model) start() {
	snap, err := m.machine.StartGame(m.settings)
	m.setResult(snap, err)
	if err != nil || m.prefs == nil {
		return
	}
	prefs := model.Preferences{
		Table:     m.settings.TableIndex + catalog.MinFactor,
		Questions: strings.ToLower(m.settings.Count.String()),
	}
	if err := m.prefs.SavePreferences(context.Background(), prefs); err != nil {
		m.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

func (m *Model) setResult(snap game.Snapshot, err error) {
	m.snap = snap
	m.errMsg = ""
	if err != nil {
		m.errMsg = err.Error()
		m.log.Error().Err(err).Msg("failed to start session")
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.snap.Phase {
	case game.PhaseActive:
		content = m.activeView()
	case game.PhaseFinished:
		content = m.finishedView()
	default:
		content = m.settingsView()
	}
	footer := footerStyle.Render(m.help.View(phaseKeys{keys: m.keys, phase: m.snap.Phase}))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) settingsView() string {
	lines := []string{
		titleStyle.Render("Multiplications"),
		subtleStyle.Render("Before the game, select your settings:"),
		"",
		selectedStyle.Render(fmt.Sprintf("‹ %d times table ›", m.settings.TableIndex+catalog.MinFactor)),
		selectedStyle.Render(fmt.Sprintf("‹ %s questions ›", m.settings.Count)),
		"",
		buttonOn.Render("Start game"),
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) activeView() string {
	s := m.snap
	var box string
	switch s.Answer {
	case game.AnswerCorrect:
		box = correctBox.Render(s.Display)
	case game.AnswerWrong:
		box = wrongBox.Render(s.Display)
	default:
		box = inputBox.Render(s.Display)
	}
	var button string
	switch s.Button {
	case game.ButtonNext:
		button = buttonOn.Render("Next")
	case game.ButtonCheck:
		button = buttonOn.Render("Check")
	default:
		button = buttonOff.Render("Check")
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("%d Times Table", s.TableFactor)),
		subtleStyle.Render("Question "+s.Progress),
		"",
		s.QuestionText,
		box,
		"",
		button,
	)
}

func (m *Model) finishedView() string {
	lines := []string{
		titleStyle.Render("Game Finished"),
		fmt.Sprintf("Your score: %s", m.snap.Score()),
		"",
	}
	for i, line := range report.ReviewLines(m.snap.Attempts) {
		switch {
		case i == 0:
			line = subtleStyle.Render(line)
		case m.snap.Attempts[i-1].Correct:
			line = okStyle.Render(line)
		default:
			line = errorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", buttonOn.Render("Restart")+"  "+buttonOn.Render("Back to settings"))
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
