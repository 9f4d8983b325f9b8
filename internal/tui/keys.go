package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuimul/internal/game"
)

type keyMap struct {
	Quit      key.Binding
	PrevTable key.Binding
	NextTable key.Binding
	MoreQs    key.Binding
	FewerQs   key.Binding
	Start     key.Binding
	Digit     key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Abandon   key.Binding
	Restart   key.Binding
	Settings  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		PrevTable: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "table")),
		NextTable: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "table")),
		MoreQs:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "questions")),
		FewerQs:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "questions")),
		Start:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "answer"),
		),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check/next")),
		Abandon:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "settings")),
		Restart:   key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("r", "restart")),
		Settings:  key.NewBinding(key.WithKeys("esc", "s"), key.WithHelp("s", "settings")),
	}
}

// phaseKeys exposes the bindings that apply to one phase to the help view.
type phaseKeys struct {
	keys  keyMap
	phase game.Phase
}

func (p phaseKeys) ShortHelp() []key.Binding {
	switch p.phase {
	case game.PhaseActive:
		return []key.Binding{p.keys.Digit, p.keys.Backspace, p.keys.Submit, p.keys.Abandon}
	case game.PhaseFinished:
		return []key.Binding{p.keys.Restart, p.keys.Settings, p.keys.Quit}
	default:
		return []key.Binding{p.keys.PrevTable, p.keys.NextTable, p.keys.MoreQs, p.keys.FewerQs, p.keys.Start, p.keys.Quit}
	}
}

func (p phaseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
