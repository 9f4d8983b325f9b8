package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/game"
	"github.com/verte-zerg/tuimul/internal/model"
)

type orderedSampler struct{}

func (orderedSampler) Sample(table catalog.Table, n int) ([]catalog.Question, error) {
	return append([]catalog.Question(nil), table.Questions[:n]...), nil
}

type fakePrefs struct {
	saved []model.Preferences
}

func (f *fakePrefs) SavePreferences(_ context.Context, prefs model.Preferences) error {
	f.saved = append(f.saved, prefs)
	return nil
}

func newTestModel(settings game.Settings) (*Model, *fakePrefs) {
	prefs := &fakePrefs{}
	machine := game.New(catalog.Default(), orderedSampler{})
	return NewModel(machine, settings, prefs, zerolog.Nop()), prefs
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestSettingsKeysAdjustSelection(t *testing.T) {
	m, _ := newTestModel(game.Settings{TableIndex: 0, Count: game.CountFive})

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.settings.TableIndex != 0 {
		t.Fatalf("expected table index clamped at 0, got %d", m.settings.TableIndex)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if m.settings.TableIndex != 2 {
		t.Fatalf("expected table index 2, got %d", m.settings.TableIndex)
	}
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.settings.Count != game.CountTen {
		t.Fatalf("expected count 10, got %s", m.settings.Count)
	}
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.settings.Count != game.CountAll {
		t.Fatalf("expected count All, got %s", m.settings.Count)
	}

	view := m.View()
	if !strings.Contains(view, "3 times table") || !strings.Contains(view, "All questions") {
		t.Fatalf("settings view missing selection:\n%s", view)
	}
}

func TestTableIndexClampedAtTwelve(t *testing.T) {
	m, _ := newTestModel(game.Settings{TableIndex: 11, Count: game.CountFive})
	press(m, runes("l"))
	if m.settings.TableIndex != 11 {
		t.Fatalf("expected table index clamped at 11, got %d", m.settings.TableIndex)
	}
}

func TestPlayThroughSession(t *testing.T) {
	m, prefs := newTestModel(game.Settings{TableIndex: 2, Count: game.CountFive})

	press(m, enter)
	if m.snap.Phase != game.PhaseActive {
		t.Fatalf("expected active phase, got %s", m.snap.Phase)
	}
	if len(prefs.saved) != 1 || prefs.saved[0] != (model.Preferences{Table: 3, Questions: "5"}) {
		t.Fatalf("unexpected saved preferences: %+v", prefs.saved)
	}
	if view := m.View(); !strings.Contains(view, "What is 3 x 1?") || !strings.Contains(view, "Question 1/5") {
		t.Fatalf("active view missing question:\n%s", view)
	}

	// Enter does nothing until something is typed.
	press(m, enter)
	if m.snap.Button != game.ButtonDisabled {
		t.Fatalf("expected disabled button, got %s", m.snap.Button)
	}

	press(m, runes("4"), backspace, runes("3"), enter)
	if m.snap.Answer != game.AnswerCorrect || m.snap.Correct != 1 {
		t.Fatalf("expected correct answer, got %s with %d correct", m.snap.Answer, m.snap.Correct)
	}
	if view := m.View(); !strings.Contains(view, "Correct, it's 3!") || !strings.Contains(view, "Next") {
		t.Fatalf("feedback missing:\n%s", view)
	}

	press(m, enter)
	for i := 1; i < 5; i++ {
		press(m, runes("1"), enter, enter)
	}
	if m.snap.Phase != game.PhaseFinished {
		t.Fatalf("expected finished phase, got %s", m.snap.Phase)
	}
	view := m.View()
	if !strings.Contains(view, "Your score: 1/5") {
		t.Fatalf("finished view missing score:\n%s", view)
	}
	if !strings.Contains(view, "What is 4 x 3?") {
		t.Fatalf("finished view missing review:\n%s", view)
	}

	press(m, runes("r"))
	if m.snap.Phase != game.PhaseActive || m.snap.Correct != 0 {
		t.Fatalf("expected restarted session, got %s with %d correct", m.snap.Phase, m.snap.Correct)
	}
}

func TestBackToSettingsFromResults(t *testing.T) {
	m, _ := newTestModel(game.Settings{TableIndex: 0, Count: game.CountFive})
	press(m, enter)
	for i := 0; i < 5; i++ {
		press(m, runes("9"), enter, enter)
	}
	press(m, runes("s"))
	if m.snap.Phase != game.PhaseSettings {
		t.Fatalf("expected settings phase, got %s", m.snap.Phase)
	}
	press(m, esc)
	if m.snap.Phase != game.PhaseSettings {
		t.Fatalf("expected settings phase after second back, got %s", m.snap.Phase)
	}
}

func TestEscAbandonsSession(t *testing.T) {
	m, _ := newTestModel(game.Settings{TableIndex: 4, Count: game.CountTen})
	press(m, enter, runes("2"), esc)
	if m.snap.Phase != game.PhaseSettings {
		t.Fatalf("expected settings phase, got %s", m.snap.Phase)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(game.Settings{})
	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Fatalf("expected quit command on settings screen")
	}
	press(m, enter)
	if _, cmd := m.Update(runes("q")); cmd != nil {
		t.Fatalf("expected q to be ignored during the quiz")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command on ctrl+c")
	}
}

func TestViewUsesWindowSize(t *testing.T) {
	m, _ := newTestModel(game.Settings{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[23], "quit") {
		t.Fatalf("expected help footer on last line, got %q", lines[23])
	}
}
