package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimul/internal/rps"
)

func TestRPSModelRoundFlow(t *testing.T) {
	g := rps.NewWithSource(rand.NewSource(1))
	m := NewRPSModel(g, zerolog.Nop())

	if view := m.View(); !strings.Contains(view, "Select a move to:") {
		t.Fatalf("expected prompt view:\n%s", view)
	}

	m.Update(runes("r"))
	if m.last == nil {
		t.Fatalf("expected round result")
	}
	if view := m.View(); !strings.Contains(view, "the player tapped Rock") {
		t.Fatalf("expected round message:\n%s", view)
	}

	// Moves are ignored while the result is shown.
	m.Update(runes("p"))
	if g.Played() != 1 {
		t.Fatalf("expected 1 round played, got %d", g.Played())
	}

	m.Update(enter)
	for i := 1; i < rps.Rounds; i++ {
		m.Update(runes("s"))
		m.Update(enter)
	}
	if !g.Over() {
		t.Fatalf("expected game over")
	}
	if view := m.View(); !strings.Contains(view, "Game Over") {
		t.Fatalf("expected game over view:\n%s", view)
	}

	m.Update(enter)
	if g.Over() || g.Played() != 0 {
		t.Fatalf("expected retry to reset the game")
	}
}
