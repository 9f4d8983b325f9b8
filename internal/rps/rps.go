// Package rps implements a short rock-paper-scissors game against the app.
package rps

import (
	"fmt"
	"math/rand"
	"time"
)

// Rounds is the number of rounds in one game.
const Rounds = 5

// Move is a hand shape.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move in display order.
var Moves = []Move{Rock, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "DRAW"
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Judge returns the player's outcome when playing user against app.
func Judge(app, user Move) Outcome {
	switch {
	case app == user:
		return Draw
	case beats[user] == app:
		return Win
	default:
		return Lose
	}
}

// Round is the result of one played round.
type Round struct {
	AppMove  Move
	Prompt   Outcome
	UserMove Move
	Outcome  Outcome
	Delta    int
}

// Message describes the round for the player.
func (r Round) Message() string {
	var verdict string
	switch {
	case r.Outcome == Draw:
		verdict = "it's a draw."
	case r.Delta > 0:
		verdict = "add 1 point."
	default:
		verdict = "lose 1 point."
	}
	return fmt.Sprintf("The app chose %s,\nthe player was trying to %s,\nthe player tapped %s,\nso %s",
		r.AppMove, r.Prompt, r.UserMove, verdict)
}

// Game tracks the score across rounds.
type Game struct {
	rnd    *rand.Rand
	app    Move
	prompt Outcome
	played int
	score  int
}

// New returns a Game seeded with the current time.
func New() *Game {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Game drawing from src.
func NewWithSource(src rand.Source) *Game {
	g := &Game{rnd: rand.New(src)}
	g.deal()
	return g
}

func (g *Game) deal() {
	g.app = Moves[g.rnd.Intn(len(Moves))]
	if g.rnd.Intn(2) == 0 {
		g.prompt = Win
	} else {
		g.prompt = Lose
	}
}

// Prompt returns the outcome the player must aim for this round.
func (g *Game) Prompt() Outcome {
	return g.prompt
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Played returns the number of rounds played.
func (g *Game) Played() int {
	return g.played
}

// Over reports whether all rounds have been played.
func (g *Game) Over() bool {
	return g.played >= Rounds
}

// Play plays user against the app's hidden move. It returns false once the game is over.
func (g *Game) Play(user Move) (Round, bool) {
	if g.Over() {
		return Round{}, false
	}
	r := Round{
		AppMove:  g.app,
		Prompt:   g.prompt,
		UserMove: user,
		Outcome:  Judge(g.app, user),
	}
	switch {
	case r.Outcome == Draw:
	case r.Outcome == r.Prompt:
		r.Delta = 1
	case g.score > 0:
		r.Delta = -1
	}
	g.score += r.Delta
	g.played++
	g.deal()
	return r, true
}

// Retry starts a new game.
func (g *Game) Retry() {
	g.played = 0
	g.score = 0
	g.deal()
}
