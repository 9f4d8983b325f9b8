// Package game drives a times-table quiz from settings to results.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/tuimul/internal/catalog"
)

// ErrTableIndex reports a table index outside the catalog.
var ErrTableIndex = errors.New("table index out of range")

// Phase is the top-level state of the machine.
type Phase int

const (
	PhaseSettings Phase = iota
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSettings:
		return "settings"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// AnswerState tracks whether the current answer has been checked.
type AnswerState int

const (
	AnswerInput AnswerState = iota
	AnswerCorrect
	AnswerWrong
)

func (a AnswerState) String() string {
	switch a {
	case AnswerInput:
		return "input"
	case AnswerCorrect:
		return "correct"
	case AnswerWrong:
		return "wrong"
	default:
		return fmt.Sprintf("AnswerState(%d)", int(a))
	}
}

// ButtonState is the state of the primary action button.
type ButtonState int

const (
	ButtonDisabled ButtonState = iota
	ButtonCheck
	ButtonNext
)

func (b ButtonState) String() string {
	switch b {
	case ButtonDisabled:
		return "disabled"
	case ButtonCheck:
		return "check"
	case ButtonNext:
		return "next"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(b))
	}
}

// ButtonFor derives the button state from the input buffer and answer state.
func ButtonFor(buf string, answer AnswerState) ButtonState {
	if answer != AnswerInput {
		return ButtonNext
	}
	if buf == "" {
		return ButtonDisabled
	}
	return ButtonCheck
}

// QuestionCount selects how many questions a session asks.
type QuestionCount int

const (
	CountFive QuestionCount = iota
	CountTen
	CountTwenty
	CountAll
)

// QuestionCounts lists the selectable counts in display order.
var QuestionCounts = []QuestionCount{CountFive, CountTen, CountTwenty, CountAll}

func (c QuestionCount) String() string {
	switch c {
	case CountFive:
		return "5"
	case CountTen:
		return "10"
	case CountTwenty:
		return "20"
	case CountAll:
		return "All"
	default:
		return fmt.Sprintf("QuestionCount(%d)", int(c))
	}
}

// Valid reports whether c is one of the selectable counts.
func (c QuestionCount) Valid() bool {
	return c >= CountFive && c <= CountAll
}

// Next returns the following count, wrapping around.
func (c QuestionCount) Next() QuestionCount {
	return QuestionCounts[(int(c)+1)%len(QuestionCounts)]
}

// Prev returns the preceding count, wrapping around.
func (c QuestionCount) Prev() QuestionCount {
	n := len(QuestionCounts)
	return QuestionCounts[(int(c)-1+n)%n]
}

// ParseQuestionCount parses "5", "10", "20" or "all".
func ParseQuestionCount(s string) (QuestionCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "5":
		return CountFive, nil
	case "10":
		return CountTen, nil
	case "20":
		return CountTwenty, nil
	case "all":
		return CountAll, nil
	default:
		return 0, fmt.Errorf("invalid question count %q (want 5, 10, 20 or all)", s)
	}
}

// Settings are chosen before a session starts.
type Settings struct {
	TableIndex int
	Count      QuestionCount
}

// TotalQuestions returns how many questions a session on table asks.
// Fixed counts are bounded by the table size.
func (s Settings) TotalQuestions(table catalog.Table) int {
	size := len(table.Questions)
	var n int
	switch s.Count {
	case CountFive:
		n = 5
	case CountTen:
		n = 10
	case CountTwenty:
		n = 20
	default:
		n = size
	}
	if n > size {
		n = size
	}
	return n
}

// Options lists the choices offered on the settings screen.
type Options struct {
	Tables []int
	Counts []QuestionCount
}

// SettingsOptions returns the table factors and question counts to offer.
func SettingsOptions() Options {
	tables := make([]int, 0, catalog.TableCount)
	for f := catalog.MinFactor; f <= catalog.MaxFactor; f++ {
		tables = append(tables, f)
	}
	return Options{
		Tables: tables,
		Counts: append([]QuestionCount(nil), QuestionCounts...),
	}
}
