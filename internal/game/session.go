package game

import (
	"time"

	"github.com/verte-zerg/tuimul/internal/catalog"
)

// Attempt records one checked answer.
type Attempt struct {
	Question catalog.Question
	Given    int
	Correct  bool
}

// session is one run of the quiz. It is owned by a Machine.
type session struct {
	id        string
	factor    int
	questions []catalog.Question
	index     int
	correct   int
	answer    AnswerState
	button    ButtonState
	buffer    string
	attempts  []Attempt
	startedAt time.Time
}

func (s *session) total() int {
	return len(s.questions)
}

func (s *session) finished() bool {
	return s.index == s.total()
}

func (s *session) current() (catalog.Question, bool) {
	if s.finished() {
		return catalog.Question{}, false
	}
	return s.questions[s.index], true
}

func (s *session) resetInput() {
	s.answer = AnswerInput
	s.buffer = ""
	s.button = ButtonDisabled
}
