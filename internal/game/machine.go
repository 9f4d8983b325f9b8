package game

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/input"
)

// Sampler draws the ordered questions for a session.
type Sampler interface {
	Sample(table catalog.Table, n int) ([]catalog.Question, error)
}

// Machine owns the quiz state and applies user actions to it.
// It is not safe for concurrent use.
type Machine struct {
	tables   []catalog.Table
	sampler  Sampler
	log      zerolog.Logger
	now      func() time.Time
	phase    Phase
	settings Settings
	session  *session
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for session events.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = log
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// New returns a Machine in the settings phase.
func New(tables []catalog.Table, sampler Sampler, opts ...Option) *Machine {
	m := &Machine{
		tables:  tables,
		sampler: sampler,
		log:     zerolog.Nop(),
		now:     time.Now,
		phase:   PhaseSettings,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// StartGame begins a new session. It is ignored outside the settings and finished phases.
func (m *Machine) StartGame(settings Settings) (Snapshot, error) {
	if m.phase != PhaseSettings && m.phase != PhaseFinished {
		return m.Snapshot(), nil
	}
	table, ok := catalog.Lookup(m.tables, settings.TableIndex)
	if !ok {
		return m.Snapshot(), fmt.Errorf("table index %d: %w", settings.TableIndex, ErrTableIndex)
	}
	if !settings.Count.Valid() {
		return m.Snapshot(), fmt.Errorf("invalid question count %d", int(settings.Count))
	}
	questions, err := m.sampler.Sample(table, settings.TotalQuestions(table))
	if err != nil {
		return m.Snapshot(), fmt.Errorf("sample questions: %w", err)
	}

	s := &session{
		id:        uuid.NewString(),
		factor:    table.Factor,
		questions: questions,
		startedAt: m.now(),
	}
	s.resetInput()
	m.session = s
	m.settings = settings
	m.phase = PhaseActive
	m.log.Info().
		Str("session", s.id).
		Int("table", table.Factor).
		Int("total", s.total()).
		Msg("session started")
	if s.total() == 0 {
		m.finish()
	}
	return m.Snapshot(), nil
}

// Restart starts a new session with the settings of the last one.
func (m *Machine) Restart() (Snapshot, error) {
	if m.phase != PhaseFinished {
		return m.Snapshot(), nil
	}
	return m.StartGame(m.settings)
}

// PressDigit appends d to the answer.
func (m *Machine) PressDigit(d rune) Snapshot {
	return m.applyInput(input.Digit(d))
}

// PressBackspace removes the last typed digit.
func (m *Machine) PressBackspace() Snapshot {
	return m.applyInput(input.Backspace())
}

func (m *Machine) applyInput(ev input.Event) Snapshot {
	s := m.activeSession()
	if s == nil || s.button == ButtonNext {
		return m.Snapshot()
	}
	s.buffer = input.Apply(s.buffer, ev)
	s.button = ButtonFor(s.buffer, s.answer)
	return m.Snapshot()
}

// PressCheck evaluates the typed answer against the current question.
func (m *Machine) PressCheck() Snapshot {
	s := m.activeSession()
	if s == nil || s.button != ButtonCheck {
		return m.Snapshot()
	}
	q, _ := s.current()
	given, err := strconv.Atoi(s.buffer)
	correct := err == nil && given == q.Answer
	if correct {
		s.answer = AnswerCorrect
		s.correct++
	} else {
		s.answer = AnswerWrong
	}
	s.attempts = append(s.attempts, Attempt{Question: q, Given: given, Correct: correct})
	s.button = ButtonFor(s.buffer, s.answer)
	m.log.Debug().
		Str("session", s.id).
		Str("question", q.Text).
		Int("given", given).
		Bool("correct", correct).
		Msg("answer checked")
	return m.Snapshot()
}

// PressNext advances to the next question or finishes the session.
func (m *Machine) PressNext() Snapshot {
	s := m.activeSession()
	if s == nil || s.button != ButtonNext {
		return m.Snapshot()
	}
	s.index++
	if s.finished() {
		m.finish()
		return m.Snapshot()
	}
	s.resetInput()
	return m.Snapshot()
}

// BackToSettings leaves the results screen.
func (m *Machine) BackToSettings() Snapshot {
	if m.phase != PhaseFinished {
		return m.Snapshot()
	}
	m.phase = PhaseSettings
	return m.Snapshot()
}

// Abandon discards an active session and returns to settings.
func (m *Machine) Abandon() Snapshot {
	if m.phase != PhaseActive {
		return m.Snapshot()
	}
	m.log.Info().
		Str("session", m.session.id).
		Int("answered", len(m.session.attempts)).
		Msg("session abandoned")
	m.session = nil
	m.phase = PhaseSettings
	return m.Snapshot()
}

func (m *Machine) finish() {
	s := m.session
	m.phase = PhaseFinished
	m.log.Info().
		Str("session", s.id).
		Int("table", s.factor).
		Int("correct", s.correct).
		Int("total", s.total()).
		Dur("duration", m.now().Sub(s.startedAt)).
		Msg("session finished")
}

func (m *Machine) activeSession() *session {
	if m.phase != PhaseActive || m.session == nil {
		return nil
	}
	return m.session
}

// Snapshot returns the current view of the machine.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    m.phase,
		Settings: m.settings,
	}
	s := m.session
	if s == nil {
		return snap
	}
	snap.SessionID = s.id
	snap.TableFactor = s.factor
	snap.Answer = s.answer
	snap.Button = s.button
	snap.Index = s.index
	snap.Correct = s.correct
	snap.Total = s.total()
	snap.Attempts = append([]Attempt(nil), s.attempts...)
	if q, ok := s.current(); ok {
		snap.QuestionText = q.Text
		snap.Progress = fmt.Sprintf("%d/%d", s.index+1, s.total())
		if s.answer == AnswerInput {
			snap.Display = s.buffer
		} else {
			snap.Display = feedbackMessage(s.answer, q.Answer)
		}
	}
	return snap
}
