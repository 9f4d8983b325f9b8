// Package generator draws randomized question sets for a session.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/tuimul/internal/catalog"
)

// ErrQuestionCount reports a request for more questions than a table holds.
var ErrQuestionCount = errors.New("question count out of range")

// Sampler produces randomized question orderings.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler seeded with the current time.
func New() *Sampler {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Sampler drawing from src.
func NewWithSource(src rand.Source) *Sampler {
	return &Sampler{rnd: rand.New(src)}
}

// NewSeeded returns a Sampler with a fixed seed, or a time-seeded one when seed is 0.
func NewSeeded(seed int64) *Sampler {
	if seed == 0 {
		return New()
	}
	return NewWithSource(rand.NewSource(seed))
}

// Sample returns n questions from table in random order, without repeats.
func (s *Sampler) Sample(table catalog.Table, n int) ([]catalog.Question, error) {
	if n < 0 || n > len(table.Questions) {
		return nil, fmt.Errorf("table %d has %d questions, requested %d: %w", table.Factor, len(table.Questions), n, ErrQuestionCount)
	}
	shuffled := make([]catalog.Question, len(table.Questions))
	copy(shuffled, table.Questions)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n:n], nil
}
