package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuimul/internal/catalog"
)

func TestSampleReturnsDistinctQuestionsFromTable(t *testing.T) {
	table := catalog.Default()[2]
	s := NewWithSource(rand.NewSource(42))

	for _, n := range []int{0, 1, 5, 10, len(table.Questions)} {
		got, err := s.Sample(table, n)
		require.NoError(t, err)
		require.Len(t, got, n)

		seen := map[catalog.Question]bool{}
		for _, q := range got {
			assert.Contains(t, table.Questions, q)
			assert.False(t, seen[q], "repeated %q", q.Text)
			seen[q] = true
		}
	}
}

func TestSampleDoesNotAliasTable(t *testing.T) {
	table := catalog.Build()[4]
	before := append([]catalog.Question(nil), table.Questions...)

	got, err := NewWithSource(rand.NewSource(1)).Sample(table, len(table.Questions))
	require.NoError(t, err)
	got[0] = catalog.Question{Text: "changed"}

	assert.Equal(t, before, table.Questions)
}

func TestSampleIsReproducibleWithSeed(t *testing.T) {
	table := catalog.Default()[6]
	a, err := NewSeeded(7).Sample(table, 10)
	require.NoError(t, err)
	b, err := NewSeeded(7).Sample(table, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleRejectsOutOfRangeCount(t *testing.T) {
	table := catalog.Default()[0]
	s := NewWithSource(rand.NewSource(3))

	_, err := s.Sample(table, len(table.Questions)+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuestionCount))

	_, err = s.Sample(table, -1)
	assert.ErrorIs(t, err, ErrQuestionCount)
}
