// Package catalog builds the fixed set of multiplication questions.
package catalog

import (
	"fmt"
	"sync"
)

const (
	// MinFactor is the smallest table factor.
	MinFactor = 1
	// MaxFactor is the largest table factor.
	MaxFactor = 12
	// TableCount is the number of tables in the catalog.
	TableCount = MaxFactor - MinFactor + 1
)

// Question is a single multiplication question.
type Question struct {
	Text   string
	Answer int
}

// Table holds every question associated with one factor.
type Table struct {
	Factor    int
	Questions []Question
}

type pair struct {
	lo int
	hi int
}

func pairOf(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

// Build returns the twelve times tables, ordered by factor.
//
// Each unordered factor pair appears once per table it touches. A question is
// phrased from the larger factor's pass, so the table for 3 holds
// "What is 4 x 3?" rather than "What is 3 x 4?".
func Build() []Table {
	tables := make([]Table, TableCount)
	seen := make([]map[pair]struct{}, TableCount)
	for i := range tables {
		tables[i].Factor = MinFactor + i
		seen[i] = map[pair]struct{}{}
	}
	for first := MinFactor; first <= MaxFactor; first++ {
		for second := MinFactor; second <= MaxFactor; second++ {
			if second > first {
				// Built when the roles swap.
				continue
			}
			q := Question{
				Text:   fmt.Sprintf("What is %d x %d?", first, second),
				Answer: first * second,
			}
			p := pairOf(first, second)
			add(tables, seen, first, p, q)
			if second != first {
				add(tables, seen, second, p, q)
			}
		}
	}
	return tables
}

func add(tables []Table, seen []map[pair]struct{}, factor int, p pair, q Question) {
	idx := factor - MinFactor
	if _, ok := seen[idx][p]; ok {
		return
	}
	seen[idx][p] = struct{}{}
	tables[idx].Questions = append(tables[idx].Questions, q)
}

var defaultTables = sync.OnceValue(Build)

// Default returns the process-wide catalog. Callers must not modify it.
func Default() []Table {
	return defaultTables()
}

// Lookup returns the table at a 0-based index.
func Lookup(tables []Table, index int) (Table, bool) {
	if index < 0 || index >= len(tables) {
		return Table{}, false
	}
	return tables[index], true
}
