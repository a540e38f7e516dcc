// Package spawn picks content by relative weight.
// A Table is built once from integer weights and sampled many times with
// an injected random source, so tests can drive it deterministically.
package spawn

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a table has no entries.
	ErrEmptyTable = errors.New("spawn: weight table is empty")
	// ErrNegativeWeight is returned when an entry carries a negative weight.
	ErrNegativeWeight = errors.New("spawn: negative weight")
	// ErrZeroWeight is returned when all weights sum to zero.
	ErrZeroWeight = errors.New("spawn: weights sum to zero")
)

// Table is a normalized cumulative probability table.
// cumulative[i] holds the sum of normalized weights 0..i; the last entry is 1.
type Table struct {
	cumulative []float64
}

// NewTable normalizes weights into a cumulative table.
// Entries with weight zero are kept so indices stay aligned with the input,
// but they are never selected.
func NewTable(weights []int) (*Table, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyTable
	}

	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: entry %d has weight %d", ErrNegativeWeight, i, w)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrZeroWeight
	}

	t := &Table{cumulative: make([]float64, len(weights))}
	sum := 0.0
	for i, w := range weights {
		sum += float64(w) / float64(total)
		t.cumulative[i] = sum
	}
	// Pin the final bucket so rounding never leaves a gap below 1.
	t.cumulative[len(weights)-1] = 1
	return t, nil
}

// MustTable is like NewTable but panics on error. Intended for literals in
// tests and package-level defaults.
func MustTable(weights []int) *Table {
	t, err := NewTable(weights)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.cumulative)
}

// Probability returns the normalized weight of entry i.
func (t *Table) Probability(i int) float64 {
	if t == nil || i < 0 || i >= len(t.cumulative) {
		return 0
	}
	if i == 0 {
		return t.cumulative[0]
	}
	return t.cumulative[i] - t.cumulative[i-1]
}

// Pick maps a uniform value in [0,1) onto an index.
// It returns the first index whose cumulative weight is >= u, falling back
// to index 0 when nothing matches. A nil table always yields 0.
func (t *Table) Pick(u float64) int {
	if t == nil {
		return 0
	}
	for i, c := range t.cumulative {
		// c > 0 keeps leading zero-weight entries out when u is exactly 0.
		if c > 0 && c >= u {
			return i
		}
	}
	return 0
}

// Sample draws one index using src.
func (t *Table) Sample(src Source) int {
	return t.Pick(src.Float64())
}
