package spawn

import "math/rand/v2"

// Source yields uniform floats in [0,1).
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG generator seeded from seed.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Selector pairs a table with the source it samples from.
type Selector struct {
	table *Table
	src   Source
}

// NewSelector creates a selector over table using src.
func NewSelector(table *Table, src Source) *Selector {
	return &Selector{table: table, src: src}
}

// SampleIndex draws one index proportional to weight.
func (s *Selector) SampleIndex() int {
	return s.table.Sample(s.src)
}

// Table returns the underlying table.
func (s *Selector) Table() *Table {
	return s.table
}

// Sequence is a Source that replays fixed values, cycling when exhausted.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a replaying source. An empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
