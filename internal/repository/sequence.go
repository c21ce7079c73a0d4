package repository

import (
	"fmt"
	"sync/atomic"
)

// ID prefixes per entity kind.
const (
	ProductIDPrefix = "AGR"
	HarvestIDPrefix = "COS"
)

// Sequence produces unique, monotonically increasing, human-readable entity
// IDs such as AGR001 or COS042. IDs are zero-padded to three digits and grow
// wider once the counter passes 999. A retired ID is never handed out again.
type Sequence struct {
	prefix  string
	counter atomic.Int64
}

// NewSequence creates a Sequence for the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next ID in the sequence. Safe for concurrent use: two
// concurrent calls never return the same value.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s%03d", s.prefix, s.counter.Add(1))
}
