// Package testutil provides deterministic helpers shared by tests and the
// conformance harness.
package testutil

import (
	"fmt"
	"sync"
)

// IDSequence generates sequential record IDs ("rec-001", "rec-002", ...).
//
// Unlike record.FixedGenerator it never exhausts, which suits harness
// scenarios that create an unknown number of records. The sequence can be
// reset for scenario reuse.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type IDSequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewIDSequence creates a sequence with the given prefix.
// The first Generate() returns "<prefix>-001".
func NewIDSequence(prefix string) *IDSequence {
	return &IDSequence{prefix: prefix}
}

// Generate returns the next sequential ID.
func (s *IDSequence) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%03d", s.prefix, s.n)
}

// Reset restarts the sequence. After Reset(), the next Generate() returns
// "<prefix>-001" again.
func (s *IDSequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}
