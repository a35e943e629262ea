// Package sequence provides the process-wide identifier generators for
// accounts and transactions. Each entity type gets its own Sequence instance,
// constructed at startup and injected into whichever component assigns ids.
package sequence

import "sync/atomic"

type Sequence struct {
	counter atomic.Int64
}

func New() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier, starting at 1. Concurrent callers always
// receive distinct values.
func (s *Sequence) Next() int64 {
	return s.counter.Add(1)
}

// Reset rewinds the sequence so the next call to Next returns 1. Test
// isolation only.
func (s *Sequence) Reset() {
	s.counter.Store(0)
}
