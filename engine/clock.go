// Package engine implements the auction lifecycle manager: it validates and
// orchestrates the public operations over the core rules, the store, and the
// external collaborators (clock/sequence source, authenticator, asset
// transfer, audit log).
package engine

import (
	"sync/atomic"
	"time"
)

// LedgerSource supplies the engine's read-only view of current time and of
// the external monotonically increasing sequence counter. The engine never
// advances either; every operation re-reads both at call time.
type LedgerSource interface {
	// Now returns the current time as unix seconds.
	Now() int64

	// Sequence returns the current sequence number.
	Sequence() uint32
}

// SystemSource is a LedgerSource backed by the wall clock and a process-local
// counter that advances on every read. A deployment with a real external
// sequence source (a chain, a WAL position) should wrap that instead.
type SystemSource struct {
	seq atomic.Uint32
}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Now() int64 {
	return time.Now().Unix()
}

func (s *SystemSource) Sequence() uint32 {
	return s.seq.Add(1)
}
