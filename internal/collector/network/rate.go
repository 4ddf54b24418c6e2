package network

import (
	"math"
	"os"
)

// Rates reads the counter file and returns the throughput since the previous
// successful read. It never fails: throughput is best-effort telemetry, so an
// unreadable counter file, a first call, and a non-advancing clock all degrade
// to zero rates. The stored sample is replaced on every successful read and
// left untouched on a failed one.
func (s *Sampler) Rates() Rates {
	data, err := os.ReadFile(s.devPath)
	if err != nil {
		return Rates{}
	}

	rx, tx := parseCounters(string(data))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prev := s.last
	s.last = &sample{rxBytes: rx, txBytes: tx, takenAt: now}

	if prev == nil {
		return Rates{}
	}

	deltaSeconds := float64(now.Sub(prev.takenAt).Milliseconds()) / 1000
	if deltaSeconds <= 0 {
		return Rates{}
	}

	return Rates{
		RxPerSec: clampRate((float64(rx) - float64(prev.rxBytes)) / deltaSeconds),
		TxPerSec: clampRate((float64(tx) - float64(prev.txBytes)) / deltaSeconds),
	}
}

// Totals returns the counter totals from the last successful read, zero if
// none has happened yet.
func (s *Sampler) Totals() (rx, tx uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return 0, 0
	}
	return s.last.rxBytes, s.last.txBytes
}

// clampRate zeroes negative and non-finite values. Counters appear to go
// backwards on interface resets and when the set of live interfaces changes
// between samples; either way a negative rate is meaningless.
func clampRate(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
