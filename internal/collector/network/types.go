package network

import (
	"sync"
	"time"
)

const DefaultDevPath = "/proc/net/dev"

// sample is one aggregate snapshot of the counter file: cumulative bytes
// received and transmitted across allowed interfaces, and when it was taken.
type sample struct {
	rxBytes uint64
	txBytes uint64
	takenAt time.Time
}

// Rates is a point-in-time throughput estimate in bytes per second.
type Rates struct {
	RxPerSec float64
	TxPerSec float64
}

// Sampler derives throughput from consecutive reads of the counter file.
// It holds at most one prior sample; the zero interval between overlapping
// callers is handled by serializing the whole read-diff-store sequence.
type Sampler struct {
	devPath string
	now     func() time.Time

	mu   sync.Mutex
	last *sample
}

func NewSampler(devPath string) *Sampler {
	if devPath == "" {
		devPath = DefaultDevPath
	}

	return &Sampler{
		devPath: devPath,
		now:     time.Now,
	}
}
