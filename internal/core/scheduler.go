// Package core
package core

import (
	"context"
	"time"

	"pulsedeck-server/internal/domain"
)

// Scheduler drives the sampling cadence: one immediate sweep, then one per
// tick until the context is cancelled. The sampler itself stays cadence-free.
type Scheduler struct {
	interval time.Duration
	sample   func(context.Context) domain.Metrics
	sink     func(domain.Metrics)
}

func NewScheduler(interval time.Duration, sample func(context.Context) domain.Metrics, sink func(domain.Metrics)) *Scheduler {
	return &Scheduler{interval: interval, sample: sample, sink: sink}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.sample == nil || s.sink == nil {
		return
	}

	s.sink(s.sample(ctx))
}
