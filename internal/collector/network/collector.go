// Package network samples cumulative per-interface byte counters from the
// kernel and derives host-level throughput from consecutive samples.
package network

import (
	"context"

	"pulsedeck-server/internal/domain"
)

type Collector struct {
	sampler *Sampler
}

func NewCollector(devPath string) *Collector {
	return &Collector{sampler: NewSampler(devPath)}
}

func (c *Collector) Collect(ctx context.Context) (domain.NetworkMetric, error) {
	rates := c.sampler.Rates()
	rx, tx := c.sampler.Totals()

	return domain.NetworkMetric{
		RxBytes:  rx,
		TxBytes:  tx,
		RxPerSec: rates.RxPerSec,
		TxPerSec: rates.TxPerSec,
	}, nil
}
