// Package metrics
package metrics

import (
	"context"
	"time"

	"pulsedeck-server/internal/collector/cpu"
	"pulsedeck-server/internal/collector/disk"
	"pulsedeck-server/internal/collector/memory"
	"pulsedeck-server/internal/collector/network"
	"pulsedeck-server/internal/collector/system"
	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

// Sampler runs every collector once per sweep. A failing collector leaves its
// section zeroed and is logged; the sweep itself never fails.
type Sampler struct {
	network *network.Collector
	cpu     *cpu.Collector
	memory  *memory.Collector
	disk    *disk.Collector
	system  *system.Collector
	log     logger.Logger
}

type Options struct {
	NetDevPath string
	RootFSPath string
}

func NewSampler(log logger.Logger, opts Options) *Sampler {
	return &Sampler{
		network: network.NewCollector(opts.NetDevPath),
		cpu:     cpu.NewCollector(log),
		memory:  memory.NewCollector(log),
		disk:    disk.NewCollector(log, opts.RootFSPath),
		system:  system.NewCollector(log),
		log:     log,
	}
}

func (s *Sampler) Collect(ctx context.Context) domain.Metrics {
	metrics := domain.Metrics{SampledAt: time.Now()}

	if val, err := s.network.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "network", "error", err)
	} else {
		metrics.Network = val
	}

	if val, err := s.cpu.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "cpu", "error", err)
	} else {
		metrics.CPU = val
	}

	if val, err := s.memory.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "memory", "error", err)
	} else {
		metrics.Memory = val
	}

	if val, err := s.disk.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "disk", "error", err)
	} else {
		metrics.Disk = val
	}

	if val, err := s.system.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "system", "error", err)
	} else {
		metrics.System = val
	}

	return metrics
}
