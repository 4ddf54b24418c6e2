// Package memory
package memory

import (
	"context"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

const defaultMemInfoPath = "/proc/meminfo"

type Collector struct {
	log         logger.Logger
	memInfoPath string
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:         log,
		memInfoPath: defaultMemInfoPath,
	}
}

func (c *Collector) Collect(ctx context.Context) (domain.MemoryMetric, error) {
	info, err := readMemInfo(c.memInfoPath)
	if err != nil {
		c.log.Warn("failed to read meminfo", "path", c.memInfoPath, "error", err)
		return domain.MemoryMetric{}, err
	}

	metric := domain.MemoryMetric{
		Total:     info.memTotal,
		Available: info.memAvailable,
		SwapTotal: info.swapTotal,
	}

	if info.memTotal >= info.memAvailable {
		metric.Used = info.memTotal - info.memAvailable
	}
	if info.swapTotal >= info.swapFree {
		metric.SwapUsed = info.swapTotal - info.swapFree
	}
	if info.memTotal > 0 {
		metric.UsedPercent = float64(metric.Used) / float64(info.memTotal) * 100
	}

	return metric, nil
}
