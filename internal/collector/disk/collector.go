// Package disk
package disk

import (
	"context"

	"golang.org/x/sys/unix"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

type Collector struct {
	log  logger.Logger
	path string
}

// NewCollector reports filesystem usage for the mount at path, usually "/".
func NewCollector(log logger.Logger, path string) *Collector {
	if path == "" {
		path = "/"
	}

	return &Collector{log: log, path: path}
}

func (c *Collector) Collect(ctx context.Context) (domain.DiskMetric, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(c.path, &stat); err != nil {
		c.log.Warn("statfs failed", "path", c.path, "error", err)
		return domain.DiskMetric{}, err
	}

	bsize := uint64(stat.Bsize)
	metric := domain.DiskMetric{
		Total: stat.Blocks * bsize,
		// free as seen by unprivileged users
		Free: stat.Bavail * bsize,
	}
	metric.Used = (stat.Blocks - stat.Bfree) * bsize

	if metric.Total > 0 {
		metric.UsedPercent = float64(metric.Used) / float64(metric.Total) * 100
	}

	return metric, nil
}
