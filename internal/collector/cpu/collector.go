// Package cpu
package cpu

import (
	"context"
	"sync"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

const defaultStatPath = "/proc/stat"

type Collector struct {
	log      logger.Logger
	statPath string

	mu   sync.Mutex
	prev map[string]cpuTimes
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:      log,
		statPath: defaultStatPath,
		prev:     make(map[string]cpuTimes),
	}
}

// Collect reports busy percentage since the previous call. The first call has
// no baseline and reports zeros.
func (c *Collector) Collect(ctx context.Context) (domain.CPUMetric, error) {
	current, err := readStat(c.statPath)
	if err != nil {
		c.log.Warn("failed to read cpu stat", "path", c.statPath, "error", err)
		return domain.CPUMetric{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var metric domain.CPUMetric
	for _, name := range current.order {
		var usage float64
		if prev, ok := c.prev[name]; ok {
			usage = usageBetween(prev, current.times[name])
		}
		if name == "cpu" {
			metric.Usage = usage
		} else {
			metric.PerCore = append(metric.PerCore, usage)
		}
	}

	c.prev = current.times
	return metric, nil
}
