// Package system
package system

import (
	"context"
	"net"
	"os"
	"strconv"
	"strings"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

const defaultUptimePath = "/proc/uptime"

type Collector struct {
	log        logger.Logger
	uptimePath string
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:        log,
		uptimePath: defaultUptimePath,
	}
}

func (c *Collector) Collect(ctx context.Context) (domain.SystemMetric, error) {
	metric := domain.SystemMetric{
		IPAddress: primaryIP(),
	}

	if hostname, err := os.Hostname(); err == nil {
		metric.Hostname = hostname
	} else {
		c.log.Warn("failed to read hostname", "error", err)
	}

	uptime, err := readUptime(c.uptimePath)
	if err != nil {
		c.log.Warn("failed to read uptime", "path", c.uptimePath, "error", err)
	}
	metric.UptimeSeconds = uptime

	return metric, nil
}

func readUptime(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, nil
	}

	return strconv.ParseFloat(fields[0], 64)
}

// primaryIP returns the first global unicast IPv4 address, empty when the
// host has none.
func primaryIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return ""
}
