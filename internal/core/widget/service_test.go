package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsedeck-server/internal/domain"
)

func sampleMetrics() domain.Metrics {
	return domain.Metrics{
		Network: domain.NetworkMetric{RxPerSec: 1048576, TxPerSec: 0},
		CPU:     domain.CPUMetric{Usage: 42.35, PerCore: []float64{40, 44}},
		Memory: domain.MemoryMetric{
			Total:       16 * 1024 * 1024 * 1024,
			Used:        8 * 1024 * 1024 * 1024,
			UsedPercent: 50,
		},
		Disk: domain.DiskMetric{
			Total:       500_000_000_000,
			Used:        250_000_000_000,
			UsedPercent: 50,
		},
		System: domain.SystemMetric{
			Hostname:      "deck",
			IPAddress:     "192.168.1.10",
			UptimeSeconds: 90061, // 1d 1h 1m 1s
		},
	}
}

func TestBuildShapesWidgets(t *testing.T) {
	board := NewService().Build(sampleMetrics())

	// first observation seeds the smoothed rate directly
	assert.Equal(t, "1.0 MB/s", board.Network.Download)
	assert.Equal(t, "0 B/s", board.Network.Upload)
	assert.InDelta(t, 1048576, board.Network.DownloadRaw, 1e-9)

	assert.Equal(t, "42.4%", board.CPU.Usage)
	assert.Equal(t, 2, board.CPU.Cores)

	assert.Equal(t, "8.0 GiB", board.Memory.Used)
	assert.Equal(t, "16 GiB", board.Memory.Total)
	assert.Equal(t, "50.0%", board.Memory.Usage)

	assert.Equal(t, "250 GB", board.Disk.Used)
	assert.Equal(t, "500 GB", board.Disk.Total)

	assert.Equal(t, "deck", board.System.Hostname)
	assert.Equal(t, "1d 1h 1m", board.System.Uptime)
}

func TestBuildSmoothsRatesAcrossCalls(t *testing.T) {
	svc := NewService()

	m := sampleMetrics()
	svc.Build(m)

	m.Network.RxPerSec = 0
	board := svc.Build(m)

	// EMA: 0.3*0 + 0.7*1048576
	assert.InDelta(t, 0.7*1048576, board.Network.DownloadRaw, 1e-6)
}

func TestUptimeString(t *testing.T) {
	assert.Equal(t, "5m", uptimeString(300))
	assert.Equal(t, "2h 5m", uptimeString(2*3600+300))
	assert.Equal(t, "3d 0h 0m", uptimeString(3*24*3600))
}
