// Package widget shapes raw metric snapshots into display-ready dashboard
// payloads: pretty-printed byte strings, percentages, smoothed rates.
package widget

import (
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/pkg"
)

// smoothing factor for the displayed throughput; the underlying sampler stays
// exact, only the widget view is averaged to keep the numbers readable.
const rateAlpha = 0.3

type Service struct {
	mu    sync.Mutex
	rxEMA *pkg.EMA
	txEMA *pkg.EMA
}

func NewService() *Service {
	return &Service{
		rxEMA: pkg.NewEMA(rateAlpha),
		txEMA: pkg.NewEMA(rateAlpha),
	}
}

func (s *Service) Build(m domain.Metrics) domain.WidgetBoard {
	s.mu.Lock()
	download := s.rxEMA.Add(m.Network.RxPerSec)
	upload := s.txEMA.Add(m.Network.TxPerSec)
	s.mu.Unlock()

	return domain.WidgetBoard{
		Network: domain.NetworkWidget{
			Download:    rateString(download),
			Upload:      rateString(upload),
			DownloadRaw: download,
			UploadRaw:   upload,
		},
		CPU: domain.CPUWidget{
			Usage:    percentString(m.CPU.Usage),
			UsageRaw: m.CPU.Usage,
			Cores:    len(m.CPU.PerCore),
		},
		Memory: domain.MemoryWidget{
			Used:     humanize.IBytes(m.Memory.Used),
			Total:    humanize.IBytes(m.Memory.Total),
			Usage:    percentString(m.Memory.UsedPercent),
			UsageRaw: m.Memory.UsedPercent,
		},
		Disk: domain.DiskWidget{
			Used:     humanize.Bytes(m.Disk.Used),
			Total:    humanize.Bytes(m.Disk.Total),
			Usage:    percentString(m.Disk.UsedPercent),
			UsageRaw: m.Disk.UsedPercent,
		},
		System: domain.SystemWidget{
			Hostname:  m.System.Hostname,
			IPAddress: m.System.IPAddress,
			Uptime:    uptimeString(m.System.UptimeSeconds),
		},
	}
}

func rateString(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	return humanize.Bytes(uint64(bytesPerSec)) + "/s"
}

func percentString(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func uptimeString(seconds float64) string {
	d := time.Duration(seconds) * time.Second

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
