// Package domain
package domain

import "time"

type NetworkMetric struct {
	RxBytes  uint64  `json:"rx_bytes"`
	TxBytes  uint64  `json:"tx_bytes"`
	RxPerSec float64 `json:"rx_per_sec"`
	TxPerSec float64 `json:"tx_per_sec"`
}

type CPUMetric struct {
	Usage   float64   `json:"usage"`
	PerCore []float64 `json:"per_core"`
}

type MemoryMetric struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
	SwapTotal   uint64  `json:"swap_total"`
	SwapUsed    uint64  `json:"swap_used"`
}

type DiskMetric struct {
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

type SystemMetric struct {
	Hostname      string  `json:"hostname"`
	IPAddress     string  `json:"ip_address"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

type Metrics struct {
	Network   NetworkMetric `json:"network"`
	CPU       CPUMetric     `json:"cpu"`
	Memory    MemoryMetric  `json:"memory"`
	Disk      DiskMetric    `json:"disk"`
	System    SystemMetric  `json:"system"`
	SampledAt time.Time     `json:"sampled_at"`
}
