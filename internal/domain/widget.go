package domain

// Widget payloads are display-ready: values pre-formatted for the dashboard,
// raw numbers kept alongside for client-side graphing.

type NetworkWidget struct {
	Download    string  `json:"download"`
	Upload      string  `json:"upload"`
	DownloadRaw float64 `json:"download_raw"`
	UploadRaw   float64 `json:"upload_raw"`
}

type CPUWidget struct {
	Usage    string  `json:"usage"`
	UsageRaw float64 `json:"usage_raw"`
	Cores    int     `json:"cores"`
}

type MemoryWidget struct {
	Used     string  `json:"used"`
	Total    string  `json:"total"`
	Usage    string  `json:"usage"`
	UsageRaw float64 `json:"usage_raw"`
}

type DiskWidget struct {
	Used     string  `json:"used"`
	Total    string  `json:"total"`
	Usage    string  `json:"usage"`
	UsageRaw float64 `json:"usage_raw"`
}

type SystemWidget struct {
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ip_address"`
	Uptime    string `json:"uptime"`
}

type WidgetBoard struct {
	Network NetworkWidget `json:"network"`
	CPU     CPUWidget     `json:"cpu"`
	Memory  MemoryWidget  `json:"memory"`
	Disk    DiskWidget    `json:"disk"`
	System  SystemWidget  `json:"system"`
}
