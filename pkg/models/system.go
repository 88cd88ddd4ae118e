package models

// SystemInfo is the read-only record returned by GET /api/v1/system/info.
type SystemInfo struct {
	Model           string `json:"model"`
	HardwareVersion string `json:"hardware_version"`
	FirmwareVersion string `json:"firmware_version"`
	SerialNumber    string `json:"serial_number"`
	Uptime          int64  `json:"uptime"` // seconds since boot
	SystemTime      string `json:"system_time"`
}
