package models

// NetworkSettings mirrors GET /api/v1/system/network. The camera ignores the
// static fields while DHCP is 1; the client performs no cross-field checks.
type NetworkSettings struct {
	DHCP     int    `json:"dhcp"` // 0 or 1
	IP       string `json:"ip"`
	Netmask  string `json:"netmask"`
	Gateway  string `json:"gateway"`
	DNS1     string `json:"dns1"`
	DNS2     string `json:"dns2"`
	HTTPPort int    `json:"http_port"`
	RTSPPort int    `json:"rtsp_port"`
}

// NetworkUpdate is a partial-update body. Nil fields are omitted from the
// POST payload; the camera merges what it receives.
type NetworkUpdate struct {
	DHCP     *int    `json:"dhcp,omitempty"`
	IP       *string `json:"ip,omitempty"`
	Netmask  *string `json:"netmask,omitempty"`
	Gateway  *string `json:"gateway,omitempty"`
	DNS1     *string `json:"dns1,omitempty"`
	DNS2     *string `json:"dns2,omitempty"`
	HTTPPort *int    `json:"http_port,omitempty"`
	RTSPPort *int    `json:"rtsp_port,omitempty"`
}
