package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// SystemInfo fetches model, versions, serial number and uptime.
func (c *Client) SystemInfo() (*models.SystemInfo, error) {
	var info models.SystemInfo
	if err := c.get(apiBase+"/system/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Reboot restarts the camera. The connection drops shortly after the
// camera acknowledges, so callers should expect follow-up requests to fail
// for a minute or two.
func (c *Client) Reboot() error {
	return c.post(apiBase+"/system/reboot", nil, nil)
}

// FactoryReset erases all settings, including network configuration and
// credentials. The camera comes back on DHCP with admin/empty.
func (c *Client) FactoryReset() error {
	return c.post(apiBase+"/system/reset", nil, nil)
}
