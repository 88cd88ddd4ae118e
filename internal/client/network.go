package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// NetworkSettings fetches the current network configuration.
func (c *Client) NetworkSettings() (*models.NetworkSettings, error) {
	var ns models.NetworkSettings
	if err := c.get(apiBase+"/system/network", nil, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// SetNetworkSettings patches the network configuration. Only non-nil fields
// are sent; the camera enforces consistency (a static IP is ignored while
// DHCP stays enabled).
func (c *Client) SetNetworkSettings(u models.NetworkUpdate) error {
	return c.post(apiBase+"/system/network", u, nil)
}
