package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// OSDSettings fetches the on-screen display configuration.
func (c *Client) OSDSettings() (*models.OSDSettings, error) {
	var osd models.OSDSettings
	if err := c.get(apiBase+"/osd/settings", nil, &osd); err != nil {
		return nil, err
	}
	return &osd, nil
}

// SetOSDSettings patches the on-screen display configuration.
func (c *Client) SetOSDSettings(u models.OSDUpdate) error {
	return c.post(apiBase+"/osd/settings", u, nil)
}
