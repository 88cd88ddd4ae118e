package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// ImageSettings fetches brightness, contrast and the other picture controls.
func (c *Client) ImageSettings() (*models.ImageSettings, error) {
	var is models.ImageSettings
	if err := c.get(apiBase+"/image/settings", nil, &is); err != nil {
		return nil, err
	}
	return &is, nil
}

// SetImageSettings patches the picture controls.
func (c *Client) SetImageSettings(u models.ImageUpdate) error {
	return c.post(apiBase+"/image/settings", u, nil)
}
