package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// AudioSettings fetches the audio encode configuration.
func (c *Client) AudioSettings() (*models.AudioSettings, error) {
	var as models.AudioSettings
	if err := c.get(apiBase+"/audio/settings", nil, &as); err != nil {
		return nil, err
	}
	return &as, nil
}

// SetAudioSettings patches the audio encode configuration.
func (c *Client) SetAudioSettings(u models.AudioUpdate) error {
	return c.post(apiBase+"/audio/settings", u, nil)
}
