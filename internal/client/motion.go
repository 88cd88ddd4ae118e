package client

import "github.com/bosshoggett/concord-cli/pkg/models"

// MotionDetection fetches the motion detection configuration.
func (c *Client) MotionDetection() (*models.MotionDetection, error) {
	var md models.MotionDetection
	if err := c.get(apiBase+"/motion/detection", nil, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// SetMotionDetection patches the motion configuration. A non-nil Regions
// slice replaces the camera's whole region set.
func (c *Client) SetMotionDetection(u models.MotionUpdate) error {
	return c.post(apiBase+"/motion/detection", u, nil)
}
