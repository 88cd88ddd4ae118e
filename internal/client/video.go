package client

import (
	"strconv"

	"github.com/bosshoggett/concord-cli/pkg/models"
)

// VideoStream fetches the encode settings for one channel
// (0 = main, 1 = sub).
func (c *Client) VideoStream(channel int) (*models.VideoStream, error) {
	var vs models.VideoStream
	q := map[string]string{"channel": strconv.Itoa(channel)}
	if err := c.get(apiBase+"/video/stream", q, &vs); err != nil {
		return nil, err
	}
	return &vs, nil
}

// SetVideoStream patches the encode settings for the channel named in the
// update. The body carries only the fields the caller set.
func (c *Client) SetVideoStream(u models.VideoStreamUpdate) error {
	return c.post(apiBase+"/video/stream", u, nil)
}
