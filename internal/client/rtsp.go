package client

import "fmt"

// RTSPWarning documents the vendor defect: the stream never carries
// SPS/PPS parameter sets, so most players and recorders cannot decode it.
// There is no configuration workaround; use HTTP snapshots instead.
const RTSPWarning = "WARNING: this camera's RTSP stream omits SPS/PPS headers and will not play in most clients. Use the snapshot endpoint for reliable image capture."

const rtspPort = 554

// RTSPURL formats the stream URL for a channel (1 = main 4K, 2 = sub 720p).
// Pure string formatting, no network I/O and no reachability check.
func (c *Client) RTSPURL(channel int, withAuth bool) string {
	cred := ""
	if withAuth {
		if c.pass != "" {
			cred = c.user + ":" + c.pass + "@"
		} else {
			cred = c.user + "@"
		}
	}
	return fmt.Sprintf("rtsp://%s%s:%d/stream%d", cred, c.host, rtspPort, channel)
}
