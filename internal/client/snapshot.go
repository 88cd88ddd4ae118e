package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// Snapshot fetches a JPEG frame from the given channel (0 = main, 1 = sub).
// This endpoint returns raw image bytes, not the JSON envelope. Given the
// broken RTSP stream, it is the only reliable way to get a picture out of
// these cameras.
func (c *Client) Snapshot(channel int) ([]byte, error) {
	resp, err := c.http.R().
		SetQueryParam("channel", strconv.Itoa(channel)).
		Get(apiBase + "/snapshot")
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}

	c.log.Debug().
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Str("content_type", resp.Header().Get("Content-Type")).
		Msg("snapshot response")

	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, &AuthError{Message: "camera rejected credentials"}
	}

	ct := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		// Failures come back as the usual JSON envelope even on this
		// endpoint.
		var env envelope
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil && env.Result != codeOK {
			return nil, apiError(env.Result, env.Message)
		}
		return nil, &ProtocolError{Message: fmt.Sprintf("expected an image, got content type %q", ct)}
	}
	if len(resp.Body()) == 0 {
		return nil, &ProtocolError{Message: "empty snapshot body"}
	}
	return resp.Body(), nil
}

// SaveSnapshot fetches a snapshot and writes it to path. The file handle is
// closed on every exit path; write and close failures propagate to the
// caller.
func (c *Client) SaveSnapshot(channel int, path string) error {
	data, err := c.Snapshot(channel)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return saveBytes(f, data, path)
}

// saveBytes writes data and closes w. The handle is closed on every exit
// path; a write error takes precedence over a close error.
func saveBytes(w io.WriteCloser, data []byte, name string) error {
	_, werr := w.Write(data)
	cerr := w.Close()
	if werr != nil {
		return fmt.Errorf("writing %s: %w", name, werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing %s: %w", name, cerr)
	}
	return nil
}
