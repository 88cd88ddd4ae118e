package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosshoggett/concord-cli/internal/auth"
	"github.com/bosshoggett/concord-cli/pkg/models"
)

// newTestClient points a client at an httptest server. Basic auth keeps the
// test handlers free of digest challenge plumbing.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return New(Config{
		Host:     u.Hostname(),
		Port:     port,
		Username: "admin",
		Timeout:  5 * time.Second,
		AuthMode: auth.ModeBasic,
	})
}

func envelopeHandler(result int, data string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if data == "" {
			fmt.Fprintf(w, `{"result":%d}`, result)
			return
		}
		fmt.Fprintf(w, `{"result":%d,"data":%s}`, result, data)
	}
}

func TestGetterPassThrough(t *testing.T) {
	c := newTestClient(t, envelopeHandler(0,
		`{"dhcp":0,"ip":"192.168.1.10","netmask":"255.255.255.0","gateway":"192.168.1.1","dns1":"8.8.8.8","dns2":"8.8.4.4","http_port":80,"rtsp_port":554}`))

	ns, err := c.NetworkSettings()
	require.NoError(t, err)

	assert.Equal(t, 0, ns.DHCP)
	assert.Equal(t, "192.168.1.10", ns.IP)
	assert.Equal(t, "255.255.255.0", ns.Netmask)
	assert.Equal(t, "192.168.1.1", ns.Gateway)
	assert.Equal(t, 80, ns.HTTPPort)
	assert.Equal(t, 554, ns.RTSPPort)
}

func TestSystemInfoPassThrough(t *testing.T) {
	c := newTestClient(t, envelopeHandler(0,
		`{"model":"CNC81BA-V4","hardware_version":"V4","firmware_version":"3.2.1","serial_number":"A1B2C3","uptime":86461,"system_time":"2024-06-01 12:00:00"}`))

	info, err := c.SystemInfo()
	require.NoError(t, err)

	assert.Equal(t, "CNC81BA-V4", info.Model)
	assert.Equal(t, "3.2.1", info.FirmwareVersion)
	assert.Equal(t, int64(86461), info.Uptime)
}

func TestResultCodeMapping(t *testing.T) {
	testCases := []struct {
		name string
		code int
		as   any
	}{
		{"auth failure", 2, new(*AuthError)},
		{"permission denied", 3, new(*PermissionError)},
		{"not found", 4, new(*NotFoundError)},
		{"device busy", 6, new(*DeviceBusyError)},
		{"invalid parameters", 1, new(*ProtocolError)},
		{"internal error", 5, new(*ProtocolError)},
		{"unmapped code", 42, new(*ProtocolError)},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			c := newTestClient(t, envelopeHandler(test.code, ""))

			_, err := c.SystemInfo()
			require.Error(t, err)
			assert.True(t, errors.As(err, test.as), "expected %T, got %T", test.as, err)
		})
	}
}

func TestProtocolErrorKeepsCode(t *testing.T) {
	c := newTestClient(t, envelopeHandler(5, ""))

	_, err := c.SystemInfo()
	require.Error(t, err)

	var perr *ProtocolError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 5, perr.Code)
}

func TestMalformedResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html>not json</html>")
	}))

	_, err := c.SystemInfo()
	require.Error(t, err)

	var perr *ProtocolError
	assert.True(t, errors.As(err, &perr))
}

func TestHTTPUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.SystemInfo()
	require.Error(t, err)

	var aerr *AuthError
	assert.True(t, errors.As(err, &aerr))
}

func TestPartialVideoUpdateBody(t *testing.T) {
	var body []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		body, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":0}`)
	}))

	bitrate := 4096
	err := c.SetVideoStream(models.VideoStreamUpdate{Channel: 0, Bitrate: &bitrate})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(body, &sent))

	// Only the channel identifier and the one supplied field.
	assert.Len(t, sent, 2)
	assert.Equal(t, float64(0), sent["channel"])
	assert.Equal(t, float64(4096), sent["bitrate"])
}

func TestPartialNetworkUpdateBody(t *testing.T) {
	var body []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":0}`)
	}))

	dhcp := 1
	err := c.SetNetworkSettings(models.NetworkUpdate{DHCP: &dhcp})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Len(t, sent, 1)
	assert.Equal(t, float64(1), sent["dhcp"])
}

func TestVideoStreamSendsChannelQuery(t *testing.T) {
	var gotChannel string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotChannel = r.URL.Query().Get("channel")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":0,"data":{"channel":1,"codec":"H264","resolution":"1280x720","fps":15,"bitrate":1024,"bitrate_control":"VBR","quality":"medium","gop":30}}`)
	}))

	vs, err := c.VideoStream(1)
	require.NoError(t, err)
	assert.Equal(t, "1", gotChannel)
	assert.Equal(t, "H264", vs.Codec)
	assert.Equal(t, 1024, vs.Bitrate)
}

func TestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, _ := strconv.Atoi(u.Port())
	srv.Close()

	c := New(Config{
		Host:     u.Hostname(),
		Port:     port,
		Timeout:  2 * time.Second,
		AuthMode: auth.ModeBasic,
	})

	_, err = c.SystemInfo()
	require.Error(t, err)

	var cerr *ConnectionError
	assert.True(t, errors.As(err, &cerr))
}

func TestTimeoutSurfacesAsConnectionError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	// Rebuild with a short timeout against the same host.
	short := New(Config{
		Host:     c.host,
		Port:     mustPort(t, c),
		Timeout:  100 * time.Millisecond,
		AuthMode: auth.ModeBasic,
	})

	start := time.Now()
	_, err := short.SystemInfo()
	elapsed := time.Since(start)

	require.Error(t, err)
	var cerr *ConnectionError
	assert.True(t, errors.As(err, &cerr))
	assert.Less(t, elapsed, 900*time.Millisecond, "timeout should fire well before the handler finishes")
}

func mustPort(t *testing.T, c *Client) int {
	t.Helper()
	u, err := url.Parse(c.http.BaseURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return port
}
