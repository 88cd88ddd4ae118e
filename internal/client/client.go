package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/bosshoggett/concord-cli/internal/auth"
)

const apiBase = "/api/v1"

// Config is the connection profile for one camera. It is fixed for the
// lifetime of a Client.
type Config struct {
	Host     string
	Port     int           // default 80
	Username string        // default "admin"
	Password string        // default empty, the factory setting
	Timeout  time.Duration // default 10s
	AuthMode auth.Mode     // default digest
	Logger   zerolog.Logger
}

// Client talks to one camera's vendor HTTP API. Construction performs no
// network I/O; each method is a single request with no retries.
type Client struct {
	http *resty.Client
	host string
	user string
	pass string
	log  zerolog.Logger
}

// New builds a client from a connection profile, filling in factory
// defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.Port == 0 {
		cfg.Port = 80
	}
	if cfg.Username == "" {
		cfg.Username = "admin"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = auth.ModeDigest
	}

	r := resty.New()
	r.SetBaseURL(fmt.Sprintf("http://%s:%d", cfg.Host, cfg.Port))
	r.SetTimeout(cfg.Timeout)
	r.SetHeader("User-Agent", "concord-cli/1.0")
	r.SetHeader("Accept", "application/json")
	auth.Apply(r, cfg.AuthMode, cfg.Username, cfg.Password)

	return &Client{
		http: r,
		host: cfg.Host,
		user: cfg.Username,
		pass: cfg.Password,
		log:  cfg.Logger,
	}
}

// envelope is the vendor result wrapper used by every non-snapshot endpoint.
type envelope struct {
	Result  int             `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// get issues a GET against an envelope endpoint and unmarshals the data
// object into out. out may be nil when the caller only cares about success.
func (c *Client) get(path string, query map[string]string, out any) error {
	req := c.http.R()
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return &ConnectionError{Host: c.host, Err: err}
	}
	return c.decode(resp, out)
}

// post issues a POST with a JSON body. Partial-update semantics live in the
// body type: nil fields are omitted and the camera merges what it receives.
func (c *Client) post(path string, body any, out any) error {
	req := c.http.R().SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return &ConnectionError{Host: c.host, Err: err}
	}
	return c.decode(resp, out)
}

func (c *Client) decode(resp *resty.Response, out any) error {
	c.log.Debug().
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("camera response")

	if resp.StatusCode() == http.StatusUnauthorized {
		return &AuthError{Message: "camera rejected credentials"}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &ProtocolError{Message: fmt.Sprintf("malformed response (HTTP %d): %v", resp.StatusCode(), err)}
	}
	if err := apiError(env.Result, env.Message); err != nil {
		return err
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &ProtocolError{Message: fmt.Sprintf("unexpected data payload: %v", err)}
	}
	return nil
}
