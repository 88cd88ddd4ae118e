package auth

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Mode selects the HTTP authentication scheme used for camera requests.
// Current Concord firmware challenges with Digest; older Juan Optical
// netsdk firmware only accepts Basic.
type Mode string

const (
	ModeDigest Mode = "digest"
	ModeBasic  Mode = "basic"
)

// ParseMode validates a user-supplied scheme name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeDigest:
		return ModeDigest, nil
	case ModeBasic:
		return ModeBasic, nil
	default:
		return "", fmt.Errorf("unknown auth mode %q (expected digest or basic)", s)
	}
}

// Apply configures the resty client for the given scheme.
func Apply(r *resty.Client, mode Mode, username, password string) {
	switch mode {
	case ModeBasic:
		r.SetBasicAuth(username, password)
	default:
		r.SetDigestAuth(username, password)
	}
}
