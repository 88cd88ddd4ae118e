package client

import "fmt"

// Vendor result codes carried in the response envelope.
const (
	codeOK            = 0
	codeInvalidParams = 1
	codeAuthFailure   = 2
	codePermission    = 3
	codeNotFound      = 4
	codeInternalError = 5
	codeDeviceBusy    = 6
)

// ConnectionError reports a transport-level failure: connection refused,
// DNS failure, or the configured timeout elapsing. The camera never saw or
// never answered the request.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("camera %s unreachable: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// AuthError means the camera rejected the credentials (result code 2 or an
// HTTP 401 after the digest exchange).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return "authentication failed: " + e.Message
	}
	return "authentication failed"
}

// PermissionError means the authenticated user may not perform the
// operation (result code 3).
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	if e.Message != "" {
		return "permission denied: " + e.Message
	}
	return "permission denied"
}

// NotFoundError means the camera does not know the requested resource
// (result code 4).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return "resource not found: " + e.Message
	}
	return "resource not found"
}

// DeviceBusyError means the camera refused the request because another
// operation is in progress (result code 6). Callers decide whether to retry.
type DeviceBusyError struct {
	Message string
}

func (e *DeviceBusyError) Error() string {
	if e.Message != "" {
		return "device busy: " + e.Message
	}
	return "device busy"
}

// ProtocolError covers malformed responses and any non-zero result code the
// taxonomy does not name. Code is 0 when the response could not be parsed
// at all.
type ProtocolError struct {
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("camera returned result code %d: %s", e.Code, e.Message)
	}
	return "protocol error: " + e.Message
}

// apiError maps a vendor result code to the typed error for that class.
// Returns nil for code 0.
func apiError(code int, message string) error {
	switch code {
	case codeOK:
		return nil
	case codeAuthFailure:
		return &AuthError{Message: message}
	case codePermission:
		return &PermissionError{Message: message}
	case codeNotFound:
		return &NotFoundError{Message: message}
	case codeDeviceBusy:
		return &DeviceBusyError{Message: message}
	default:
		// codes 1 (invalid parameters) and 5 (internal error) included
		return &ProtocolError{Code: code, Message: message}
	}
}
