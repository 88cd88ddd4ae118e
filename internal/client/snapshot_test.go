package client

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal JPEG-ish payload; content is opaque to the client.
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xFF, 0xD9}

func snapshotHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/snapshot", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpegBytes)
	}
}

func TestSnapshotReturnsRawBytes(t *testing.T) {
	c := newTestClient(t, snapshotHandler(t))

	data, err := c.Snapshot(0)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, data)
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	c := newTestClient(t, snapshotHandler(t))

	path := filepath.Join(t.TempDir(), "snapshot.jpg")
	require.NoError(t, c.SaveSnapshot(0, path))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, saved)
}

func TestSaveSnapshotWriteFailurePropagates(t *testing.T) {
	c := newTestClient(t, snapshotHandler(t))

	// The target is a directory, so the file cannot be created.
	err := c.SaveSnapshot(0, t.TempDir())
	assert.Error(t, err)
}

// brokenWriter fails every write and records whether Close was called.
type brokenWriter struct {
	closed bool
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (w *brokenWriter) Close() error {
	w.closed = true
	return nil
}

func TestSaveBytesClosesHandleOnMidWriteFailure(t *testing.T) {
	w := &brokenWriter{}

	err := saveBytes(w, jpegBytes, "snapshot.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, w.closed, "handle must be closed even when the write fails")
}

// closeFailWriter accepts the write but fails on close.
type closeFailWriter struct{}

func (closeFailWriter) Write(p []byte) (int, error) { return len(p), nil }
func (closeFailWriter) Close() error                { return errors.New("close failed") }

func TestSaveBytesPropagatesCloseFailure(t *testing.T) {
	err := saveBytes(closeFailWriter{}, jpegBytes, "snapshot.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
}

func TestSnapshotEnvelopeError(t *testing.T) {
	c := newTestClient(t, envelopeHandler(4, ""))

	_, err := c.Snapshot(0)
	require.Error(t, err)

	var nferr *NotFoundError
	assert.True(t, errors.As(err, &nferr))
}

func TestSnapshotUnexpectedContentType(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("no camera here"))
	}))

	_, err := c.Snapshot(0)
	require.Error(t, err)

	var perr *ProtocolError
	assert.True(t, errors.As(err, &perr))
}
