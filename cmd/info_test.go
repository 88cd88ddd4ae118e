package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	testCases := []struct {
		seconds  int64
		expected string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{3661, "1h 1m"},
		{86400, "1d 0h 0m"},
		{90061, "1d 1h 1m"},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, formatUptime(test.seconds), "seconds=%d", test.seconds)
	}
}
