package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		input string

		expectedMode Mode
		expectErr    bool
	}{
		{input: "digest", expectedMode: ModeDigest},
		{input: "basic", expectedMode: ModeBasic},
		{input: "Digest", expectedMode: ModeDigest},
		{input: "BASIC", expectedMode: ModeBasic},
		{input: "ntlm", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, test := range testCases {
		mode, err := ParseMode(test.input)
		if test.expectErr {
			assert.Error(t, err, "input %q", test.input)
			continue
		}
		assert.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.expectedMode, mode)
	}
}
