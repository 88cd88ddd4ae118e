package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bosshoggett/concord-cli/pkg/models"
)

func TestParseRegion(t *testing.T) {
	testCases := []struct {
		input string

		expectedRegion models.MotionRegion
		expectErr      bool
	}{
		{
			input:          "0,0,1920x1080",
			expectedRegion: models.MotionRegion{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		{
			input:          "1920,540,640x480",
			expectedRegion: models.MotionRegion{X: 1920, Y: 540, Width: 640, Height: 480},
		},
		{input: "not-a-region", expectErr: true},
		{input: "0,0", expectErr: true},
		{input: "0,0,0x0", expectErr: true},
		{input: "0,0,-10x20", expectErr: true},
	}

	for _, test := range testCases {
		region, err := parseRegion(test.input)
		if test.expectErr {
			assert.Error(t, err, "input %q", test.input)
			continue
		}
		assert.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.expectedRegion, region)
	}
}

func TestParseRegionsStopsOnFirstBadSpec(t *testing.T) {
	_, err := parseRegions([]string{"0,0,100x100", "garbage"})
	assert.Error(t, err)
}
