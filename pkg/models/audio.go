package models

// AudioSettings mirrors GET /api/v1/audio/settings.
type AudioSettings struct {
	Enabled    int    `json:"enabled"` // 0 or 1
	Codec      string `json:"codec"`   // G711A, G711U or AAC
	Bitrate    int    `json:"bitrate"` // kbps
	SampleRate int    `json:"sample_rate"` // Hz
	Volume     int    `json:"volume"` // 0-100
}

// AudioUpdate is a partial-update body for POST /api/v1/audio/settings.
type AudioUpdate struct {
	Enabled    *int    `json:"enabled,omitempty"`
	Codec      *string `json:"codec,omitempty"`
	Bitrate    *int    `json:"bitrate,omitempty"`
	SampleRate *int    `json:"sample_rate,omitempty"`
	Volume     *int    `json:"volume,omitempty"`
}
