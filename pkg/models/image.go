package models

// ImageSettings mirrors GET /api/v1/image/settings. All ranges are 0-100
// unless noted.
type ImageSettings struct {
	Brightness   int    `json:"brightness"`
	Contrast     int    `json:"contrast"`
	Saturation   int    `json:"saturation"`
	Hue          int    `json:"hue"`
	Sharpness    int    `json:"sharpness"`
	Flip         int    `json:"flip"`   // 0 or 1
	Mirror       int    `json:"mirror"` // 0 or 1
	WDR          int    `json:"wdr"`    // 0 or 1
	ExposureMode string `json:"exposure_mode"` // auto or manual
}

// ImageUpdate is a partial-update body for POST /api/v1/image/settings.
type ImageUpdate struct {
	Brightness   *int    `json:"brightness,omitempty"`
	Contrast     *int    `json:"contrast,omitempty"`
	Saturation   *int    `json:"saturation,omitempty"`
	Hue          *int    `json:"hue,omitempty"`
	Sharpness    *int    `json:"sharpness,omitempty"`
	Flip         *int    `json:"flip,omitempty"`
	Mirror       *int    `json:"mirror,omitempty"`
	WDR          *int    `json:"wdr,omitempty"`
	ExposureMode *string `json:"exposure_mode,omitempty"`
}
