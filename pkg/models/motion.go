package models

// MotionRegion is one rectangular detection zone in sensor coordinates.
type MotionRegion struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MotionDetection mirrors GET /api/v1/motion/detection.
type MotionDetection struct {
	Enabled     int            `json:"enabled"` // 0 or 1
	Sensitivity int            `json:"sensitivity"` // 0-100
	Regions     []MotionRegion `json:"regions"`
}

// MotionUpdate is a partial-update body. When Regions is non-nil the camera
// replaces the whole region set, it does not merge rectangles.
type MotionUpdate struct {
	Enabled     *int           `json:"enabled,omitempty"`
	Sensitivity *int           `json:"sensitivity,omitempty"`
	Regions     []MotionRegion `json:"regions,omitempty"`
}
