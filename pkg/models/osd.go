package models

// OSDSettings mirrors GET /api/v1/osd/settings. Positions are one of
// top_left, top_right, bottom_left, bottom_right.
type OSDSettings struct {
	TimeEnabled        int    `json:"time_enabled"` // 0 or 1
	TimePosition       string `json:"time_position"`
	TimeFormat         string `json:"time_format"`
	CameraName         string `json:"camera_name"`
	CameraNameEnabled  int    `json:"camera_name_enabled"` // 0 or 1
	CameraNamePosition string `json:"camera_name_position"`
}

// OSDUpdate is a partial-update body for POST /api/v1/osd/settings.
type OSDUpdate struct {
	TimeEnabled        *int    `json:"time_enabled,omitempty"`
	TimePosition       *string `json:"time_position,omitempty"`
	TimeFormat         *string `json:"time_format,omitempty"`
	CameraName         *string `json:"camera_name,omitempty"`
	CameraNameEnabled  *int    `json:"camera_name_enabled,omitempty"`
	CameraNamePosition *string `json:"camera_name_position,omitempty"`
}
