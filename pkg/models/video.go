package models

// VideoStream mirrors GET /api/v1/video/stream for one channel
// (0 = main 4K stream, 1 = sub stream).
type VideoStream struct {
	Channel        int    `json:"channel"`
	Codec          string `json:"codec"` // H264 or H265
	Resolution     string `json:"resolution"`
	FPS            int    `json:"fps"`
	Bitrate        int    `json:"bitrate"` // kbps
	BitrateControl string `json:"bitrate_control"` // CBR or VBR
	Quality        string `json:"quality"`
	GOP            int    `json:"gop"`
}

// VideoStreamUpdate is a partial-update body. Channel is always sent so the
// camera knows which stream to patch; everything else is optional.
type VideoStreamUpdate struct {
	Channel        int     `json:"channel"`
	Codec          *string `json:"codec,omitempty"`
	Resolution     *string `json:"resolution,omitempty"`
	FPS            *int    `json:"fps,omitempty"`
	Bitrate        *int    `json:"bitrate,omitempty"`
	BitrateControl *string `json:"bitrate_control,omitempty"`
	Quality        *string `json:"quality,omitempty"`
	GOP            *int    `json:"gop,omitempty"`
}
