package model

// Snapshot is one captured image together with the viewport it was taken at.
// Snapshots are never edited after capture.
type Snapshot struct {
	// ID is the capture time in milliseconds and the primary key
	ID int64 `json:"id"`

	// ThumbnailDataURL is a URL or data URI of the captured image
	ThumbnailDataURL string `json:"thumbnailDataURL"`

	// Timestamp is the human-readable capture time, display only
	Timestamp string `json:"timestamp"`

	// Zoom, Lat and Lng describe the viewport at capture time
	Zoom float64 `json:"zoom"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`

	// Note is an optional annotation
	Note string `json:"note,omitempty"`
}
