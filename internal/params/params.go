// Package params holds the fixed capture parameters. None of these are
// user-configurable.
package params

import "time"

const (
	// ThumbnailSize is the width and height requested from the placeholder service.
	ThumbnailSize = 800

	// SeedRange bounds the random placeholder seed to [0, SeedRange).
	SeedRange = 1000

	// DefaultZoom, DefaultLat and DefaultLng describe the viewport at capture time.
	DefaultZoom = 2
	DefaultLat  = 0
	DefaultLng  = 0

	// DefaultPlaceholderHost serves the mock snapshot images.
	DefaultPlaceholderHost = "picsum.photos"

	// CaptureSoundURL is the shutter sound played on capture.
	CaptureSoundURL = "https://assets.mixkit.co/active_storage/sfx/2571/2571-preview.mp3"

	// CaptureSoundVolume is the playback volume of the shutter sound.
	CaptureSoundVolume = 0.5

	// FlashDuration is how long the flash flag stays set after a capture.
	FlashDuration = 500 * time.Millisecond
)
