// Package model defines the data structures used throughout earthinspires.
//
// # Snapshot
//
// The [Snapshot] struct is one mock capture of the Earth view:
//
//	type Snapshot struct {
//	    ID               int64   // Capture time in milliseconds, primary key
//	    ThumbnailDataURL string  // Placeholder image URL
//	    Timestamp        string  // Display-only capture time
//	    Zoom, Lat, Lng   float64 // Viewport at capture time
//	    Note             string  // Optional annotation
//	}
//
// A list of snapshots is persisted as a JSON array using exactly these field
// names (id, thumbnailDataURL, timestamp, zoom, lat, lng, note).
//
// # Theme
//
// [Theme] is either [ThemeDark] or [ThemeLight]. Unknown persisted values
// fall back to [DefaultTheme].
//
// # Config
//
// The [Config] struct holds application configuration loaded from
// config.ini and command-line flags.
package model
