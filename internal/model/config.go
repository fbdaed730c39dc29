package model

import (
	"github.com/inovacc/earthinspires/internal/params"
)

// Storage backends understood by database.Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StorageSection selects where snapshots and the theme are persisted.
type StorageSection struct {
	// Backend is one of "bolt", "sqlite" or "memory"
	Backend string `ini:"backend" json:"backend"`

	// Path overrides the database file location
	Path string `ini:"path" json:"path,omitempty"`
}

// CaptureSection configures mock snapshot generation.
type CaptureSection struct {
	// PlaceholderHost is the host of the placeholder image service
	PlaceholderHost string `ini:"placeholder_host" json:"placeholder_host"`
}

// LogSection configures the slog handler.
type LogSection struct {
	// Level is debug, info, warn or error
	Level string `ini:"level" json:"level"`

	// Format is text or json
	Format string `ini:"format" json:"format"`
}

// Config holds the application configuration
type Config struct {
	// DataDir is where the database, config.ini and tui.log live
	DataDir string `ini:"-" json:"data_dir"`

	Storage StorageSection `ini:"storage" json:"storage"`
	Capture CaptureSection `ini:"capture" json:"capture"`
	Log     LogSection     `ini:"log" json:"log"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Storage: StorageSection{
			Backend: BackendBolt,
		},
		Capture: CaptureSection{
			PlaceholderHost: params.DefaultPlaceholderHost,
		},
		Log: LogSection{
			Level:  "warn",
			Format: "text",
		},
	}
}
