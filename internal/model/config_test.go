package model

import (
	"testing"

	"github.com/inovacc/earthinspires/internal/params"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Storage.Backend != BackendBolt {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendBolt)
	}

	if cfg.Storage.Path != "" {
		t.Errorf("Storage.Path = %q, want empty string", cfg.Storage.Path)
	}

	if cfg.Capture.PlaceholderHost != params.DefaultPlaceholderHost {
		t.Errorf("Capture.PlaceholderHost = %q, want %q", cfg.Capture.PlaceholderHost, params.DefaultPlaceholderHost)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}

	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
}
