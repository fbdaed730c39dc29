package core

import (
	"fmt"
	"io"

	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/inovacc/earthinspires/internal/model"
	"gopkg.in/ini.v1"
)

// ConfigFileName is looked up in the data directory.
const ConfigFileName = "config.ini"

// LoadConfig returns DefaultConfig overlaid with the keys present in the INI
// file at path. A missing file is not an error.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path == "" || !encoding.FileExists(path) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := file.Section("storage").MapTo(&cfg.Storage); err != nil {
		return cfg, fmt.Errorf("invalid [storage] section: %w", err)
	}

	if err := file.Section("capture").MapTo(&cfg.Capture); err != nil {
		return cfg, fmt.Errorf("invalid [capture] section: %w", err)
	}

	if err := file.Section("log").MapTo(&cfg.Log); err != nil {
		return cfg, fmt.Errorf("invalid [log] section: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the file-backed parts of cfg to path.
func SaveConfig(path string, cfg model.Config) error {
	file := ini.Empty()

	if err := file.Section("storage").ReflectFrom(&cfg.Storage); err != nil {
		return err
	}

	if err := file.Section("capture").ReflectFrom(&cfg.Capture); err != nil {
		return err
	}

	if err := file.Section("log").ReflectFrom(&cfg.Log); err != nil {
		return err
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// ShowConfig prints the effective configuration.
func ShowConfig(w io.Writer, cfg model.Config) {
	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Data Directory:   %s\n", cfg.DataDir)
	_, _ = fmt.Fprintf(w, "Storage Backend:  %s\n", cfg.Storage.Backend)

	if cfg.Storage.Path != "" {
		_, _ = fmt.Fprintf(w, "Storage Path:     %s\n", cfg.Storage.Path)
	}

	_, _ = fmt.Fprintf(w, "Placeholder Host: %s\n", cfg.Capture.PlaceholderHost)
	_, _ = fmt.Fprintf(w, "Log Level:        %s\n", cfg.Log.Level)
	_, _ = fmt.Fprintf(w, "Log Format:       %s\n", cfg.Log.Format)
}
