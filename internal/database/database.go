package database

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/earthinspires/internal/model"
)

// Store is a string-valued key-value store that survives restarts. It plays
// the role of browser local storage: whole values are overwritten on every
// write, last writer wins.
type Store interface {
	Ping() error

	// GetItem returns the value stored under key. ok is false when the key
	// has never been written or was removed.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error

	// Clear removes every key.
	Clear() error
	Close() error
}

const (
	boltFileName   = "earthinspires.bolt"
	sqliteFileName = "earthinspires.db"
)

// Open returns the backend selected by cfg.Storage.
func Open(cfg model.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "", model.BackendBolt:
		return NewBolt(storagePath(cfg, boltFileName))
	case model.BackendSQLite:
		return NewSQLite(storagePath(cfg, sqliteFileName))
	case model.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func storagePath(cfg model.Config, name string) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}

	return filepath.Join(cfg.DataDir, name)
}
