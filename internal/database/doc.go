// Package database provides the persistent key-value layer for earthinspires.
//
// The package defines the [Store] interface, a small local-storage style API
// (GetItem, SetItem, RemoveItem, Clear) with string keys and string values.
// Callers serialize their own values; the store never interprets them.
//
// # Backends
//
//   - BoltDB (default): one bucket, "local_storage", in earthinspires.bolt
//   - SQLite (modernc.org/sqlite, no cgo): one table, "local_storage", in earthinspires.db
//   - Memory: a map, used by tests and ephemeral sessions
//
// Use [Open] to pick a backend from configuration:
//
//	db, err := database.Open(cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	raw, ok, err := db.GetItem("earth_inspires_theme")
package database
