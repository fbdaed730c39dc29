package database

import (
	"fmt"
	"time"

	"github.com/inovacc/earthinspires/internal/encoding"
	"go.etcd.io/bbolt"
)

const boltBucketItems = "local_storage" // key: storage key -> raw string value

type Bolt struct {
	db *bbolt.DB
}

// NewBolt opens (or creates) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketItems))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) GetItem(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)

	err := b.db.View(func(tx *bbolt.Tx) error {
		items := tx.Bucket([]byte(boltBucketItems))

		v := items.Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid inside the transaction
		value = string(v)
		ok = true

		return nil
	})

	return value, ok, err
}

func (b *Bolt) SetItem(key, value string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		items := tx.Bucket([]byte(boltBucketItems))

		return items.Put([]byte(key), []byte(value))
	})
}

func (b *Bolt) RemoveItem(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		items := tx.Bucket([]byte(boltBucketItems))

		return items.Delete([]byte(key))
	})
}

func (b *Bolt) Clear() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(boltBucketItems)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(boltBucketItems))

		return err
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
