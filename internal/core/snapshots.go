package core

import (
	"log/slog"
	"slices"

	"github.com/inovacc/earthinspires/internal/database"
	"github.com/inovacc/earthinspires/internal/encoding"
	"github.com/inovacc/earthinspires/internal/model"
)

// SnapshotsKey holds the JSON array of snapshots, newest first.
const SnapshotsKey = "earth_inspires_snapshots"

// SnapshotStore is the in-memory snapshot list. Every mutation rewrites the
// whole list under SnapshotsKey before returning.
type SnapshotStore struct {
	db     database.Store
	logger *slog.Logger
	items  []model.Snapshot
}

func NewSnapshotStore(db database.Store, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{
		db:     db,
		logger: logger,
		items:  []model.Snapshot{},
	}
}

// Load replaces the in-memory list with the persisted one. Unreadable or
// malformed data is logged and treated as an empty list.
func (s *SnapshotStore) Load() []model.Snapshot {
	s.items = []model.Snapshot{}

	raw, ok, err := s.db.GetItem(SnapshotsKey)
	if err != nil {
		s.logger.Error("failed to read saved snapshots", slog.String("key", SnapshotsKey), slog.Any("error", err))

		return s.All()
	}

	if !ok {
		return s.All()
	}

	list, err := DecodeSnapshots(raw)
	if err != nil {
		s.logger.Error("failed to parse saved snapshots", slog.String("key", SnapshotsKey), slog.Any("error", err))

		return s.All()
	}

	s.items = list

	return s.All()
}

// All returns a copy of the list, newest first.
func (s *SnapshotStore) All() []model.Snapshot {
	return slices.Clone(s.items)
}

func (s *SnapshotStore) Len() int {
	return len(s.items)
}

// Get returns the first snapshot with id.
func (s *SnapshotStore) Get(id int64) (model.Snapshot, bool) {
	i := slices.IndexFunc(s.items, func(sn model.Snapshot) bool { return sn.ID == id })
	if i < 0 {
		return model.Snapshot{}, false
	}

	return s.items[i], true
}

// Newest returns the head of the list.
func (s *SnapshotStore) Newest() (model.Snapshot, bool) {
	if len(s.items) == 0 {
		return model.Snapshot{}, false
	}

	return s.items[0], true
}

// Prepend puts snap at the head of the list and persists.
func (s *SnapshotStore) Prepend(snap model.Snapshot) error {
	s.items = slices.Insert(s.items, 0, snap)

	return s.persist()
}

// Delete removes every snapshot with id, keeping the order of the rest.
// It returns how many entries were removed; zero means nothing was written.
func (s *SnapshotStore) Delete(id int64) (int, error) {
	before := len(s.items)

	s.items = slices.DeleteFunc(s.items, func(sn model.Snapshot) bool { return sn.ID == id })

	removed := before - len(s.items)
	if removed == 0 {
		return 0, nil
	}

	return removed, s.persist()
}

func (s *SnapshotStore) persist() error {
	raw, err := EncodeSnapshots(s.items)
	if err != nil {
		return &PersistError{Key: SnapshotsKey, Err: err}
	}

	if err := s.db.SetItem(SnapshotsKey, raw); err != nil {
		return &PersistError{Key: SnapshotsKey, Err: err}
	}

	s.logger.Debug("snapshots saved", slog.Int("count", len(s.items)))

	return nil
}

// EncodeSnapshots serializes list as a JSON array. A nil list encodes as [].
func EncodeSnapshots(list []model.Snapshot) (string, error) {
	if list == nil {
		list = []model.Snapshot{}
	}

	data, err := encoding.ToJSON(list)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// DecodeSnapshots parses a persisted JSON array. JSON null decodes to an
// empty list.
func DecodeSnapshots(raw string) ([]model.Snapshot, error) {
	list, err := encoding.ParseJSON[[]model.Snapshot]([]byte(raw))
	if err != nil {
		return nil, err
	}

	if *list == nil {
		return []model.Snapshot{}, nil
	}

	return *list, nil
}
