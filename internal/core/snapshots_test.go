package core

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/inovacc/earthinspires/internal/database"
	"github.com/inovacc/earthinspires/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(list []model.Snapshot) []int64 {
	out := make([]int64, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func seedStore(t *testing.T, db database.Store, list []model.Snapshot) {
	t.Helper()

	raw, err := EncodeSnapshots(list)
	require.NoError(t, err)
	require.NoError(t, db.SetItem(SnapshotsKey, raw))
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	s := NewSnapshotStore(database.NewMemory(), discardLogger())

	got := s.Load()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshotStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{"},
		{name: "object instead of array", raw: `{"id":1}`},
		{name: "wrong element type", raw: `[1,2,3]`},
		{name: "wrong field type", raw: `[{"id":"one"}]`},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := database.NewMemory()
			require.NoError(t, db.SetItem(SnapshotsKey, tt.raw))

			var logs bytes.Buffer
			s := NewSnapshotStore(db, slog.New(slog.NewTextHandler(&logs, nil)))

			got := s.Load()
			assert.Empty(t, got)
			assert.Contains(t, logs.String(), "failed to parse saved snapshots")
		})
	}
}

func TestSnapshotStore_LoadNull(t *testing.T) {
	db := database.NewMemory()
	require.NoError(t, db.SetItem(SnapshotsKey, "null"))

	s := NewSnapshotStore(db, discardLogger())

	got := s.Load()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshotStore_LoadReadFailure(t *testing.T) {
	db := newFlakyStore()
	db.failGet = true

	s := NewSnapshotStore(db, discardLogger())
	assert.Empty(t, s.Load())
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	db := database.NewMemory()
	list := []model.Snapshot{
		{ID: 3, ThumbnailDataURL: "https://picsum.photos/seed/3/800/800", Timestamp: "t3", Zoom: 2, Note: "third"},
		{ID: 2, ThumbnailDataURL: "data:image/png;base64,AAAA", Timestamp: "t2", Zoom: 4.5, Lat: 51.5, Lng: -0.12},
		{ID: 1, ThumbnailDataURL: "https://picsum.photos/seed/1/800/800", Timestamp: "t1", Zoom: 2},
	}

	seedStore(t, db, list)

	s := NewSnapshotStore(db, discardLogger())
	assert.Equal(t, list, s.Load())
}

func TestSnapshotStore_PrependPersistsWholeList(t *testing.T) {
	db := database.NewMemory()
	s := NewSnapshotStore(db, discardLogger())
	s.Load()

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, s.Prepend(model.Snapshot{ID: id}))
		assert.Equal(t, int(id), s.Len())

		head, ok := s.Newest()
		require.True(t, ok)
		assert.Equal(t, id, head.ID)
	}

	raw, ok, err := db.GetItem(SnapshotsKey)
	require.NoError(t, err)
	require.True(t, ok)

	persisted, err := DecodeSnapshots(raw)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids(persisted))
}

func TestSnapshotStore_Delete(t *testing.T) {
	db := database.NewMemory()
	seedStore(t, db, []model.Snapshot{{ID: 1}, {ID: 2}, {ID: 3}})

	s := NewSnapshotStore(db, discardLogger())
	s.Load()

	removed, err := s.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []int64{1, 3}, ids(s.All()))

	reloaded := NewSnapshotStore(db, discardLogger())
	assert.Equal(t, []int64{1, 3}, ids(reloaded.Load()))
}

func TestSnapshotStore_DeleteRemovesAllMatches(t *testing.T) {
	db := database.NewMemory()
	seedStore(t, db, []model.Snapshot{{ID: 5}, {ID: 7}, {ID: 5}, {ID: 9}})

	s := NewSnapshotStore(db, discardLogger())
	s.Load()

	removed, err := s.Delete(5)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int64{7, 9}, ids(s.All()))
}

func TestSnapshotStore_DeleteMissingIsNoop(t *testing.T) {
	db := newFlakyStore()
	seedStore(t, db, []model.Snapshot{{ID: 1}, {ID: 2}})
	writes := db.sets

	s := NewSnapshotStore(db, discardLogger())
	s.Load()

	removed, err := s.Delete(42)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, []int64{1, 2}, ids(s.All()))
	assert.Equal(t, writes, db.sets, "no-op delete should not write")
}

func TestSnapshotStore_PrependWriteFailure(t *testing.T) {
	db := newFlakyStore()
	s := NewSnapshotStore(db, discardLogger())
	s.Load()

	db.failSet = true

	err := s.Prepend(model.Snapshot{ID: 1})
	require.Error(t, err)

	var pe *PersistError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, SnapshotsKey, pe.Key)
	assert.ErrorIs(t, err, errWriteFailed)

	// The in-memory list keeps the capture
	assert.Equal(t, 1, s.Len())
}

func TestSnapshotStore_AllReturnsCopy(t *testing.T) {
	s := NewSnapshotStore(database.NewMemory(), discardLogger())
	require.NoError(t, s.Prepend(model.Snapshot{ID: 1, Note: "original"}))

	list := s.All()
	list[0].Note = "changed"

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "original", got.Note)
}

func TestEncodeSnapshots_NilIsEmptyArray(t *testing.T) {
	raw, err := EncodeSnapshots(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}
