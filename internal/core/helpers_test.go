package core

import (
	"errors"
	"sync"
	"time"

	"github.com/inovacc/earthinspires/internal/database"
)

var errWriteFailed = errors.New("quota exceeded")

// flakyStore wraps the memory store and can be told to fail reads or writes.
type flakyStore struct {
	*database.Memory

	failGet bool
	failSet bool
	sets    int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{Memory: database.NewMemory()}
}

func (s *flakyStore) GetItem(key string) (string, bool, error) {
	if s.failGet {
		return "", false, errors.New("storage disabled")
	}

	return s.Memory.GetItem(key)
}

func (s *flakyStore) SetItem(key, value string) error {
	if s.failSet {
		return errWriteFailed
	}

	s.sets++

	return s.Memory.SetItem(key, value)
}

// fixedGenerator hands out the same seed and a clock that advances by step
// on every call.
func fixedGenerator(seed int, start time.Time, step time.Duration) GeneratorFunc {
	var (
		mu sync.Mutex
		at = start
	)

	return func() CaptureInput {
		mu.Lock()
		defer mu.Unlock()

		in := CaptureInput{Seed: seed, At: at}
		at = at.Add(step)

		return in
	}
}

// manualTimer collects scheduled callbacks until fire is called.
type manualTimer struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualTimer) after(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = append(m.pending, f)
	m.delays = append(m.delays, d)
}

// fire runs the oldest pending callback.
func (m *manualTimer) fire() {
	m.mu.Lock()
	f := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	f()
}

func (m *manualTimer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.pending)
}
