package core

import (
	"sync/atomic"
	"time"
)

// AfterFunc schedules f to run once after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func())

func stdAfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Flash is the transient capture flag. Each Trigger schedules its own
// clear; later triggers never cancel earlier timers.
type Flash struct {
	on       atomic.Bool
	duration time.Duration
	after    AfterFunc
}

func NewFlash(d time.Duration, after AfterFunc) *Flash {
	if after == nil {
		after = stdAfterFunc
	}

	return &Flash{duration: d, after: after}
}

func (f *Flash) Trigger() {
	f.on.Store(true)
	f.after(f.duration, func() { f.on.Store(false) })
}

func (f *Flash) On() bool {
	return f.on.Load()
}

func (f *Flash) Duration() time.Duration {
	return f.duration
}
