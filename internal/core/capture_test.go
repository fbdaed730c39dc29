package core

import (
	"testing"
	"time"

	"github.com/inovacc/earthinspires/internal/model"
	"github.com/inovacc/earthinspires/internal/params"
	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	at := time.Date(2024, time.June, 10, 14, 5, 9, 0, time.UTC)

	got := NewSnapshot(CaptureInput{Seed: 42, At: at}, "picsum.photos", CaptureOptions{})

	want := model.Snapshot{
		ID:               at.UnixMilli(),
		ThumbnailDataURL: "https://picsum.photos/seed/42/800/800",
		Timestamp:        "6/10/2024, 2:05:09 PM",
		Zoom:             2,
		Lat:              0,
		Lng:              0,
	}

	assert.Equal(t, want, got)
}

func TestNewSnapshot_WithNote(t *testing.T) {
	got := NewSnapshot(CaptureInput{Seed: 1, At: time.UnixMilli(5)}, "img.example", CaptureOptions{Note: "aurora"})

	assert.Equal(t, "aurora", got.Note)
	assert.Equal(t, "https://img.example/seed/1/800/800", got.ThumbnailDataURL)
}

func TestThumbnailURL(t *testing.T) {
	tests := []struct {
		seed int
		want string
	}{
		{seed: 0, want: "https://picsum.photos/seed/0/800/800"},
		{seed: 999, want: "https://picsum.photos/seed/999/800/800"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ThumbnailURL("picsum.photos", tt.seed))
	}
}

func TestRandomGenerator_SeedRange(t *testing.T) {
	at := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	g := &RandomGenerator{Now: func() time.Time { return at }}

	for range 2000 {
		in := g.Next()
		if in.Seed < 0 || in.Seed >= params.SeedRange {
			t.Fatalf("Next().Seed = %d, want [0, %d)", in.Seed, params.SeedRange)
		}

		if !in.At.Equal(at) {
			t.Fatalf("Next().At = %v, want %v", in.At, at)
		}
	}
}
