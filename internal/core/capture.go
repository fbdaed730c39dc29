package core

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/inovacc/earthinspires/internal/model"
	"github.com/inovacc/earthinspires/internal/params"
)

// TimestampLayout renders capture times the way an en-US browser's
// toLocaleString does.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// CaptureInput is the random and time-dependent part of a capture.
type CaptureInput struct {
	// Seed selects the placeholder image, in [0, params.SeedRange)
	Seed int

	// At is the capture time
	At time.Time
}

// Generator produces the inputs of the next capture.
type Generator interface {
	Next() CaptureInput
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() CaptureInput

func (f GeneratorFunc) Next() CaptureInput { return f() }

// RandomGenerator draws a uniform seed and reads the wall clock.
type RandomGenerator struct {
	Now func() time.Time
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Now: time.Now}
}

func (g *RandomGenerator) Next() CaptureInput {
	return CaptureInput{
		Seed: rand.IntN(params.SeedRange),
		At:   g.Now(),
	}
}

// CaptureOptions carries user-supplied capture data.
type CaptureOptions struct {
	Note string
}

// ThumbnailURL returns the placeholder image URL for seed.
func ThumbnailURL(host string, seed int) string {
	return fmt.Sprintf("https://%s/seed/%d/%d/%d", host, seed, params.ThumbnailSize, params.ThumbnailSize)
}

// NewSnapshot builds the snapshot for in. The viewport is fixed.
func NewSnapshot(in CaptureInput, host string, opts CaptureOptions) model.Snapshot {
	return model.Snapshot{
		ID:               in.At.UnixMilli(),
		ThumbnailDataURL: ThumbnailURL(host, in.Seed),
		Timestamp:        in.At.Format(TimestampLayout),
		Zoom:             params.DefaultZoom,
		Lat:              params.DefaultLat,
		Lng:              params.DefaultLng,
		Note:             opts.Note,
	}
}
