package core

import (
	"context"
	"io"

	"github.com/inovacc/earthinspires/internal/params"
)

// Cue describes a sound to play.
type Cue struct {
	URL    string
	Volume float64
}

// CaptureCue is the shutter sound played on every capture.
func CaptureCue() Cue {
	return Cue{URL: params.CaptureSoundURL, Volume: params.CaptureSoundVolume}
}

// Player plays a cue. Callers never wait on it and ignore its errors
// beyond logging them.
type Player interface {
	Play(ctx context.Context, cue Cue) error
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(ctx context.Context, cue Cue) error

func (f PlayerFunc) Play(ctx context.Context, cue Cue) error { return f(ctx, cue) }

// BellPlayer rings the terminal bell instead of decoding audio.
type BellPlayer struct {
	W io.Writer
}

func (p BellPlayer) Play(ctx context.Context, _ Cue) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(p.W, "\a")

	return err
}

// NopPlayer stays silent.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, Cue) error { return nil }
