package core

import (
	"bytes"
	"context"
	"testing"

	"github.com/inovacc/earthinspires/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureCue(t *testing.T) {
	cue := CaptureCue()

	assert.Equal(t, params.CaptureSoundURL, cue.URL)
	assert.InDelta(t, 0.5, cue.Volume, 1e-9)
}

func TestBellPlayer(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, BellPlayer{W: &buf}.Play(context.Background(), CaptureCue()))
	assert.Equal(t, "\a", buf.String())
}

func TestBellPlayer_CancelledContext(t *testing.T) {
	var buf bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, BellPlayer{W: &buf}.Play(ctx, CaptureCue()))
	assert.Empty(t, buf.String())
}
