package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/inovacc/earthinspires/internal/database"
	"github.com/inovacc/earthinspires/internal/model"
	"github.com/inovacc/earthinspires/internal/params"
)

// App owns all session state: the snapshot list, the theme, the flash flag
// and the capture collaborators. Every transition writes through to the
// store before it returns.
type App struct {
	logger    *slog.Logger
	snapshots *SnapshotStore
	theme     *ThemeState
	flash     *Flash
	gen       Generator
	player    Player
	host      string
	after     AfterFunc
}

// Option configures an App.
type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

func WithGenerator(gen Generator) Option {
	return func(a *App) { a.gen = gen }
}

func WithPlayer(p Player) Option {
	return func(a *App) { a.player = p }
}

func WithPlaceholderHost(host string) Option {
	return func(a *App) {
		if host != "" {
			a.host = host
		}
	}
}

// WithAfterFunc replaces the timer used to clear the flash flag.
func WithAfterFunc(after AfterFunc) Option {
	return func(a *App) { a.after = after }
}

// NewApp builds the application state and performs the startup load.
func NewApp(db database.Store, opts ...Option) *App {
	a := &App{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		gen:    NewRandomGenerator(),
		player: NopPlayer{},
		host:   params.DefaultPlaceholderHost,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.flash = NewFlash(params.FlashDuration, a.after)
	a.snapshots = NewSnapshotStore(db, a.logger)
	a.theme = NewThemeState(db, a.logger)

	a.snapshots.Load()
	a.theme.Load()

	a.logger.Debug("state loaded",
		slog.Int("snapshots", a.snapshots.Len()),
		slog.String("theme", a.theme.Current().String()))

	return a
}

// Capture mints a snapshot, flashes, fires the shutter sound and persists
// the new list. The returned snapshot is in the list even if the write
// fails; in that case a *PersistError is returned as well.
func (a *App) Capture(ctx context.Context, opts CaptureOptions) (model.Snapshot, error) {
	snap := NewSnapshot(a.gen.Next(), a.host, opts)

	// Two captures inside the same millisecond would share an id
	for {
		if _, taken := a.snapshots.Get(snap.ID); !taken {
			break
		}

		snap.ID++
	}

	a.flash.Trigger()
	a.playCue(ctx)

	if err := a.snapshots.Prepend(snap); err != nil {
		a.logger.Error("capture not saved", slog.Int64("id", snap.ID), slog.Any("error", err))

		return snap, err
	}

	a.logger.Info("snapshot captured", slog.Int64("id", snap.ID), slog.String("url", snap.ThumbnailDataURL))

	return snap, nil
}

func (a *App) playCue(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	cue := CaptureCue()

	go func() {
		if err := a.player.Play(ctx, cue); err != nil {
			a.logger.Debug("audio play blocked", slog.String("url", cue.URL), slog.Any("error", err))
		}
	}()
}

// Delete removes the snapshot with id. Unknown ids are ignored.
func (a *App) Delete(id int64) error {
	removed, err := a.snapshots.Delete(id)
	if err != nil {
		a.logger.Error("delete not saved", slog.Int64("id", id), slog.Any("error", err))

		return err
	}

	if removed > 0 {
		a.logger.Info("snapshot deleted", slog.Int64("id", id))
	}

	return nil
}

// Snapshot returns the snapshot with id.
func (a *App) Snapshot(id int64) (model.Snapshot, error) {
	snap, ok := a.snapshots.Get(id)
	if !ok {
		return model.Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
	}

	return snap, nil
}

// Snapshots returns the list, newest first.
func (a *App) Snapshots() []model.Snapshot {
	return a.snapshots.All()
}

func (a *App) Count() int {
	return a.snapshots.Len()
}

func (a *App) Theme() model.Theme {
	return a.theme.Current()
}

// ToggleTheme flips and persists the theme.
func (a *App) ToggleTheme() (model.Theme, error) {
	theme, err := a.theme.Toggle()
	if err != nil {
		a.logger.Error("theme not saved", slog.String("theme", theme.String()), slog.Any("error", err))

		return theme, err
	}

	a.logger.Info("theme toggled", slog.String("theme", theme.String()))

	return theme, nil
}

// OnThemeChange registers the display-side reaction to a toggle.
func (a *App) OnThemeChange(fn func(model.Theme)) {
	a.theme.OnChange(fn)
}

// IsFlashing reports whether the capture flash is showing.
func (a *App) IsFlashing() bool {
	return a.flash.On()
}

func (a *App) FlashDuration() time.Duration {
	return a.flash.Duration()
}
