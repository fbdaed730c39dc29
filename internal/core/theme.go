package core

import (
	"log/slog"

	"github.com/inovacc/earthinspires/internal/database"
	"github.com/inovacc/earthinspires/internal/model"
)

// ThemeKey holds the raw theme string.
const ThemeKey = "earth_inspires_theme"

// ThemeState tracks the active theme and persists it on every toggle.
type ThemeState struct {
	db       database.Store
	logger   *slog.Logger
	current  model.Theme
	onChange []func(model.Theme)
}

func NewThemeState(db database.Store, logger *slog.Logger) *ThemeState {
	return &ThemeState{
		db:      db,
		logger:  logger,
		current: model.DefaultTheme,
	}
}

// Load reads the persisted theme. Missing or unrecognized values give
// model.DefaultTheme.
func (t *ThemeState) Load() model.Theme {
	t.current = model.DefaultTheme

	raw, ok, err := t.db.GetItem(ThemeKey)
	if err != nil {
		t.logger.Error("failed to read saved theme", slog.String("key", ThemeKey), slog.Any("error", err))

		return t.current
	}

	if !ok {
		return t.current
	}

	theme, valid := model.ParseTheme(raw)
	if !valid {
		t.logger.Warn("ignoring unknown saved theme", slog.String("value", raw))
	}

	t.current = theme

	return t.current
}

func (t *ThemeState) Current() model.Theme {
	return t.current
}

// OnChange registers fn to run after every toggle.
func (t *ThemeState) OnChange(fn func(model.Theme)) {
	t.onChange = append(t.onChange, fn)
}

// Toggle flips the theme, persists it and notifies listeners. The new
// theme is returned even when the write fails.
func (t *ThemeState) Toggle() (model.Theme, error) {
	t.current = t.current.Toggle()

	var err error
	if werr := t.db.SetItem(ThemeKey, t.current.String()); werr != nil {
		err = &PersistError{Key: ThemeKey, Err: werr}
	}

	for _, fn := range t.onChange {
		fn(t.current)
	}

	return t.current, err
}
