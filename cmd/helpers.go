package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/inovacc/earthinspires/internal/application"
	"github.com/inovacc/earthinspires/internal/core"
	"github.com/inovacc/earthinspires/internal/database"
	"github.com/inovacc/earthinspires/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// session bundles everything a command needs. Close releases the store and
// the log file, if any.
type session struct {
	cfg    model.Config
	logger *slog.Logger
	db     database.Store
	app    *core.App

	closers []io.Closer
}

func (s *session) Close() error {
	var firstErr error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// loadConfig resolves the data directory, reads config.ini and applies
// command-line overrides.
func loadConfig(flags *pflag.FlagSet) (model.Config, error) {
	dataDir, _ := flags.GetString("data-dir")

	dataDir, err := application.EnsureApplicationDirectory(dataDir)
	if err != nil {
		return model.Config{}, err
	}

	path, _ := flags.GetString("config")
	if path == "" {
		path = filepath.Join(dataDir, core.ConfigFileName)
	}

	cfg, err := core.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	cfg.DataDir = dataDir
	applyFlagOverrides(flags, &cfg)

	return cfg, nil
}

func applyFlagOverrides(flags *pflag.FlagSet, cfg *model.Config) {
	if flags.Changed("backend") {
		cfg.Storage.Backend, _ = flags.GetString("backend")
	}

	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", s)
	}

	return level, nil
}

// newLogger builds the process logger. Every record carries the session id.
func newLogger(w io.Writer, cfg model.LogSection) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var logger *slog.Logger

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger = slog.New(slog.NewJSONHandler(w, opts))
	case "", "text":
		logger = slog.New(slog.NewTextHandler(w, opts))
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return logger.With(slog.String("session", uuid.NewString())), nil
}

type sessionOptions struct {
	// logFile sends logs to <data-dir>/<logFile> instead of stderr
	logFile string
	player  core.Player
}

func openSession(cmd *cobra.Command, opts sessionOptions) (*session, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	var logOut io.Writer = cmd.ErrOrStderr()

	if opts.logFile != "" {
		f, err := os.OpenFile(filepath.Join(cfg.DataDir, opts.logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		s.closers = append(s.closers, f)
		logOut = f
	}

	s.logger, err = newLogger(logOut, cfg.Log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.db, err = database.Open(cfg)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.closers = append(s.closers, s.db)

	if err := s.db.Ping(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("storage not reachable: %w", err)
	}

	player := opts.player
	if player == nil {
		player = defaultPlayer(cmd.ErrOrStderr())
	}

	s.app = core.NewApp(s.db,
		core.WithLogger(s.logger),
		core.WithPlaceholderHost(cfg.Capture.PlaceholderHost),
		core.WithPlayer(player),
	)

	s.logger.Debug("session opened",
		slog.String("data_dir", cfg.DataDir),
		slog.String("backend", cfg.Storage.Backend))

	return s, nil
}

// defaultPlayer rings the bell only when w is an interactive terminal.
func defaultPlayer(w io.Writer) core.Player {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return core.BellPlayer{W: f}
	}

	return core.NopPlayer{}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snapshot id %q: must be an integer", arg)
	}

	return id, nil
}
