package obslog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is nil until Init or InitWithConfig is
// called; callers that only need a scoped logger should prefer
// InitWithConfig's return value over this global.
var Log *slog.Logger

// Config controls where and how log records are written.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output string // stdout, stderr, file

	FilePath   string
	MaxSize    int // MB, passed to lumberjack
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Init sets up the global logger at the given level, writing JSON to
// stdout. Use InitWithConfig for file rotation or a text format.
func Init(level string) *slog.Logger {
	return InitWithConfig(Config{Level: level, Format: "json", Output: "stdout"})
}

// InitWithConfig sets up the global logger per cfg and returns it.
func InitWithConfig(cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "stderr":
		writer = os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/pathlab.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			writer = os.Stdout
		} else {
			writer = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	Log = slog.New(handler)
	return Log
}

// WithRun returns a logger scoped to one benchmark invocation: the map and
// scenario file names and the chosen PQ variant.
func WithRun(mapPath, scenPath, pqName string) *slog.Logger {
	return Log.With("map", mapPath, "scen", scenPath, "pq", pqName)
}

// WithCase returns a logger scoped to a single scenario case index.
func WithCase(index int) *slog.Logger {
	return Log.With("case", index)
}
