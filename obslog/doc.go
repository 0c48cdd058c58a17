// Package obslog configures the structured logger pathlab's CLI and
// library callers share: a log/slog.Logger backed by stdout, stderr, or a
// rotating file via gopkg.in/natefinch/lumberjack.v2.
package obslog
