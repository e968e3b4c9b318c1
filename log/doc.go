// Package log provides a small structured logging interface based on
// [log/slog].
//
// A [Logger] is configured once, at creation time, with functional options
// and never changes afterwards. Its zero value discards everything, which
// lets libraries accept a Logger without forcing callers to construct one.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("evaluated", slog.Float64("value", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with some options changed, and
// [Logger.With] derives one that adds attributes to every record.
//
// # Levels
//
// In addition to the four levels of [log/slog], [LevelTrace] sits below
// [LevelDebug] for step-by-step tracing. Messages below the configured level
// are discarded.
//
// # Output Formats
//
// [FormatText] (the default) writes one line per record, colorized unless
// [WithPretty] disables it. [FormatJSON] writes one JSON object per line.
//
// # Package-level Logging
//
// Functions such as [Info] and [ErrorContext] write through a default
// logger that [Config] reconfigures. Context-unaware functions use the
// context returned by [DefaultContextProvider].
package log
