// Package log builds [log/slog] handlers from CLI flags.
//
// It supports three output formats ([FormatText], [FormatJSON] and
// [FormatLogfmt]) and four severity levels ([LevelError], [LevelWarn],
// [LevelInfo] and [LevelDebug]). Text output is rendered by
// [charm.land/log/v2] for humans; JSON and logfmt use the slog handlers with
// source locations for machines.
//
// Typical usage registers flags on a root command and installs the default
// logger before any work is done:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
package log
