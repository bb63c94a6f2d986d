// Package logging provides structured logging configuration for fairy.
//
// This package wraps log/slog so the library and the CLI log the same
// way. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Warn("locale data file missing, using base data only", "file", "fairy_sv.yml")
//
// # Integration
//
// Components accept a *slog.Logger. When none is provided they fall back
// to logging.Nop(), which discards everything; the library is silent by
// default.
package logging
