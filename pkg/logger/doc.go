// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// handler and the toastlint command.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format. When
// context extractors are registered it wraps the handler in a ContextHandler,
// which appends attributes pulled from the record's context (for example a
// request id) every time a record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithService("toastlint"),
//	    logger.WithVerbose(verbose),
//	)
//	log.Warn("invalid toast options",
//	    logger.File(path),
//	    logger.Field("timeoutDismiss.duration"),
//	    logger.Error(err),
//	)
//
// Config carries the same settings for loading from TOAST_LOG_LEVEL,
// TOAST_LOG_FORMAT and TOAST_SERVICE with pkg/config.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
