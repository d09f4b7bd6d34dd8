// Package logging provides structured logging for studyplan.
//
// It wraps Go's log/slog JSON handler and writes to a size-rotated file
// managed by lumberjack. The TUI owns the terminal, so file output is the
// normal mode; stderr output is only used by the non-interactive commands
// when no log directory is configured.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("plan received", "days", 7, "topics", 21)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	reqLogger := logger.WithEndpoint("/api/upload").With("files", 2)
//	reqLogger.Debug("request sent")
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
