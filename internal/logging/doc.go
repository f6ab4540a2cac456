// Package logging provides structured logging for pokebox.
//
// The TUI owns the terminal, so diagnostics go to a JSON log file instead of
// stderr. The package wraps log/slog and adds size-based rotation.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(logDir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("box loaded", "box", 3, "entries", 30)
//
// Child loggers carry persistent attributes:
//
//	loaderLog := logger.WithComponent("loader").WithBox(3)
//	loaderLog.Error("detail fetch failed", "error", err)
//
// Output:
//
//	{"time":"...","level":"ERROR","msg":"detail fetch failed","component":"loader","box":3,"error":"..."}
//
// # Rotation
//
// The log file is rotated when it would exceed MaxSizeMB. Backups are named
// pokebox.log.1 (newest) through pokebox.log.N and are gzip compressed when
// Compress is set.
//
// # Testing
//
// Use [NopLogger] to discard output.
package logging
