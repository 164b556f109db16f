// Package logging provides structured logging for the Gray Logic DMX tools.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the entire application.
//
// # Features
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Size-based log file rotation (lumberjack)
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in the YAML config file:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr, file
//	  file:
//	    path: "./logs/dmxaddr.log"
//	    max_size: 10     # megabytes before rotation
//	    max_backups: 3
//	    max_age: 28      # days
//	    compress: true
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	defer logger.Close()
//	logger.Info("address parsed", "address", addr.String())
//	logger.Warn("invalid address", "input", input, "error", err)
package logging
