// Package logging provides structured logging using uber/zap.
//
// Two modes: production (JSON output for machine parsing) and development
// (colored console output). The Logger embeds *zap.Logger, so all zap
// methods are available directly.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Rejected navigation", zap.Error(err))
package logging
