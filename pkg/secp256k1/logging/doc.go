// Package logging provides a minimal logging facade for the secp256k1
// wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can substitute
// their own implementation for testing, redaction policies, or integration
// with an existing logging system.
//
// Cryptographic material must never reach a log line. Use Redacted to record
// that a sensitive value was present without emitting it:
//
//	logger.Debug(ctx, "key pair generated", logging.Redacted("private_key"))
//	// Logs: private_key="[redacted]"
package logging
