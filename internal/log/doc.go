// Package log provides secure logging functionality with automatic
// sanitization of sensitive information, built on top of the standard
// slog package.
//
// Audit runs touch credentials the engine itself never needs: scraping
// provider keys, AI model API keys, and whatever authentication a host's
// analyzers carry in their configuration. Phases log analyzer failures at
// the boundary, and a failing analyzer's error string or attributes can
// drag those secrets along. The SecureHandler masks them before they reach
// the underlying handler:
//   - Credential-looking attribute keys (api_key, authorization, token, ...)
//   - Secret-looking values detected by pattern matching (bearer tokens,
//     JWTs, provider key formats)
//
// Even in verbose mode, sensitive values are masked to prevent accidental
// exposure of secrets in logs that may be shared or stored.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//	logger.Warn("analyzer failed",
//	    "provider", "scrapfly",
//	    "api_key", "sk-abc123",  // masked in output
//	)
//	slog.SetDefault(logger)
package log
