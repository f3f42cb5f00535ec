// File: internal/common/context_keys.go
package common

const (
	// LoggerKey is the context key for the request-scoped logger.
	LoggerKey = "logger"
	// RequestIDKey is the context key for the request ID.
	RequestIDKey = "requestID"
	// RequestIDHeader carries the request ID in and out of the service.
	RequestIDHeader = "X-Request-ID"
)
