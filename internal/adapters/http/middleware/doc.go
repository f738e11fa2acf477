// Package middleware holds the inbound middleware installed on the gateway
// router. cmd/server registers them outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → route
//
// Route-aware middleware (OpenTelemetry, Logging) reads the chi route pattern
// after the inner handler returns, so it must be installed with Router.Use.
package middleware
