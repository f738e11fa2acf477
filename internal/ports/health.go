package ports

import "context"

// HealthChecker reports on one dependency the gateway needs to serve
// traffic. The upstream clients ("igdb", "rawg", "twitch") implement it by
// inspecting their circuit breakers.
type HealthChecker interface {
	// Name keys the checker's entry in readiness output.
	Name() string
	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
