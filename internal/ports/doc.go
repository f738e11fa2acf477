// Package ports holds the interfaces the gateway's layers meet at.
//
// CatalogService is what the HTTP handlers call. IGDBClient, RAWGClient and
// TokenIssuer are what the service calls, implemented by the ACL adapters
// over the shared instrumented HTTP client. HealthChecker and HealthRegistry
// back the readiness probe.
package ports
