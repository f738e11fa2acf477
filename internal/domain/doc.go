// Package domain contains shared domain types used across entity sub-packages.
// Catalog record shapes live in domain/game. This root package holds sentinel
// errors, the typed errors of the gateway's error taxonomy, and the access
// token value minted by the identity provider.
package domain
