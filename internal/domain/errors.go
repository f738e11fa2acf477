package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation         = errors.New("validation error")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrProviderRejected   = errors.New("identity provider rejected request")
	ErrNoResponse         = errors.New("no response from upstream")
	ErrBadStatus          = errors.New("upstream returned error status")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingCredentialError reports a required credential that is absent from
// configuration. Key is the configuration name of the first missing value
// (e.g. "rawg.api_key").
type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCredentials.Error(), e.Key)
}

func (e *MissingCredentialError) Unwrap() error {
	return ErrMissingCredentials
}

// ProviderRejectedError reports a failed token exchange. Status and Body are
// populated when the provider answered; Err carries the transport failure
// otherwise.
type ProviderRejectedError struct {
	Status int
	Body   string
	Err    error
}

func (e *ProviderRejectedError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d: %s", ErrProviderRejected.Error(), e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrProviderRejected.Error(), e.Err)
	default:
		return ErrProviderRejected.Error()
	}
}

func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}

func (e *ProviderRejectedError) Unwrap() error {
	return e.Err
}

// UpstreamErrorKind classifies how an outbound catalog call failed.
type UpstreamErrorKind int

const (
	// NoResponse means the call produced no response at all (network
	// failure, timeout, open circuit breaker).
	NoResponse UpstreamErrorKind = iota + 1
	// BadStatus means the upstream answered with a non-2xx status.
	BadStatus
)

func (k UpstreamErrorKind) String() string {
	switch k {
	case NoResponse:
		return "no_response"
	case BadStatus:
		return "bad_status"
	default:
		return "unknown"
	}
}

// UpstreamError is the uniform error produced by the catalog clients before a
// failure leaves the client boundary.
type UpstreamError struct {
	Service string
	Kind    UpstreamErrorKind
	Status  int
	Body    string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Kind == BadStatus {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.Status, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: no response: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: no response", e.Service)
}

// Is matches the sentinel for the error's kind so callers can use
// errors.Is(err, ErrNoResponse) or errors.Is(err, ErrBadStatus).
func (e *UpstreamError) Is(target error) bool {
	switch e.Kind {
	case NoResponse:
		return target == ErrNoResponse
	case BadStatus:
		return target == ErrBadStatus
	default:
		return false
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
