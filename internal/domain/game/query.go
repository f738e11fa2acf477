package game

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jsamuelsen11/continuum/internal/domain"
)

// Query defaults.
const (
	DefaultFields = "name,rating,summary,cover.url,release_dates.human"
	DefaultLimit  = 10
)

// fieldListPattern accepts comma-separated field paths such as
// "name,cover.url" or "*". Anything else (notably ';') could open a new
// query clause.
var fieldListPattern = regexp.MustCompile(`^\s*[A-Za-z0-9_.*]+(\s*,\s*[A-Za-z0-9_.*]+)*\s*$`)

// Query is the provider-neutral game search request used against the IGDB
// catalog. Zero values mean "use the default": empty Fields selects
// DefaultFields, nil Limit selects DefaultLimit, and empty Search omits the
// search clause.
type Query struct {
	Fields string
	Search string
	Limit  *int
}

// EffectiveFields returns the field projection the query resolves to.
func (q Query) EffectiveFields() string {
	if q.Fields == "" {
		return DefaultFields
	}
	return strings.TrimSpace(q.Fields)
}

// EffectiveLimit returns the limit the query resolves to.
func (q Query) EffectiveLimit() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	return *q.Limit
}

// Validate checks the query for values that cannot be expressed safely in
// the query language. Limit is passed through as given. Returns a
// *domain.ValidationError if any checks fail.
func (q Query) Validate() error {
	fields := make(map[string]string)

	if q.Fields != "" && !fieldListPattern.MatchString(q.Fields) {
		fields["fields"] = "must be a comma-separated list of field names"
	}
	if strings.IndexFunc(q.Search, unicode.IsControl) >= 0 {
		fields["search"] = "must not contain control characters"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
