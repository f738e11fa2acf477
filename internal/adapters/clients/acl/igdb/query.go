// Package igdb translates provider-neutral game queries into the IGDB
// query language: semicolon-terminated fields, limit, and search clauses.
package igdb

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/continuum/internal/domain/game"
)

// searchEscaper escapes the characters that could terminate the quoted
// search string.
var searchEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// BuildQuery serializes q as IGDB query text. The field projection and limit
// clauses are always present; the search clause only when q.Search is
// non-empty. It returns a *domain.ValidationError for queries that cannot be
// expressed safely.
//
//	fields name,rating,summary,cover.url,release_dates.human; limit 5; search "Zelda";
func BuildQuery(q game.Query) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("fields ")
	b.WriteString(q.EffectiveFields())
	b.WriteString("; limit ")
	b.WriteString(strconv.Itoa(q.EffectiveLimit()))
	b.WriteString(";")

	if q.Search != "" {
		b.WriteString(` search "`)
		b.WriteString(searchEscaper.Replace(q.Search))
		b.WriteString(`";`)
	}

	return b.String(), nil
}
