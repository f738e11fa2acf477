package dto

import "github.com/jsamuelsen11/continuum/internal/domain/game"

// IGDBSearchRequest is the JSON body accepted by POST /api/igdb. Every field
// is optional; omitted values fall back to the query defaults.
type IGDBSearchRequest struct {
	Fields string `json:"fields,omitempty"`
	Search string `json:"search,omitempty"`
	Limit  *int   `json:"limit,omitempty"`
}

// ToQuery converts the request into a provider-neutral game query.
func (r *IGDBSearchRequest) ToQuery() game.Query {
	return game.Query{
		Fields: r.Fields,
		Search: r.Search,
		Limit:  r.Limit,
	}
}

// Validate checks that the request can be expressed as a game query.
// Returns a *domain.ValidationError if any checks fail.
func (r *IGDBSearchRequest) Validate() error {
	return r.ToQuery().Validate()
}
