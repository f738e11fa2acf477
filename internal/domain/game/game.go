// Package game defines the catalog record shapes returned by the two upstream
// providers. The gateway passes both shapes through untouched; these types
// exist so that callers of the gateway can decode them.
package game

// RAWGGame is a game record as produced by the RAWG REST catalog.
type RAWGGame struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Released        string     `json:"released"`
	Rating          float64    `json:"rating"`
	BackgroundImage string     `json:"background_image,omitempty"`
	Platforms       []Platform `json:"platforms,omitempty"`
	Genres          []NamedRef `json:"genres,omitempty"`
	ESRBRating      *NamedRef  `json:"esrb_rating,omitempty"`
}

// Platform wraps the platform reference the way RAWG nests it.
type Platform struct {
	Platform NamedRef `json:"platform"`
}

// NamedRef is RAWG's common {id, name, slug} triple used for platforms,
// genres, and ESRB ratings.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RAWGListResponse is RAWG's paginated list envelope.
type RAWGListResponse struct {
	Count    int64      `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []RAWGGame `json:"results"`
}

// IGDBGame is a game record as produced by the IGDB query API.
type IGDBGame struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Summary      string        `json:"summary,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	Cover        *Cover        `json:"cover,omitempty"`
	ReleaseDates []ReleaseDate `json:"release_dates,omitempty"`
}

// Cover is an IGDB cover image reference.
type Cover struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// ReleaseDate is an IGDB release date with its human-readable form.
type ReleaseDate struct {
	ID    int64  `json:"id"`
	Human string `json:"human"`
}

// IGDBListResponse is the gateway envelope around IGDB results.
type IGDBListResponse struct {
	Games []IGDBGame `json:"games"`
}
