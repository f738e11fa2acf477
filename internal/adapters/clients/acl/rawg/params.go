// Package rawg builds RAWG REST query strings. Parameters keep the order in
// which they were added and undefined values never reach the wire.
package rawg

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

type param struct {
	key   string
	value string
}

// Params is an ordered list of query parameters. The zero value is ready to
// use.
type Params struct {
	pairs []param
}

// Add appends key with value stringified by fmt.Sprint. Pointers are
// dereferenced; nil values and nil pointers are skipped. Add returns p so
// calls can be chained.
func (p *Params) Add(key string, value any) *Params {
	v, ok := deref(value)
	if !ok {
		return p
	}
	p.pairs = append(p.pairs, param{key: key, value: fmt.Sprint(v)})
	return p
}

// Len reports how many parameters were added.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode renders the parameters as "k=v&k2=v2" in insertion order with
// query escaping applied to keys and values.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// deref unwraps pointers until it reaches a value. It reports false for nil.
func deref(value any) (any, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

// GameListParams are the filters accepted by the RAWG games listing.
// Nil fields are omitted.
type GameListParams struct {
	Page      *int
	PageSize  *int
	Search    *string
	Dates     *string
	Platforms *string
	Genres    *string
	Ordering  *string
}

// Params returns the non-nil filters in a fixed order.
func (g *GameListParams) Params() *Params {
	p := &Params{}
	if g == nil {
		return p
	}

	return p.Add("page", g.Page).
		Add("page_size", g.PageSize).
		Add("search", g.Search).
		Add("dates", g.Dates).
		Add("platforms", g.Platforms).
		Add("genres", g.Genres).
		Add("ordering", g.Ordering)
}

// Endpoint joins path and the encoded parameters, omitting the "?" when
// there are none.
func Endpoint(path string, params *Params) string {
	if params == nil || params.Len() == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
