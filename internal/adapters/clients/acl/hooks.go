package acl

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/continuum/internal/platform/credentials"
)

// RequestHook runs after a request is built and before it is sent.
// Returning an error aborts the call; the request never reaches the
// transport.
type RequestHook func(req *http.Request) error

// ResponseHook runs after the transport returns. It sees the response (nil
// when nothing came back) and the transport error, and returns the error
// the caller should observe, or nil to continue with decoding.
type ResponseHook func(req *http.Request, resp *http.Response, err error) error

// CredentialResolver resolves the credential set for one upstream.
// Implemented by *credentials.Store.
type CredentialResolver interface {
	Resolve(kind credentials.Kind) (credentials.Set, error)
}

// IGDBAuth returns a RequestHook that authenticates IGDB calls with the
// configured client id and access token.
func IGDBAuth(store CredentialResolver) RequestHook {
	return func(req *http.Request) error {
		set, err := store.Resolve(credentials.KindIGDB)
		if err != nil {
			return err
		}

		req.Header.Set("Client-ID", set.ClientID)
		req.Header.Set("Authorization", "Bearer "+set.AccessToken)
		return nil
	}
}

// RAWGAPIKey returns a RequestHook that puts key=<api_key> first in the
// query string, ahead of the caller's parameters. A caller-supplied key
// parameter is dropped so it cannot replace the configured one.
func RAWGAPIKey(store CredentialResolver) RequestHook {
	return func(req *http.Request) error {
		set, err := store.Resolve(credentials.KindRAWG)
		if err != nil {
			return err
		}

		query := "key=" + url.QueryEscape(set.APIKey)
		if rest := withoutParam(req.URL.RawQuery, "key"); rest != "" {
			query += "&" + rest
		}
		req.URL.RawQuery = query
		return nil
	}
}

// withoutParam removes every pair named name from rawQuery and leaves the
// remaining pairs, and their encoding, untouched.
func withoutParam(rawQuery, name string) string {
	if rawQuery == "" {
		return ""
	}

	pairs := strings.Split(rawQuery, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		k, _, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(k); err == nil {
			k = decoded
		}
		if k == name {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}
