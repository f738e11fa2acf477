package logging

import (
	"net/url"
	"strings"
)

// sensitiveQueryParams are query parameter names whose values never reach
// a log line. RAWG authenticates with "key".
var sensitiveQueryParams = map[string]bool{
	"key":           true,
	"api_key":       true,
	"client_secret": true,
	"access_token":  true,
}

const redacted = "[REDACTED]"

// RedactURL returns u as a string with the values of credential-bearing
// query parameters replaced by [REDACTED]. Parameter order and all other
// values are preserved. A nil URL yields "".
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.RawQuery == "" {
		return u.String()
	}

	c := *u
	c.RawQuery = redactQuery(u.RawQuery)
	return c.String()
}

// RedactURLString parses raw and redacts it. Unparseable input is replaced
// entirely.
func RedactURLString(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	return RedactURL(u)
}

func redactQuery(rawQuery string) string {
	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		name, _, hasValue := strings.Cut(pair, "=")
		decoded, err := url.QueryUnescape(name)
		if err != nil {
			decoded = name
		}
		if hasValue && sensitiveQueryParams[strings.ToLower(decoded)] {
			pairs[i] = name + "=" + redacted
		}
	}
	return strings.Join(pairs, "&")
}
