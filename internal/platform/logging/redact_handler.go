package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the header names (lowercase) whose values never
// reach a log line. The HTTP middleware and the masq handler below both read
// it. Client-Id carries the Twitch client id.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"client-id":     true,
}

// sensitiveFields are attribute names masked wherever they appear.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"client_secret",
	"access_token",
}

// sensitivePrefixes catch variants such as "secret_key" or "api_key_rawg".
var sensitivePrefixes = []string{"secret_", "api_key"}

// sensitiveValues match secrets embedded in free-form strings, such as an
// upstream error body quoted into an error message.
var sensitiveValues = []*regexp.Regexp{
	// Authorization: Bearer <token>
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs. Ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// api_key=..., apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// OAuth form fragments. Values already masked by RedactURL start with "[".
	regexp.MustCompile(`(?i)\b(client_secret|access_token)=[^&\s"\[]`),
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
