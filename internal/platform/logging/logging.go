// Package logging builds the gateway's slog logger and carries the
// per-request logger through contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "forwarding")
//
// Every logger built by New masks credentials through masq: the Twitch
// secret, issued access tokens, the RAWG key and the headers in
// SensitiveHeaders. URLs that may carry the RAWG key go through RedactURL
// before they are logged.
//
// Service errors are logged once, where they are handled, with the operation,
// the upstream component and the full chain:
//
//	logger.ErrorContext(ctx, "rawg request failed",
//	    slog.String("operation", "ForwardRAWG"),
//	    slog.String("component", "rawg"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, default info). format "text" selects the text
// handler and anything else JSON. Source locations are added at debug level.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog.Level. Unknown names
// give slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
