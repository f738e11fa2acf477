package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/continuum/internal/platform/config"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

const (
	// jitterFraction spreads each computed backoff by up to ±25%.
	jitterFraction = 0.25
	// maxRetryAfter caps how long an upstream Retry-After may stall a retry.
	maxRetryAfter = 30 * time.Second
)

// retryPolicy is the unexported copy of config.RetryConfig a Client retries
// with.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// wait returns the pause before retry n (1 for the first retry). A positive
// hint from Retry-After replaces the computed backoff.
func (p retryPolicy) wait(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		return hint
	}
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter only
	return time.Duration(math.Max(d, 0))
}

// doWithRetry sends req up to maxAttempts times. The body is buffered once
// and replayed on each attempt. On success, or on a non-retryable status, the
// response is stored in resp and nil is returned. When the final attempt
// still returns a retryable status, resp holds that response with its body
// open and the error describes the status. The caller closes resp.Body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retry.maxAttempts
	if attempts < 1 {
		return fmt.Errorf("httpclient: max attempts must be >= 1, got %d", attempts)
	}

	body, err := readBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		rewind(req, body)

		r, err := c.hc.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}
		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("%s answered HTTP %d", c.name, r.StatusCode)
		if attempt == attempts {
			*resp = r
			return lastErr
		}
		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	d := c.retry.wait(attempt-1, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying upstream request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", logging.RedactURL(req.URL)),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// retryAfter parses a Retry-After header given either as delay seconds or
// as an HTTP date. Unparseable or past values yield 0. The result is capped
// at maxRetryAfter.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = at.Sub(now)
	}
	if d <= 0 {
		return 0
	}
	return min(d, maxRetryAfter)
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Cancellation and deadline expiry never do.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
