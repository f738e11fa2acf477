package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

// Recovery turns a panic in any inner handler into a 500 error envelope. The
// panic value and stack are logged, never returned to the caller. When the
// response has already started only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("url", logging.RedactURL(r.URL)),
				)
				if !rec.started {
					dto.WriteErrorResponse(rec, r, http.StatusInternalServerError,
						dto.ErrorResponse{Error: dto.MsgInternalServerError})
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
