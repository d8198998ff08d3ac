package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/render"
)

// errPanic stands in for the recovered value on the error page. The value
// and stack trace are logged only.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into the HTML 500
// page. If the response has already started, the panic is only logged.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)
				if !rec.wroteHeader {
					render.WriteError(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
