package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Timeout cancels the request context after the given duration and
// answers 408 if the handler has not written anything yet.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			go func() {
				next.ServeHTTP(wrapped, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded && !wrapped.written {
					w.WriteHeader(http.StatusRequestTimeout)
					render.JSON(w, r, map[string]interface{}{
						"error":   ErrorCodeRequestTimeout,
						"message": ErrorMessageRequestTimeout,
					})
				}
			}
		})
	}
}
