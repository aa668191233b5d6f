package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
)

// Recover catches any panic raised while handling a request, error values
// and non-error values alike, and hands the recovered value to the error
// responder together with the stack captured at the recovery point. It is
// the outermost handler-side middleware; nothing propagates past it.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					// The server uses this sentinel to abort the connection.
					panic(v)
				}
				respond.Recovered(w, r, v, debug.Stack())
			}
		}()
		next.ServeHTTP(w, r)
	})
}
