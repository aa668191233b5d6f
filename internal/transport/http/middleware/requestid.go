package middleware

import (
	"net/http"

	"github.com/hun-meta/api-base-template/internal/pkg/id"
	"github.com/hun-meta/api-base-template/internal/pkg/requestid"
)

// RequestIDHeader is read from the inbound request (so upstream proxies can
// propagate their own correlation ID) and always echoed on the response.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation ID and stores it in the
// request context. Must run before Logger and Recover so every log line and
// error envelope carries the ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = id.New()
		}
		w.Header().Set(RequestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), rid)))
	})
}
