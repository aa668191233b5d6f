// Package respond is the single exit path for HTTP responses. Success bodies
// go through JSON; every failure, returned error or recovered panic value alike,
// goes through the normalizer, which classifies it, logs it with the request's
// correlation ID and writes the uniform error envelope.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hun-meta/api-base-template/internal/apperror"
	"github.com/hun-meta/api-base-template/internal/pkg/requestid"
)

// ErrorEnvelope is the wire shape of every error response. The HTTP status
// code always equals ResponseInfo.Status.
type ErrorEnvelope struct {
	RequestID    string                `json:"requestId"`
	ResponseInfo apperror.ResponseInfo `json:"responseInfo"`
	Error        ErrorDetail           `json:"error"`
}

// ErrorDetail carries the client-facing message.
type ErrorDetail struct {
	Message string `json:"message"`
}

// HandlerFunc is an http.HandlerFunc that may fail. Handler adapts it so the
// returned error is normalized and written exactly once.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts a fallible handler into an http.HandlerFunc whose failures
// all flow through Error.
func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Error(w, r, err)
		}
	}
}

// JSON writes a success body with the correct Content-Type.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error normalizes a returned error and writes the error envelope.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	write(w, r, apperror.Classify(err), "")
}

// Recovered normalizes a recovered panic value. The stack is the one captured
// at the recovery point and appears in the log only, never in the response.
func Recovered(w http.ResponseWriter, r *http.Request, v interface{}, stack []byte) {
	write(w, r, apperror.Classify(v), string(stack))
}

// write is the terminal step of a failed request: one error-level log record,
// then the envelope. It must never raise, so a last-resort recover degrades
// to a bare 500.
func write(w http.ResponseWriter, r *http.Request, c apperror.Classified, stack string) {
	defer func() {
		if recover() != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}()

	rid := requestid.FromContext(r.Context())
	logFailure(rid, c, stack)

	info := c.ResponseInfo()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(info.Status)
	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		RequestID:    rid,
		ResponseInfo: info,
		Error:        ErrorDetail{Message: c.PublicMessage()},
	})
}

func logFailure(rid string, c apperror.Classified, stack string) {
	attrs := []any{
		"request_id", rid,
		"kind", c.Kind.String(),
		"error_name", c.Name,
		"error_message", c.Message,
	}
	if stack != "" {
		attrs = append(attrs, "stack", stack)
	}
	// Attach the raw value only for error kinds; undefined values may not be
	// printable (see apperror.Classify).
	if err, ok := c.Value.(error); ok && c.Kind != apperror.KindUndefined {
		attrs = append(attrs, "error", err)
	}
	slog.Error("request failed", attrs...)
}
