package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hun-meta/api-base-template/internal/apperror"
)

// maxBodyBytes caps request bodies; larger payloads answer 413.
const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into dst, translating transport-level
// problems into recognized failures: wrong Content-Type → 415, oversized
// body → 413, malformed JSON → 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return apperror.UnsupportedMedia("Content-Type must be application/json")
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperror.PayloadTooLarge("request body too large")
		}
		return apperror.Wrap(http.StatusBadRequest, "invalid request body", err)
	}
	return nil
}
