package apperror

import (
	"fmt"
	"net/http"
)

// ResponseInfo is the static category attached to every error response:
// the HTTP status code the client receives and a canonical label clients
// can branch on. The 12-entry status table below is a stable contract.
type ResponseInfo struct {
	Status int    `json:"status"`
	Label  string `json:"label"`
}

// Categories for failures the application did not explicitly produce.
// Both respond with a 500 but keep distinct labels so clients and log
// tooling can tell a genuine runtime error from a non-error panic value.
var (
	UnexpectedError = ResponseInfo{Status: http.StatusInternalServerError, Label: "UNEXPECTED_ERROR"}
	UndefinedError  = ResponseInfo{Status: http.StatusInternalServerError, Label: "UNDEFINED_ERROR"}
)

// responseTable maps a recognized error's status code to its category.
// Unmapped codes fall back to INTERNAL_SERVER_ERROR in Resolve.
var responseTable = map[int]ResponseInfo{
	http.StatusBadRequest:            {http.StatusBadRequest, "BAD_REQUEST"},
	http.StatusUnauthorized:          {http.StatusUnauthorized, "UNAUTHORIZED"},
	http.StatusForbidden:             {http.StatusForbidden, "FORBIDDEN"},
	http.StatusNotFound:              {http.StatusNotFound, "NOT_FOUND"},
	http.StatusConflict:              {http.StatusConflict, "CONFLICT"},
	http.StatusGone:                  {http.StatusGone, "GONE"},
	http.StatusRequestEntityTooLarge: {http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	http.StatusUnsupportedMediaType:  {http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
	http.StatusUnprocessableEntity:   {http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
	http.StatusInternalServerError:   {http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	http.StatusNotImplemented:        {http.StatusNotImplemented, "NOT_IMPLEMENTED"},
	http.StatusServiceUnavailable:    {http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
}

func init() {
	// The table is a wire contract; a malformed entry is a programming error
	// caught at startup rather than on the first failing request.
	for status, ri := range responseTable {
		if ri.Status != status || ri.Label == "" {
			panic(fmt.Sprintf("apperror: malformed response table entry for status %d", status))
		}
	}
	if _, ok := responseTable[http.StatusInternalServerError]; !ok {
		panic("apperror: response table is missing the fallback category")
	}
}

// Resolve maps a status code to its response category. Codes outside the
// table resolve to INTERNAL_SERVER_ERROR so the mapping is total.
func Resolve(status int) ResponseInfo {
	if ri, ok := responseTable[status]; ok {
		return ri
	}
	return responseTable[http.StatusInternalServerError]
}
