// Package apperror defines the status-bearing error vocabulary shared by
// services, repositories and the HTTP responder. Services return these so the
// transport layer can map failures to HTTP status codes without leaking
// infrastructure details.
package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// GenericMessage is the only message ever exposed to clients for failures the
// application did not explicitly produce. The real message goes to the log.
const GenericMessage = "Internal server error"

// Error is an application-produced failure carrying its own HTTP status and
// client-safe message. Validation failures may carry several messages; see
// PublicMessage for how they are flattened.
type Error struct {
	Status   int
	Message  string
	Messages []string
	Err      error // wrapped cause, nil when the error originates here
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && len(e.Messages) > 0 {
		msg = strings.Join(e.Messages, ", ")
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// PublicMessage is the message written into the response envelope.
// A 400-category error with multiple messages joins them with ", ".
func (e *Error) PublicMessage() string {
	if len(e.Messages) > 0 && Resolve(e.Status).Status == http.StatusBadRequest {
		return strings.Join(e.Messages, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	return GenericMessage
}

// New builds a recognized error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap builds a recognized error around a cause.
func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *Error { return New(http.StatusBadRequest, message) }

// Validation carries one message per failed field; the responder joins them.
func Validation(messages ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Messages: messages}
}

func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }
func Gone(message string) *Error         { return New(http.StatusGone, message) }

func PayloadTooLarge(message string) *Error {
	return New(http.StatusRequestEntityTooLarge, message)
}

func UnsupportedMedia(message string) *Error {
	return New(http.StatusUnsupportedMediaType, message)
}

func Unprocessable(message string) *Error {
	return New(http.StatusUnprocessableEntity, message)
}

func Internal(message string, err error) *Error {
	return Wrap(http.StatusInternalServerError, message, err)
}

func NotImplemented(message string) *Error { return New(http.StatusNotImplemented, message) }
func Unavailable(message string) *Error    { return New(http.StatusServiceUnavailable, message) }

// EnvMissing reports a required environment variable that is absent at the
// point of use. It is a recognized failure and resolves to the
// INTERNAL_SERVER_ERROR category like any other 500-status Error.
func EnvMissing(key string) *Error {
	return New(http.StatusInternalServerError, fmt.Sprintf("missing required environment variable: %s", key))
}
