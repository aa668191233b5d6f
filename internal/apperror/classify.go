package apperror

import (
	"errors"
	"fmt"
)

// Kind discriminates the three failure classes the responder understands.
type Kind int

const (
	// KindRecognized is a failure the application explicitly produced: an
	// *Error carrying its own status and client-safe message.
	KindRecognized Kind = iota
	// KindUnexpected is a genuine error value the application did not
	// anticipate. Its message is logged but never exposed.
	KindUnexpected
	// KindUndefined is a non-error value (panic with a string, int, nil, ...).
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindRecognized:
		return "recognized"
	case KindUnexpected:
		return "unexpected"
	default:
		return "undefined"
	}
}

// Classified is the normalized form of an arbitrary failure value.
type Classified struct {
	Kind Kind
	// App is non-nil exactly when Kind is KindRecognized.
	App *Error
	// Name identifies the failure's Go type, for the log line.
	Name string
	// Message is the internal (loggable) message. For recognized failures it
	// matches the error text; for the other kinds it is never sent to clients.
	Message string
	// Value is the raw failure as received.
	Value any
}

// ResponseInfo returns the response category for the classification outcome.
func (c Classified) ResponseInfo() ResponseInfo {
	switch c.Kind {
	case KindRecognized:
		return Resolve(c.App.Status)
	case KindUnexpected:
		return UnexpectedError
	default:
		return UndefinedError
	}
}

// PublicMessage returns the message written into the response body.
// Only recognized failures surface their own message.
func (c Classified) PublicMessage() string {
	if c.Kind == KindRecognized {
		return c.App.PublicMessage()
	}
	return GenericMessage
}

// Classify maps any failure value to exactly one Classified form. It is
// total and never panics: a failure during classification itself (malformed
// Error method, typed-nil trickery) degrades to the undefined class.
func Classify(v any) (c Classified) {
	defer func() {
		if recover() != nil {
			c = Classified{
				Kind:    KindUndefined,
				Name:    fmt.Sprintf("%T", v),
				Message: "unclassifiable failure value",
				Value:   v,
			}
		}
	}()

	switch x := v.(type) {
	case *Error:
		if x == nil {
			break
		}
		return recognized(x, v)
	case error:
		if x == nil {
			break
		}
		var appErr *Error
		if errors.As(x, &appErr) && appErr != nil {
			return recognized(appErr, v)
		}
		return Classified{
			Kind:    KindUnexpected,
			Name:    fmt.Sprintf("%T", x),
			Message: x.Error(),
			Value:   v,
		}
	}
	return Classified{
		Kind:    KindUndefined,
		Name:    fmt.Sprintf("%T", v),
		Message: safeMessage(v),
		Value:   v,
	}
}

// safeMessage renders a non-error value for the log. Only scalar kinds are
// formatted; composite values (which may be self-referential and would blow
// the stack under fmt) are reduced to their type.
func safeMessage(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprint(x)
	default:
		return fmt.Sprintf("non-error value of type %T", v)
	}
}

func recognized(e *Error, raw any) Classified {
	return Classified{
		Kind:    KindRecognized,
		App:     e,
		Name:    fmt.Sprintf("%T", e),
		Message: e.Error(),
		Value:   raw,
	}
}
