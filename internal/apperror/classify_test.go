package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_RecognizedError(t *testing.T) {
	c := Classify(NotFound("Not Found"))
	assert.Equal(t, KindRecognized, c.Kind)
	require.NotNil(t, c.App)
	assert.Equal(t, http.StatusNotFound, c.ResponseInfo().Status)
	assert.Equal(t, "NOT_FOUND", c.ResponseInfo().Label)
	assert.Equal(t, "Not Found", c.PublicMessage())
}

func TestClassify_WrappedRecognizedError(t *testing.T) {
	inner := Conflict("email already registered")
	wrapped := fmt.Errorf("register user: %w", inner)
	c := Classify(wrapped)
	assert.Equal(t, KindRecognized, c.Kind)
	require.NotNil(t, c.App)
	assert.Equal(t, http.StatusConflict, c.App.Status)
	assert.Equal(t, "email already registered", c.PublicMessage())
}

func TestClassify_GenericError(t *testing.T) {
	c := Classify(errors.New("x"))
	assert.Equal(t, KindUnexpected, c.Kind)
	assert.Nil(t, c.App)
	assert.Equal(t, UnexpectedError, c.ResponseInfo())
	// Real message is kept for the log but never surfaced.
	assert.Equal(t, "x", c.Message)
	assert.Equal(t, GenericMessage, c.PublicMessage())
}

func TestClassify_NonErrorValues(t *testing.T) {
	for _, v := range []any{"boom", 42, 3.14, struct{ X int }{1}, []string{"a"}, map[string]int{"a": 1}} {
		c := Classify(v)
		assert.Equal(t, KindUndefined, c.Kind, "value %v", v)
		assert.Equal(t, UndefinedError, c.ResponseInfo(), "value %v", v)
		assert.Equal(t, GenericMessage, c.PublicMessage(), "value %v", v)
	}
}

func TestClassify_NilValues(t *testing.T) {
	var typedNil *Error
	var nilErr error

	for _, v := range []any{nil, typedNil, nilErr} {
		c := Classify(v)
		assert.Equal(t, KindUndefined, c.Kind)
		assert.Equal(t, GenericMessage, c.PublicMessage())
	}
}

// selfReferential exercises the degrade-to-undefined path: its Error method
// panics, which must not escape Classify.
type selfReferential struct{}

func (selfReferential) Error() string { panic("unprintable") }

func TestClassify_NeverPanics(t *testing.T) {
	circular := map[string]any{}
	circular["self"] = circular

	assert.NotPanics(t, func() {
		c := Classify(selfReferential{})
		assert.Equal(t, KindUndefined, c.Kind)
		assert.Equal(t, GenericMessage, c.PublicMessage())
	})
	assert.NotPanics(t, func() {
		c := Classify(circular)
		assert.Equal(t, KindUndefined, c.Kind)
	})
}

func TestValidationMessagesJoin(t *testing.T) {
	e := Validation("a required", "b required")
	assert.Equal(t, "a required, b required", e.PublicMessage())
	c := Classify(e)
	assert.Equal(t, "BAD_REQUEST", c.ResponseInfo().Label)
	assert.Equal(t, "a required, b required", c.PublicMessage())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial timeout")
	e := Internal("lookup failed", cause)
	assert.True(t, errors.Is(e, cause))
	assert.Contains(t, e.Error(), "dial timeout")
}

func TestEnvMissing(t *testing.T) {
	e := EnvMissing("JWT_PRIVATE_KEY_PATH")
	c := Classify(e)
	assert.Equal(t, KindRecognized, c.Kind)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", c.ResponseInfo().Label)
	assert.Equal(t, "missing required environment variable: JWT_PRIVATE_KEY_PATH", c.PublicMessage())
}
