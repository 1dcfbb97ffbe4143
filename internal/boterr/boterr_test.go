package boterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", &ConfigError{Name: "GITEA_TOKEN"}, "configuration"},
		{"fetch", &FetchError{PR: 3, Err: errors.New("dial tcp")}, "fetching pull request diff"},
		{"http", &HTTPError{StatusCode: 500, Reason: "Internal Server Error"}, "API request"},
		{"transport", &TransportError{Op: "posting comment", Err: errors.New("refused")}, "API request"},
		{"decode", &DecodeError{Err: errors.New("bad")}, "API request"},
		{"shape", &ShapeError{Path: "usage"}, "review response"},
		{"wrapped http", fmt.Errorf("requesting review: %w", &HTTPError{StatusCode: 401}), "API request"},
		{"plain", errors.New("boom"), "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Context(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "environment variable 'OPENROUTER_TOKEN' is not set",
		(&ConfigError{Name: "OPENROUTER_TOKEN"}).Error())
	assert.Equal(t, "HTTP Error 404 - Not Found: {\"message\":\"nope\"}",
		(&HTTPError{StatusCode: 404, Reason: "Not Found", Body: `{"message":"nope"}`}).Error())
	assert.Equal(t, "unexpected response structure: missing usage.cost",
		(&ShapeError{Path: "usage.cost"}).Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("no such host")
	err := &FetchError{PR: 1, Err: cause}
	assert.ErrorIs(t, err, cause)

	terr := &TransportError{Op: "x", Err: cause}
	assert.ErrorIs(t, terr, cause)
}

func TestNewHTTPError(t *testing.T) {
	err := NewHTTPError(402, "402 Payment Required", []byte(`{"error":"credits"}`))
	assert.Equal(t, 402, err.StatusCode)
	assert.Equal(t, "Payment Required", err.Reason)
	assert.Equal(t, `{"error":"credits"}`, err.Body)

	err = NewHTTPError(418, "", nil)
	assert.Equal(t, "I'm a teapot", err.Reason)
}
